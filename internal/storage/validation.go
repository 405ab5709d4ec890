// Package storage provides the SQLite record store behind the partner dashboard.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrDuplicateID       = errors.New("duplicate record id")
	ErrInvalidLead       = errors.New("invalid lead")
	ErrInvalidSale       = errors.New("invalid sale")
	ErrInvalidCommission = errors.New("invalid commission entry")
	ErrInvalidMaterial   = errors.New("invalid material")
	ErrInvalidActivity   = errors.New("invalid activity")
	ErrInvalidProfile    = errors.New("invalid profile")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateIDs[T interface{ RecordID() int64 }](records []T, kind string) error {
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.RecordID()]; ok {
			return fmt.Errorf("%w: %s %d", ErrDuplicateID, kind, r.RecordID())
		}
		seen[r.RecordID()] = struct{}{}
	}
	return nil
}

func validateLead(l model.Lead) error {
	switch {
	case l.ID <= 0:
		return fmt.Errorf("%w: missing ID", ErrInvalidLead)
	case strings.TrimSpace(l.Name) == "":
		return fmt.Errorf("%w %d: missing name", ErrInvalidLead, l.ID)
	case l.ReferralDate.IsZero():
		return fmt.Errorf("%w %d: missing referral date", ErrInvalidLead, l.ID)
	case l.Status == "":
		return fmt.Errorf("%w %d: missing status", ErrInvalidLead, l.ID)
	}
	return nil
}

func validateSale(s model.Sale) error {
	switch {
	case s.ID <= 0:
		return fmt.Errorf("%w: missing ID", ErrInvalidSale)
	case strings.TrimSpace(s.ClientName) == "":
		return fmt.Errorf("%w %d: missing client name", ErrInvalidSale, s.ID)
	case s.ClosingDate.IsZero():
		return fmt.Errorf("%w %d: missing closing date", ErrInvalidSale, s.ID)
	case s.SaleValue < 0 || s.MonthlyFeeValue < 0:
		return fmt.Errorf("%w %d: %w", ErrInvalidSale, s.ID, model.ErrNegativeAmount)
	}
	return nil
}

func validateCommission(c model.CommissionEntry) error {
	switch {
	case c.ID <= 0:
		return fmt.Errorf("%w: missing ID", ErrInvalidCommission)
	case c.Date.IsZero():
		return fmt.Errorf("%w %d: missing date", ErrInvalidCommission, c.ID)
	case c.Type == "":
		return fmt.Errorf("%w %d: missing type", ErrInvalidCommission, c.ID)
	case c.Amount < 0:
		return fmt.Errorf("%w %d: %w", ErrInvalidCommission, c.ID, model.ErrNegativeAmount)
	}
	return nil
}

func validateMaterial(m model.Material) error {
	switch {
	case m.ID <= 0:
		return fmt.Errorf("%w: missing ID", ErrInvalidMaterial)
	case strings.TrimSpace(m.Title) == "":
		return fmt.Errorf("%w %d: missing title", ErrInvalidMaterial, m.ID)
	}
	return nil
}

func validateActivity(a model.Activity) error {
	if a.Date.IsZero() || strings.TrimSpace(a.Event) == "" {
		return fmt.Errorf("%w: date and event are required", ErrInvalidActivity)
	}
	return nil
}

func validateProfile(p model.Profile) error {
	if strings.TrimSpace(p.PartnerID) == "" {
		return fmt.Errorf("%w: missing partner ID", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	return nil
}

// validateDataset checks every record before anything is written.
func validateDataset(data fixtures.Dataset) error {
	if err := validateProfile(data.Profile); err != nil {
		return err
	}
	for _, l := range data.Leads {
		if err := validateLead(l); err != nil {
			return err
		}
	}
	for _, s := range data.Sales {
		if err := validateSale(s); err != nil {
			return err
		}
	}
	for _, c := range data.Commissions {
		if err := validateCommission(c); err != nil {
			return err
		}
	}
	for _, m := range data.Materials {
		if err := validateMaterial(m); err != nil {
			return err
		}
	}
	for _, a := range data.Activities {
		if err := validateActivity(a); err != nil {
			return err
		}
	}

	if err := validateIDs(data.Leads, "lead"); err != nil {
		return err
	}
	if err := validateIDs(data.Sales, "sale"); err != nil {
		return err
	}
	if err := validateIDs(data.Commissions, "commission"); err != nil {
		return err
	}
	return validateIDs(materialRecords(data.Materials), "material")
}

// materialRecord lets materials reuse the ID checks of list records.
type materialRecord model.Material

func (m materialRecord) RecordID() int64 { return m.ID }

func materialRecords(ms []model.Material) []materialRecord {
	out := make([]materialRecord, len(ms))
	for i, m := range ms {
		out[i] = materialRecord(m)
	}
	return out
}
