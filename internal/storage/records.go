package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/model"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func queryAll[T any](ctx context.Context, db *sql.DB, what, query string, scan func(rowScanner) (T, error)) ([]T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", what, err)
	}
	return out, nil
}

// ListLeads returns every lead in display order.
func (s *SQLiteStorage) ListLeads(ctx context.Context) ([]model.Lead, error) {
	return queryAll(ctx, s.db, "leads", `
		SELECT id, name, company, referral_date, status, next_step
		FROM leads ORDER BY position, id`,
		func(r rowScanner) (model.Lead, error) {
			var (
				l    model.Lead
				date string
			)
			if err := r.Scan(&l.ID, &l.Name, &l.Company, &date, &l.Status, &l.NextStep); err != nil {
				return l, err
			}
			var err error
			l.ReferralDate, err = model.ParseDate(date)
			return l, err
		})
}

// ListSales returns every sale in display order.
func (s *SQLiteStorage) ListSales(ctx context.Context) ([]model.Sale, error) {
	return queryAll(ctx, s.db, "sales", `
		SELECT id, client_name, company, closing_date, sale_value, monthly_fee, contract_status
		FROM sales ORDER BY position, id`,
		func(r rowScanner) (model.Sale, error) {
			var (
				sale model.Sale
				date string
			)
			if err := r.Scan(&sale.ID, &sale.ClientName, &sale.Company, &date,
				&sale.SaleValue, &sale.MonthlyFeeValue, &sale.ContractStatus); err != nil {
				return sale, err
			}
			var err error
			sale.ClosingDate, err = model.ParseDate(date)
			return sale, err
		})
}

// ListCommissions returns the commission ledger in display order.
func (s *SQLiteStorage) ListCommissions(ctx context.Context) ([]model.CommissionEntry, error) {
	return queryAll(ctx, s.db, "commissions", `
		SELECT id, date, type, client_name, description, amount, payment_status
		FROM commissions ORDER BY position, id`,
		func(r rowScanner) (model.CommissionEntry, error) {
			var (
				c    model.CommissionEntry
				date string
			)
			if err := r.Scan(&c.ID, &date, &c.Type, &c.ClientName, &c.Description,
				&c.Amount, &c.PaymentStatus); err != nil {
				return c, err
			}
			var err error
			c.Date, err = model.ParseDate(date)
			return c, err
		})
}

// ListMaterials returns the support materials catalog.
func (s *SQLiteStorage) ListMaterials(ctx context.Context) ([]model.Material, error) {
	return queryAll(ctx, s.db, "materials", `
		SELECT id, title, description, kind, download_url, preview_url
		FROM materials ORDER BY position, id`,
		func(r rowScanner) (model.Material, error) {
			var m model.Material
			err := r.Scan(&m.ID, &m.Title, &m.Description, &m.Kind, &m.DownloadURL, &m.PreviewURL)
			return m, err
		})
}

// ListActivities returns the recent activity feed.
func (s *SQLiteStorage) ListActivities(ctx context.Context) ([]model.Activity, error) {
	return queryAll(ctx, s.db, "activities", `
		SELECT date, client, event, kind
		FROM activities ORDER BY position, id`,
		func(r rowScanner) (model.Activity, error) {
			var (
				a    model.Activity
				date string
			)
			if err := r.Scan(&date, &a.Client, &a.Event, &a.Kind); err != nil {
				return a, err
			}
			var err error
			a.Date, err = model.ParseDate(date)
			return a, err
		})
}

// GetProfile returns the partner profile.
func (s *SQLiteStorage) GetProfile(ctx context.Context) (*model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var p model.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT partner_id, full_name, email, phone, account_type, pix_key,
			bank, agency, account, holder_name, holder_cpf
		FROM profile LIMIT 1`).Scan(
		&p.PartnerID, &p.FullName, &p.Email, &p.Phone,
		&p.Payment.AccountType, &p.Payment.PixKey, &p.Payment.Bank,
		&p.Payment.Agency, &p.Payment.Account, &p.Payment.HolderName, &p.Payment.HolderCPF,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}
