package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/model"
)

var seedTables = []string{"leads", "sales", "commissions", "materials", "activities", "profile"}

// SeedProgress is called after each table is written.
type SeedProgress func(done, total int)

// Seed replaces every record with the given dataset in one transaction.
// Slice order becomes display order.
func (s *SQLiteStorage) Seed(ctx context.Context, data fixtures.Dataset) error {
	return s.SeedWithProgress(ctx, data, nil)
}

// SeedWithProgress is Seed reporting progress per table.
func (s *SQLiteStorage) SeedWithProgress(ctx context.Context, data fixtures.Dataset, progress SeedProgress) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDataset(data); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range seedTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	steps := []func(context.Context, *sql.Tx, fixtures.Dataset) error{
		insertProfile,
		insertLeads,
		insertSales,
		insertCommissions,
		insertMaterials,
		insertActivities,
	}
	for i, step := range steps {
		if err := step(ctx, tx, data); err != nil {
			return err
		}
		if progress != nil {
			progress(i+1, len(steps))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

func insertEach[T any](ctx context.Context, tx *sql.Tx, what, query string, items []T, args func(int, T) []any) error {
	if len(items) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", what, err)
	}
	defer func() { _ = stmt.Close() }()

	for i, item := range items {
		if _, err := stmt.ExecContext(ctx, args(i, item)...); err != nil {
			return fmt.Errorf("failed to insert %s at index %d: %w", what, i, err)
		}
	}
	return nil
}

func insertProfile(ctx context.Context, tx *sql.Tx, data fixtures.Dataset) error {
	p := data.Profile
	_, err := tx.ExecContext(ctx, `
		INSERT INTO profile (partner_id, full_name, email, phone, account_type, pix_key,
			bank, agency, account, holder_name, holder_cpf)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PartnerID, p.FullName, p.Email, p.Phone, string(p.Payment.AccountType), p.Payment.PixKey,
		p.Payment.Bank, p.Payment.Agency, p.Payment.Account, p.Payment.HolderName, p.Payment.HolderCPF)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

func insertLeads(ctx context.Context, tx *sql.Tx, data fixtures.Dataset) error {
	return insertEach(ctx, tx, "lead", `
		INSERT INTO leads (id, position, name, company, referral_date, status, next_step)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.Leads, func(i int, l model.Lead) []any {
			return []any{l.ID, i, l.Name, l.Company, l.ReferralDate.Format(model.DateLayout), string(l.Status), l.NextStep}
		})
}

func insertSales(ctx context.Context, tx *sql.Tx, data fixtures.Dataset) error {
	return insertEach(ctx, tx, "sale", `
		INSERT INTO sales (id, position, client_name, company, closing_date, sale_value, monthly_fee, contract_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Sales, func(i int, s model.Sale) []any {
			return []any{s.ID, i, s.ClientName, s.Company, s.ClosingDate.Format(model.DateLayout),
				int64(s.SaleValue), int64(s.MonthlyFeeValue), string(s.ContractStatus)}
		})
}

func insertCommissions(ctx context.Context, tx *sql.Tx, data fixtures.Dataset) error {
	return insertEach(ctx, tx, "commission", `
		INSERT INTO commissions (id, position, date, type, client_name, description, amount, payment_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Commissions, func(i int, c model.CommissionEntry) []any {
			return []any{c.ID, i, c.Date.Format(model.DateLayout), string(c.Type), c.ClientName,
				c.Description, int64(c.Amount), string(c.PaymentStatus)}
		})
}

func insertMaterials(ctx context.Context, tx *sql.Tx, data fixtures.Dataset) error {
	return insertEach(ctx, tx, "material", `
		INSERT INTO materials (id, position, title, description, kind, download_url, preview_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.Materials, func(i int, m model.Material) []any {
			return []any{m.ID, i, m.Title, m.Description, string(m.Kind), m.DownloadURL, m.PreviewURL}
		})
}

func insertActivities(ctx context.Context, tx *sql.Tx, data fixtures.Dataset) error {
	return insertEach(ctx, tx, "activity", `
		INSERT INTO activities (position, date, client, event, kind)
		VALUES (?, ?, ?, ?, ?)`,
		data.Activities, func(i int, a model.Activity) []any {
			return []any{i, a.Date.Format(model.DateLayout), a.Client, a.Event, string(a.Kind)}
		})
}
