package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

func execAll(tx *sql.Tx, queries []string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS leads (
					id INTEGER PRIMARY KEY,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					company TEXT NOT NULL,
					referral_date TEXT NOT NULL,
					status TEXT NOT NULL,
					next_step TEXT NOT NULL DEFAULT ''
				)`,

				`CREATE TABLE IF NOT EXISTS sales (
					id INTEGER PRIMARY KEY,
					position INTEGER NOT NULL,
					client_name TEXT NOT NULL,
					company TEXT NOT NULL,
					closing_date TEXT NOT NULL,
					sale_value INTEGER NOT NULL CHECK (sale_value >= 0),
					monthly_fee INTEGER NOT NULL CHECK (monthly_fee >= 0),
					contract_status TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS commissions (
					id INTEGER PRIMARY KEY,
					position INTEGER NOT NULL,
					date TEXT NOT NULL,
					type TEXT NOT NULL,
					client_name TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					amount INTEGER NOT NULL CHECK (amount >= 0),
					payment_status TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS profile (
					partner_id TEXT PRIMARY KEY,
					full_name TEXT NOT NULL,
					email TEXT NOT NULL,
					phone TEXT NOT NULL DEFAULT '',
					account_type TEXT NOT NULL DEFAULT '',
					pix_key TEXT NOT NULL DEFAULT '',
					bank TEXT NOT NULL DEFAULT '',
					agency TEXT NOT NULL DEFAULT '',
					account TEXT NOT NULL DEFAULT '',
					holder_name TEXT NOT NULL DEFAULT '',
					holder_cpf TEXT NOT NULL DEFAULT ''
				)`,
			})
		},
	},
	{
		Version:     2,
		Description: "Add support materials, activity feed and ordering indexes",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS materials (
					id INTEGER PRIMARY KEY,
					position INTEGER NOT NULL,
					title TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					kind TEXT NOT NULL,
					download_url TEXT NOT NULL DEFAULT '',
					preview_url TEXT NOT NULL DEFAULT ''
				)`,

				`CREATE TABLE IF NOT EXISTS activities (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					position INTEGER NOT NULL,
					date TEXT NOT NULL,
					client TEXT NOT NULL,
					event TEXT NOT NULL,
					kind TEXT NOT NULL
				)`,

				`CREATE INDEX IF NOT EXISTS idx_leads_position ON leads(position)`,
				`CREATE INDEX IF NOT EXISTS idx_sales_position ON sales(position)`,
				`CREATE INDEX IF NOT EXISTS idx_commissions_position ON commissions(position)`,
				`CREATE INDEX IF NOT EXISTS idx_materials_position ON materials(position)`,
				`CREATE INDEX IF NOT EXISTS idx_activities_position ON activities(position)`,
			})
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
