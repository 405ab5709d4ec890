// Package testutil provides shared test helpers: an in-memory record store
// that is migrated, optionally seeded and closed automatically.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage *storage.SQLiteStorage
	Data    fixtures.Dataset
	t       *testing.T
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup    func(context.Context, *storage.SQLiteStorage) error
	Data           *fixtures.Dataset
	SkipMigrations bool
}

// SetupTestDB creates a migrated in-memory database seeded with the demo
// dataset.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	leads, err := db.Storage.ListLeads(ctx)
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	data := fixtures.Demo()
	return SetupTestDBWithOptions(t, TestDBOptions{Data: &data})
}

// SetupEmptyTestDB creates a migrated in-memory database with no records.
func SetupEmptyTestDB(t *testing.T) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{})
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	db := &TestDB{Storage: store, t: t}

	if opts.Data != nil {
		if err := store.Seed(ctx, *opts.Data); err != nil {
			t.Fatalf("failed to seed test database: %v", err)
		}
		db.Data = *opts.Data
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return db
}
