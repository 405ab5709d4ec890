package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestNewSQLiteStorage_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "parceiro.db")
	store, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	assert.Equal(t, path, store.Path())
}

func TestSQLiteStorage_EmptyStore(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	leads, err := store.ListLeads(ctx)
	require.NoError(t, err)
	assert.NotNil(t, leads)
	assert.Empty(t, leads)

	_, err = store.GetProfile(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_SeedRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	data := fixtures.Demo()
	require.NoError(t, store.Seed(ctx, data))

	leads, err := store.ListLeads(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Leads, leads)

	sales, err := store.ListSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Sales, sales)

	commissions, err := store.ListCommissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Commissions, commissions)

	materials, err := store.ListMaterials(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Materials, materials)

	activities, err := store.ListActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Activities, activities)

	profile, err := store.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Profile, *profile)
}

func TestSQLiteStorage_SeedPreservesSliceOrder(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	data := fixtures.Demo()
	// ids out of order; display order must follow the slice
	data.Leads[0].ID, data.Leads[4].ID = 50, 1

	require.NoError(t, store.Seed(ctx, data))

	leads, err := store.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 5)
	assert.Equal(t, int64(50), leads[0].ID)
	assert.Equal(t, int64(1), leads[4].ID)
}

func TestSQLiteStorage_SeedReplaces(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, fixtures.Demo()))

	smaller := fixtures.Demo()
	smaller.Leads = smaller.Leads[:2]
	smaller.Sales = nil
	require.NoError(t, store.Seed(ctx, smaller))

	leads, err := store.ListLeads(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 2)

	sales, err := store.ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSQLiteStorage_SeedWithProgress(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	var calls [][2]int
	err := store.SeedWithProgress(context.Background(), fixtures.Demo(), func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})
	require.NoError(t, err)
	require.Len(t, calls, len(seedTables))
	assert.Equal(t, [2]int{1, len(seedTables)}, calls[0])
	assert.Equal(t, [2]int{len(seedTables), len(seedTables)}, calls[len(calls)-1])
}

func TestSQLiteStorage_SeedValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*fixtures.Dataset)
		wantErr error
	}{
		{
			name:    "duplicate lead id",
			mutate:  func(d *fixtures.Dataset) { d.Leads[1].ID = d.Leads[0].ID },
			wantErr: ErrDuplicateID,
		},
		{
			name:    "lead without name",
			mutate:  func(d *fixtures.Dataset) { d.Leads[0].Name = " " },
			wantErr: ErrInvalidLead,
		},
		{
			name:    "negative sale",
			mutate:  func(d *fixtures.Dataset) { d.Sales[0].SaleValue = -1 },
			wantErr: model.ErrNegativeAmount,
		},
		{
			name:    "commission without date",
			mutate:  func(d *fixtures.Dataset) { d.Commissions[0].Date = time.Time{} },
			wantErr: ErrInvalidCommission,
		},
		{
			name:    "material without title",
			mutate:  func(d *fixtures.Dataset) { d.Materials[0].Title = "" },
			wantErr: ErrInvalidMaterial,
		},
		{
			name:    "profile without partner",
			mutate:  func(d *fixtures.Dataset) { d.Profile.PartnerID = "" },
			wantErr: ErrInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStorage(t)
			defer cleanup()

			data := fixtures.Demo()
			tt.mutate(&data)
			err := store.Seed(context.Background(), data)
			assert.ErrorIs(t, err, tt.wantErr)

			leads, listErr := store.ListLeads(context.Background())
			require.NoError(t, listErr)
			assert.Empty(t, leads, "nothing is written when validation fails")
		})
	}
}

func TestSQLiteStorage_UnknownStatusesSurvive(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	data := fixtures.Demo()
	data.Leads[0].Status = "Reativado"
	require.NoError(t, store.Seed(ctx, data))

	leads, err := store.ListLeads(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatus("Reativado"), leads[0].Status)
}

func TestSQLiteStorage_NilContext(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	//nolint:staticcheck // testing nil context handling
	_, err := store.ListLeads(nil)
	assert.ErrorIs(t, err, ErrNilContext)
}
