// Package service defines the interfaces shared between the application's
// layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/model"
)

// RecordStore is the read side of the partner's data. Every list is returned
// in display order and must not be modified by callers.
type RecordStore interface {
	ListLeads(ctx context.Context) ([]model.Lead, error)
	ListSales(ctx context.Context) ([]model.Sale, error)
	ListCommissions(ctx context.Context) ([]model.CommissionEntry, error)
	ListMaterials(ctx context.Context) ([]model.Material, error)
	ListActivities(ctx context.Context) ([]model.Activity, error)
	GetProfile(ctx context.Context) (*model.Profile, error)

	// Database management
	Seed(ctx context.Context, data fixtures.Dataset) error
	Migrate(ctx context.Context) error
	Close() error
}

// Snapshot is everything the dashboard needs, loaded at once.
type Snapshot struct {
	Profile     *model.Profile
	Leads       []model.Lead
	Sales       []model.Sale
	Commissions []model.CommissionEntry
	Materials   []model.Material
	Activities  []model.Activity
}

// RetryOptions configures retry behavior for network operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
