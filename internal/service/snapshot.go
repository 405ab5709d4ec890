package service

import (
	"context"
	"fmt"
)

// LoadSnapshot reads every record set from the store.
func LoadSnapshot(ctx context.Context, store RecordStore) (*Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)

	if snap.Profile, err = store.GetProfile(ctx); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if snap.Leads, err = store.ListLeads(ctx); err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}
	if snap.Sales, err = store.ListSales(ctx); err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	if snap.Commissions, err = store.ListCommissions(ctx); err != nil {
		return nil, fmt.Errorf("failed to load commissions: %w", err)
	}
	if snap.Materials, err = store.ListMaterials(ctx); err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}
	if snap.Activities, err = store.ListActivities(ctx); err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	return &snap, nil
}
