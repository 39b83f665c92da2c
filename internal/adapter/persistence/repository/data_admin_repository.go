package repository

import (
	"context"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"
)

// DataAdminRepository implements the bulk maintenance operations by
// composing the per-entity repositories, so export/import/seed/clear stay
// consistent with whatever storage those repositories use.

type DataAdminRepository struct {
	services interfaces.IServiceRepository
	budgets  interfaces.IBudgetRepository
}

var _ interfaces.IDataAdminRepository = (*DataAdminRepository)(nil)

func NewDataAdminRepository(services interfaces.IServiceRepository, budgets interfaces.IBudgetRepository) *DataAdminRepository {
	return &DataAdminRepository{services: services, budgets: budgets}
}

func (r *DataAdminRepository) ExportAll(ctx context.Context) (entities.DataExport, error) {
	services, err := r.services.List(ctx)
	if err != nil {
		return entities.DataExport{}, err
	}
	budgets, err := r.budgets.List(ctx, interfaces.BudgetFilter{})
	if err != nil {
		return entities.DataExport{}, err
	}
	return entities.DataExport{Services: services, Budgets: budgets}, nil
}

func (r *DataAdminRepository) ImportAll(ctx context.Context, data entities.DataExport) error {
	for _, s := range data.Services {
		if _, err := r.services.Save(ctx, s); err != nil {
			return err
		}
	}
	for _, b := range data.Budgets {
		if _, err := r.budgets.Save(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

// Seed upserts the given reference records; it is an import with seed
// provenance, the distinction only matters to the audit trail.
func (r *DataAdminRepository) Seed(ctx context.Context, data entities.DataExport) error {
	return r.ImportAll(ctx, data)
}

func (r *DataAdminRepository) ClearAll(ctx context.Context) error {
	services, err := r.services.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range services {
		if err := r.services.Delete(ctx, s.ID); err != nil {
			return err
		}
	}

	budgets, err := r.budgets.List(ctx, interfaces.BudgetFilter{})
	if err != nil {
		return err
	}
	for _, b := range budgets {
		if err := r.budgets.Delete(ctx, b.ID); err != nil {
			return err
		}
	}
	return nil
}
