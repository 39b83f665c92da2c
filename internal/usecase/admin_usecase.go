package usecase

import (
	"context"
	"errors"
	"time"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"
)

var ErrEmptyImport = errors.New("import payload contains no records")

// IAdminUseCase groups the bulk data maintenance operations.

type IAdminUseCase interface {
	Export(ctx context.Context) (entities.DataExport, error)
	Import(ctx context.Context, data entities.DataExport) error
	Seed(ctx context.Context) error
	Clear(ctx context.Context) error
}

type AdminUseCase struct {
	repo interfaces.IDataAdminRepository
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(repo interfaces.IDataAdminRepository) *AdminUseCase {
	return &AdminUseCase{repo: repo}
}

func (u *AdminUseCase) Export(ctx context.Context) (entities.DataExport, error) {
	data, err := u.repo.ExportAll(ctx)
	if err != nil {
		return entities.DataExport{}, err
	}
	data.ExportedAt = time.Now().UTC()
	return data, nil
}

func (u *AdminUseCase) Import(ctx context.Context, data entities.DataExport) error {
	if len(data.Services) == 0 && len(data.Budgets) == 0 {
		return ErrEmptyImport
	}
	return u.repo.ImportAll(ctx, data)
}

func (u *AdminUseCase) Seed(ctx context.Context) error {
	return u.repo.Seed(ctx, SeedCatalog())
}

func (u *AdminUseCase) Clear(ctx context.Context) error {
	return u.repo.ClearAll(ctx)
}
