package usecase

import (
	"context"
	"errors"
	"testing"

	"propmarketing/internal/domain/entities"
	mock_interfaces "propmarketing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAdminUseCase_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDataAdminRepository(ctrl)
	uc := NewAdminUseCase(repo)

	repo.EXPECT().ExportAll(gomock.Any()).Return(entities.DataExport{
		Services: []entities.Service{{ID: "s-1"}},
	}, nil)

	data, err := uc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Services) != 1 {
		t.Fatalf("unexpected export: %+v", data)
	}
	if data.ExportedAt.IsZero() {
		t.Fatalf("expected export timestamp")
	}
}

func TestAdminUseCase_Import(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		uc := NewAdminUseCase(nil)
		if err := uc.Import(context.Background(), entities.DataExport{}); !errors.Is(err, ErrEmptyImport) {
			t.Fatalf("expected ErrEmptyImport, got %v", err)
		}
	})

	t.Run("delegates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDataAdminRepository(ctrl)
		uc := NewAdminUseCase(repo)

		data := entities.DataExport{Budgets: []entities.Budget{{ID: "b-1"}}}
		repo.EXPECT().ImportAll(gomock.Any(), data).Return(nil)

		if err := uc.Import(context.Background(), data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAdminUseCase_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDataAdminRepository(ctrl)
	uc := NewAdminUseCase(repo)

	repo.EXPECT().Seed(gomock.Any(), gomock.AssignableToTypeOf(entities.DataExport{})).DoAndReturn(
		func(_ context.Context, data entities.DataExport) error {
			if len(data.Services) == 0 {
				t.Fatalf("expected seed catalog services")
			}
			return nil
		},
	)

	if err := uc.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuditUseCase_List(t *testing.T) {
	t.Run("defaults limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewAuditUseCase(repo)

		repo.EXPECT().List(gomock.Any(), defaultAuditListLimit).Return(nil, nil)

		if _, err := uc.List(context.Background(), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("caps limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewAuditUseCase(repo)

		repo.EXPECT().List(gomock.Any(), maxAuditListLimit).Return(nil, nil)

		if _, err := uc.List(context.Background(), 10000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
