package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"propmarketing/internal/domain/entities"
	mock_interfaces "propmarketing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("missing address", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Budget{PropertyAddress: "   "})
		if !errors.Is(err, ErrInvalidBudgetInput) {
			t.Fatalf("expected ErrInvalidBudgetInput, got %v", err)
		}
	})

	t.Run("success resolves items and defaults status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewBudgetUseCase(repo, serviceRepo)

		serviceRepo.EXPECT().List(gomock.Any()).Return([]entities.Service{sizedService()}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" {
					t.Fatalf("expected generated id")
				}
				if b.Status != entities.BudgetStatusDraft {
					t.Fatalf("expected draft status, got %s", b.Status)
				}
				if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if b.LineItems[0].SchedulePrice != 440 || b.LineItems[0].VariantID != "v-medium" {
					t.Fatalf("expected resolved line item, got %+v", b.LineItems[0])
				}
				return b, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Budget{
			PropertyAddress: " 1 Smith St ",
			PropertySize:    entities.SizeMedium,
			LineItems:       []entities.LineItem{{ServiceID: "svc-photo", IsSelected: true}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.Update(context.Background(), entities.Budget{ID: "b-1", PropertyAddress: "1 Smith St"})
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("preserves status and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewBudgetUseCase(repo, serviceRepo)

		created := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
		existing := entities.Budget{
			ID:              "b-1",
			PropertyAddress: "1 Smith St",
			Status:          entities.BudgetStatusApproved,
			CreatedAt:       created,
		}
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(existing, nil)
		serviceRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.Status != entities.BudgetStatusApproved {
					t.Fatalf("update must not change status, got %s", b.Status)
				}
				if !b.CreatedAt.Equal(created) {
					t.Fatalf("update must keep creation time, got %v", b.CreatedAt)
				}
				if b.UpdatedAt.Equal(created) || b.UpdatedAt.IsZero() {
					t.Fatalf("expected refreshed update time")
				}
				return b, nil
			},
		)

		// Status in the payload is ignored.
		_, err := uc.Update(context.Background(), entities.Budget{
			ID:              "b-1",
			PropertyAddress: "2 New St",
			Status:          entities.BudgetStatusArchived,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_Transitions(t *testing.T) {
	transition := func(t *testing.T, from entities.BudgetStatus, call func(uc IBudgetUseCase) (entities.Budget, error), want entities.BudgetStatus) error {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: from}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.Status != want {
					t.Fatalf("expected status %s, got %s", want, b.Status)
				}
				return b, nil
			},
		).AnyTimes()

		_, err := call(uc)
		return err
	}

	t.Run("draft to approved", func(t *testing.T) {
		err := transition(t, entities.BudgetStatusDraft, func(uc IBudgetUseCase) (entities.Budget, error) {
			return uc.Approve(context.Background(), "b-1")
		}, entities.BudgetStatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approved to sent", func(t *testing.T) {
		err := transition(t, entities.BudgetStatusApproved, func(uc IBudgetUseCase) (entities.Budget, error) {
			return uc.Send(context.Background(), "b-1")
		}, entities.BudgetStatusSent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approved back to draft", func(t *testing.T) {
		err := transition(t, entities.BudgetStatusApproved, func(uc IBudgetUseCase) (entities.Budget, error) {
			return uc.RevertToDraft(context.Background(), "b-1")
		}, entities.BudgetStatusDraft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sent to archived", func(t *testing.T) {
		err := transition(t, entities.BudgetStatusSent, func(uc IBudgetUseCase) (entities.Budget, error) {
			return uc.Archive(context.Background(), "b-1")
		}, entities.BudgetStatusArchived)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("draft cannot be sent", func(t *testing.T) {
		err := transition(t, entities.BudgetStatusDraft, func(uc IBudgetUseCase) (entities.Budget, error) {
			return uc.Send(context.Background(), "b-1")
		}, entities.BudgetStatusSent)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("archived is terminal", func(t *testing.T) {
		err := transition(t, entities.BudgetStatusArchived, func(uc IBudgetUseCase) (entities.Budget, error) {
			return uc.RevertToDraft(context.Background(), "b-1")
		}, entities.BudgetStatusDraft)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("sent cannot revert", func(t *testing.T) {
		err := transition(t, entities.BudgetStatusSent, func(uc IBudgetUseCase) (entities.Budget, error) {
			return uc.RevertToDraft(context.Background(), "b-1")
		}, entities.BudgetStatusDraft)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestBudgetUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Budget{}, nil)

		_, err := uc.GetByID(context.Background(), "ghost")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetUseCase(repo, nil)

	b := entities.Budget{
		ID: "b-1",
		LineItems: []entities.LineItem{
			{ServiceID: "a", IsSelected: true, SchedulePrice: 330},
			{ServiceID: "b", IsSelected: false, SchedulePrice: 220},
		},
	}
	repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

	s, err := uc.Summary(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SelectedCount != 1 || s.Total != 330 || s.GST != 30.00 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestBudgetUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

	if err := uc.Delete(context.Background(), "b-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
