package interfaces

import (
	"context"
	"propmarketing/internal/domain/entities"
)

// BudgetFilter narrows bulk budget reads. Zero values match everything.
type BudgetFilter struct {
	Status entities.BudgetStatus
	Search string // free text over address and suburb
}

// IBudgetRepository abstracts DynamoDB persistence for Budgets.
//
// Save is an upsert and returns the confirmed stored state so callers (the
// audit decorator in particular) never need a second read after a write.

type IBudgetRepository interface {
	Save(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter BudgetFilter) ([]entities.Budget, error)
	Delete(ctx context.Context, id string) error
}
