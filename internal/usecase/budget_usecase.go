package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrInvalidBudgetID         = errors.New("invalid budget id")
	ErrInvalidBudgetInput      = errors.New("invalid budget input")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// IBudgetUseCase exposes budget operations.
//
// Status is never set through Update; the four transition operations are the
// only way a budget moves through its lifecycle, which is what lets the audit
// decorator classify status changes reliably.

type IBudgetUseCase interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter interfaces.BudgetFilter) ([]entities.Budget, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, id string) (BudgetSummary, error)
	Approve(ctx context.Context, id string) (entities.Budget, error)
	Send(ctx context.Context, id string) (entities.Budget, error)
	RevertToDraft(ctx context.Context, id string) (entities.Budget, error)
	Archive(ctx context.Context, id string) (entities.Budget, error)
}

// allowedTransitions are the only legal lifecycle edges. archived has no
// outgoing edges.
var allowedTransitions = map[entities.BudgetStatus][]entities.BudgetStatus{
	entities.BudgetStatusDraft:    {entities.BudgetStatusApproved},
	entities.BudgetStatusApproved: {entities.BudgetStatusSent, entities.BudgetStatusDraft},
	entities.BudgetStatusSent:     {entities.BudgetStatusArchived},
}

func canTransition(from, to entities.BudgetStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type BudgetUseCase struct {
	repo        interfaces.IBudgetRepository
	serviceRepo interfaces.IServiceRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, serviceRepo interfaces.IServiceRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, serviceRepo: serviceRepo}
}

func (u *BudgetUseCase) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	b.PropertyAddress = strings.TrimSpace(b.PropertyAddress)
	if b.PropertyAddress == "" {
		return entities.Budget{}, ErrInvalidBudgetInput
	}

	items, err := u.resolveAgainstCatalog(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.LineItems = items
	b.Status = entities.BudgetStatusDraft
	b.CreatedAt = now
	b.UpdatedAt = now
	return u.repo.Save(ctx, b)
}

func (u *BudgetUseCase) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	b.ID = strings.TrimSpace(b.ID)
	if b.ID == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b.PropertyAddress = strings.TrimSpace(b.PropertyAddress)
	if b.PropertyAddress == "" {
		return entities.Budget{}, ErrInvalidBudgetInput
	}

	existing, err := u.repo.GetByID(ctx, b.ID)
	if err != nil {
		return entities.Budget{}, err
	}
	if existing.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	items, err := u.resolveAgainstCatalog(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}

	b.LineItems = items
	b.Status = existing.Status
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, b)
}

// resolveAgainstCatalog refreshes the budget's line items for its own
// context: schedule prices and display names follow the catalog, manual
// overrides survive untouched.
func (u *BudgetUseCase) resolveAgainstCatalog(ctx context.Context, b entities.Budget) ([]entities.LineItem, error) {
	services, err := u.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items, _ := ResolveLineItems(b.LineItems, services, b.Context())
	return items, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context, filter interfaces.BudgetFilter) ([]entities.Budget, error) {
	return u.repo.List(ctx, filter)
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBudgetID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrBudgetNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *BudgetUseCase) Summary(ctx context.Context, id string) (BudgetSummary, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return BudgetSummary{}, err
	}
	return CalculateBudgetSummary(b.LineItems), nil
}

func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusApproved)
}

func (u *BudgetUseCase) Send(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusSent)
}

func (u *BudgetUseCase) RevertToDraft(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusDraft)
}

func (u *BudgetUseCase) Archive(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusArchived)
}

func (u *BudgetUseCase) transition(ctx context.Context, id string, to entities.BudgetStatus) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	if !canTransition(b.Status, to) {
		return entities.Budget{}, ErrInvalidStatusTransition
	}

	b.Status = to
	b.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, b)
}
