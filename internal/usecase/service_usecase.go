package usecase

import (
	"context"
	"errors"
	"strings"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidServiceInput = errors.New("invalid service input")
)

// ResolvedPrice is the resolver preview returned for a service in a given
// context. Resolved == false means no variant matched (sized/tiered service
// outside its matrix) and the UI shows a dash instead of a price.
type ResolvedPrice struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	VariantID   string  `json:"variant_id,omitempty"`
	VariantName string  `json:"variant_name,omitempty"`
	Price       float64 `json:"price"`
	Resolved    bool    `json:"resolved"`
	Selectable  bool    `json:"selectable"`
}

// IServiceUseCase exposes catalog operations.

type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Delete(ctx context.Context, id string) error
	ResolvePrice(ctx context.Context, serviceID string, rctx entities.ResolutionContext, variantID string) (ResolvedPrice, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := validateService(&s); err != nil {
		return entities.Service{}, err
	}
	s.ID = uuid.NewString()
	return u.repo.Save(ctx, s)
}

func (u *ServiceUseCase) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if err := validateService(&s); err != nil {
		return entities.Service{}, err
	}

	existing, err := u.repo.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Service{}, err
	}
	if existing.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return u.repo.Save(ctx, s)
}

func validateService(s *entities.Service) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return ErrInvalidServiceInput
	}
	// A priced service carries at least one variant.
	if len(s.Variants) == 0 {
		return ErrInvalidServiceInput
	}
	for _, v := range s.Variants {
		if v.BasePrice < 0 {
			return ErrInvalidServiceInput
		}
	}
	if s.Category == "" {
		s.Category = entities.CategoryOther
	}
	for i := range s.Variants {
		if s.Variants[i].ID == "" {
			s.Variants[i].ID = uuid.NewString()
		}
	}
	return nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrServiceNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *ServiceUseCase) ResolvePrice(ctx context.Context, serviceID string, rctx entities.ResolutionContext, variantID string) (ResolvedPrice, error) {
	s, err := u.GetByID(ctx, serviceID)
	if err != nil {
		return ResolvedPrice{}, err
	}

	price := ResolvedPrice{
		ServiceID:   s.ID,
		ServiceName: s.Name,
		Selectable:  HasSelectableVariants(s),
	}
	if v, ok := ResolveVariant(s, rctx, variantID); ok {
		price.VariantID = v.ID
		price.VariantName = v.Name
		price.Price = v.BasePrice
		price.Resolved = true
	}
	return price, nil
}
