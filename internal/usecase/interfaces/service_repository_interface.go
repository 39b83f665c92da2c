package interfaces

import (
	"context"
	"propmarketing/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for catalog Services.

type IServiceRepository interface {
	Save(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Delete(ctx context.Context, id string) error
}
