package interfaces

import (
	"context"
	"propmarketing/internal/domain/entities"
)

// IAuditLogRepository is the append-only audit trail store.

type IAuditLogRepository interface {
	Append(ctx context.Context, entry entities.AuditEntry) error
	List(ctx context.Context, limit int) ([]entities.AuditEntry, error)
	Clear(ctx context.Context) error
}
