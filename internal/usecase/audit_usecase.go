package usecase

import (
	"context"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"
)

const (
	defaultAuditListLimit = 50
	maxAuditListLimit     = 500
)

type IAuditUseCase interface {
	List(ctx context.Context, limit int) ([]entities.AuditEntry, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

func (u *AuditUseCase) List(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}
	if limit > maxAuditListLimit {
		limit = maxAuditListLimit
	}
	return u.repo.List(ctx, limit)
}
