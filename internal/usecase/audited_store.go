package usecase

import (
	"context"
	"fmt"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"
)

// Audited repository decorators. Each wraps the matching repository
// interface, passes reads straight through, and turns every write into a
// read-before / delegate / diff / log sequence.
//
// The before-read and the delegated write are two separate storage calls and
// are not transactional: a concurrent external writer can slip between them,
// in which case the data outcome is still correct but the pair of audit
// entries can be misleading. Accepted for a single-writer local store.
//
// Storage failures propagate unmodified and produce no audit entry. What an
// audit-log failure does is decided by the configured AuditFailurePolicy.

// NewAuditedBudgetRepository wraps a budget repository with audit logging.
func NewAuditedBudgetRepository(inner interfaces.IBudgetRepository, logRepo interfaces.IAuditLogRepository, policy AuditFailurePolicy) *AuditedBudgetRepository {
	return &AuditedBudgetRepository{inner: inner, auditor: newAuditor(logRepo, policy)}
}

type AuditedBudgetRepository struct {
	inner   interfaces.IBudgetRepository
	auditor *auditor
}

var _ interfaces.IBudgetRepository = (*AuditedBudgetRepository)(nil)

func (r *AuditedBudgetRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *AuditedBudgetRepository) List(ctx context.Context, filter interfaces.BudgetFilter) ([]entities.Budget, error) {
	return r.inner.List(ctx, filter)
}

func (r *AuditedBudgetRepository) Save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	before, err := r.inner.GetByID(ctx, b.ID)
	if err != nil {
		return entities.Budget{}, err
	}

	after, err := r.inner.Save(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}

	label := budgetLabel(after)
	entry := entities.AuditEntry{
		EntityType:  "budget",
		EntityID:    after.ID,
		EntityLabel: label,
		After:       toJSON(after),
	}

	if before.ID == "" {
		entry.Action = entities.ActionCreate
		entry.Summary = fmt.Sprintf("budget %q created", label)
	} else {
		entry.Before = toJSON(before)
		entry.Action = entities.ActionUpdate
		base := fmt.Sprintf("budget %q updated", label)

		// The generic diff skips the line-item collection; the line-item
		// diff owns it. Their outputs are concatenated, never merged.
		skip := map[string]bool{"line items": true}
		if before.Status != after.Status {
			entry.Action = entities.ActionStatusChange
			base = fmt.Sprintf("budget %q status %s → %s", label, before.Status, after.Status)
			// The base text already states the transition.
			skip["status"] = true
		}

		changes := DiffChanges(budgetSnapshot(before), budgetSnapshot(after), skip)
		changes = append(changes, DiffLineItems(before.LineItems, after.LineItems)...)
		entry.Summary = SummariseChanges(base, changes)
	}

	if err := r.auditor.record(ctx, entry); err != nil {
		return entities.Budget{}, err
	}
	return after, nil
}

func (r *AuditedBudgetRepository) Delete(ctx context.Context, id string) error {
	before, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	if before.ID == "" {
		return nil
	}

	label := budgetLabel(before)
	return r.auditor.record(ctx, entities.AuditEntry{
		EntityType:  "budget",
		EntityID:    before.ID,
		EntityLabel: label,
		Action:      entities.ActionDelete,
		Summary:     fmt.Sprintf("budget %q deleted", label),
		Before:      toJSON(before),
	})
}

// NewAuditedServiceRepository wraps a service repository with audit logging.
func NewAuditedServiceRepository(inner interfaces.IServiceRepository, logRepo interfaces.IAuditLogRepository, policy AuditFailurePolicy) *AuditedServiceRepository {
	return &AuditedServiceRepository{inner: inner, auditor: newAuditor(logRepo, policy)}
}

type AuditedServiceRepository struct {
	inner   interfaces.IServiceRepository
	auditor *auditor
}

var _ interfaces.IServiceRepository = (*AuditedServiceRepository)(nil)

func (r *AuditedServiceRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *AuditedServiceRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.inner.List(ctx)
}

func (r *AuditedServiceRepository) Save(ctx context.Context, s entities.Service) (entities.Service, error) {
	before, err := r.inner.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Service{}, err
	}

	after, err := r.inner.Save(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}

	label := serviceLabel(after)
	entry := entities.AuditEntry{
		EntityType:  "service",
		EntityID:    after.ID,
		EntityLabel: label,
		After:       toJSON(after),
	}

	if before.ID == "" {
		entry.Action = entities.ActionCreate
		entry.Summary = fmt.Sprintf("service %q created", label)
	} else {
		entry.Before = toJSON(before)
		entry.Action = entities.ActionUpdate
		changes := DiffChanges(serviceSnapshot(before), serviceSnapshot(after), nil)
		entry.Summary = SummariseChanges(fmt.Sprintf("service %q updated", label), changes)
	}

	if err := r.auditor.record(ctx, entry); err != nil {
		return entities.Service{}, err
	}
	return after, nil
}

func (r *AuditedServiceRepository) Delete(ctx context.Context, id string) error {
	before, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	if before.ID == "" {
		return nil
	}

	label := serviceLabel(before)
	return r.auditor.record(ctx, entities.AuditEntry{
		EntityType:  "service",
		EntityID:    before.ID,
		EntityLabel: label,
		Action:      entities.ActionDelete,
		Summary:     fmt.Sprintf("service %q deleted", label),
		Before:      toJSON(before),
	})
}

// NewAuditedDataAdminRepository wraps the bulk maintenance operations.
// Seed and import log one coarse entry each instead of one per record.
func NewAuditedDataAdminRepository(inner interfaces.IDataAdminRepository, logRepo interfaces.IAuditLogRepository, policy AuditFailurePolicy) *AuditedDataAdminRepository {
	return &AuditedDataAdminRepository{inner: inner, logRepo: logRepo, auditor: newAuditor(logRepo, policy)}
}

type AuditedDataAdminRepository struct {
	inner   interfaces.IDataAdminRepository
	logRepo interfaces.IAuditLogRepository
	auditor *auditor
}

var _ interfaces.IDataAdminRepository = (*AuditedDataAdminRepository)(nil)

func (r *AuditedDataAdminRepository) ExportAll(ctx context.Context) (entities.DataExport, error) {
	return r.inner.ExportAll(ctx)
}

func (r *AuditedDataAdminRepository) ImportAll(ctx context.Context, data entities.DataExport) error {
	if err := r.inner.ImportAll(ctx, data); err != nil {
		return err
	}
	return r.auditor.record(ctx, entities.AuditEntry{
		EntityType:  "data",
		EntityLabel: "bulk import",
		Action:      entities.ActionImport,
		Summary:     fmt.Sprintf("imported %d services and %d budgets", len(data.Services), len(data.Budgets)),
	})
}

func (r *AuditedDataAdminRepository) Seed(ctx context.Context, data entities.DataExport) error {
	if err := r.inner.Seed(ctx, data); err != nil {
		return err
	}
	return r.auditor.record(ctx, entities.AuditEntry{
		EntityType:  "data",
		EntityLabel: "seed data",
		Action:      entities.ActionSeed,
		Summary:     fmt.Sprintf("seeded %d services and %d budgets", len(data.Services), len(data.Budgets)),
	})
}

// ClearAll wipes the store and the audit trail itself, leaving a single
// entry recording the wipe.
func (r *AuditedDataAdminRepository) ClearAll(ctx context.Context) error {
	if err := r.inner.ClearAll(ctx); err != nil {
		return err
	}
	if err := r.logRepo.Clear(ctx); err != nil {
		if r.auditor.policy == AuditMandatory {
			return err
		}
	}
	return r.auditor.record(ctx, entities.AuditEntry{
		EntityType:  "data",
		EntityLabel: "all data",
		Action:      entities.ActionDelete,
		Summary:     "all data cleared",
	})
}

// budgetSnapshot projects a budget into the ordered, pre-serialized form the
// generic diff works on. Line items are listed so the skip set can name
// them; their contents are diffed by DiffLineItems.
func budgetSnapshot(b entities.Budget) []FieldValue {
	return []FieldValue{
		{Field: "address", Value: b.PropertyAddress},
		{Field: "suburb", Value: b.Suburb},
		{Field: "size", Value: b.PropertySize},
		{Field: "tier", Value: string(b.SuburbTier)},
		{Field: "status", Value: string(b.Status)},
		{Field: "line items", Value: fmt.Sprintf("%d items", len(b.LineItems))},
	}
}

func serviceSnapshot(s entities.Service) []FieldValue {
	return []FieldValue{
		{Field: "name", Value: s.Name},
		{Field: "category", Value: string(s.Category)},
		{Field: "vendor", Value: s.VendorID},
		{Field: "selector", Value: string(s.VariantSelector)},
		{Field: "variants", Value: fmt.Sprintf("%d variants", len(s.Variants))},
		{Field: "includes tax", Value: fmt.Sprintf("%t", s.IncludesTax)},
		{Field: "active", Value: fmt.Sprintf("%t", s.Active)},
	}
}

func budgetLabel(b entities.Budget) string {
	if b.PropertyAddress != "" {
		return b.PropertyAddress
	}
	return b.ID
}

func serviceLabel(s entities.Service) string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}
