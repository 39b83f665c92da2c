package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// AuditFailurePolicy decides what happens when the underlying write succeeds
// but appending the audit entry fails.
//
//   - AuditBestEffort: log and continue. The default; with a single-user
//     local store a lost audit line is preferable to failing a write that
//     already happened.
//   - AuditMandatory: surface the audit error to the caller. The data write
//     is NOT rolled back; the caller learns the trail is incomplete.

type AuditFailurePolicy string

const (
	AuditBestEffort AuditFailurePolicy = "best_effort"
	AuditMandatory  AuditFailurePolicy = "mandatory"
)

// ParseAuditFailurePolicy maps a config string to a policy, defaulting to
// best-effort for anything unrecognised.
func ParseAuditFailurePolicy(v string) AuditFailurePolicy {
	if strings.EqualFold(strings.TrimSpace(v), string(AuditMandatory)) {
		return AuditMandatory
	}
	return AuditBestEffort
}

type actorKey struct{}

// DefaultActor attributes writes that carry no explicit actor.
const DefaultActor = "system"

// WithActor attaches the acting user to the context for audit attribution.
func WithActor(ctx context.Context, user string) context.Context {
	user = strings.TrimSpace(user)
	if user == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, user)
}

// ActorFromContext returns the acting user, or DefaultActor.
func ActorFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(actorKey{}).(string); ok && user != "" {
		return user
	}
	return DefaultActor
}

// auditor stamps and persists audit entries for the repository decorators,
// applying the failure policy in one place.
type auditor struct {
	log    interfaces.IAuditLogRepository
	policy AuditFailurePolicy
	now    func() time.Time
}

func newAuditor(logRepo interfaces.IAuditLogRepository, policy AuditFailurePolicy) *auditor {
	return &auditor{log: logRepo, policy: policy, now: func() time.Time { return time.Now().UTC() }}
}

func (a *auditor) record(ctx context.Context, entry entities.AuditEntry) error {
	entry.ID = uuid.NewString()
	entry.Timestamp = a.now()
	entry.User = ActorFromContext(ctx)

	if err := a.log.Append(ctx, entry); err != nil {
		if a.policy == AuditMandatory {
			return err
		}
		log.Printf("[audit] dropping entry entity=%s id=%s action=%s err=%v", entry.EntityType, entry.EntityID, entry.Action, err)
	}
	return nil
}

func toJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
