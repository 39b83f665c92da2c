package response

import (
	"encoding/json"
	"time"

	"propmarketing/internal/domain/entities"
)

type AuditEntryResponse struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	User        string          `json:"user"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id,omitempty"`
	EntityLabel string          `json:"entity_label"`
	Action      string          `json:"action"`
	Summary     string          `json:"summary"`
	Before      json.RawMessage `json:"before,omitempty"`
	After       json.RawMessage `json:"after,omitempty"`
}

func FromAuditEntry(e entities.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          e.ID,
		Timestamp:   e.Timestamp,
		User:        e.User,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		EntityLabel: e.EntityLabel,
		Action:      string(e.Action),
		Summary:     e.Summary,
		Before:      e.Before,
		After:       e.After,
	}
}

func FromAuditEntries(entries []entities.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = FromAuditEntry(e)
	}
	return out
}
