package entities

import (
	"encoding/json"
	"time"
)

// AuditAction classifies what a single audit entry records.

type AuditAction string

const (
	ActionCreate       AuditAction = "create"
	ActionUpdate       AuditAction = "update"
	ActionDelete       AuditAction = "delete"
	ActionStatusChange AuditAction = "statusChange"
	ActionSeed         AuditAction = "seed"
	ActionImport       AuditAction = "import"
)

// AuditEntry is an immutable record of one write action, with a human
// summary and raw before/after snapshots for traceability.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Entries are append-only; nothing in the codebase mutates one after it is
// written.
type AuditEntry struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	User        string          `json:"user"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id,omitempty"`
	EntityLabel string          `json:"entity_label"`
	Action      AuditAction     `json:"action"`
	Summary     string          `json:"summary"`
	Before      json.RawMessage `json:"before,omitempty"`
	After       json.RawMessage `json:"after,omitempty"`
}

// FieldChange is a single human-readable field transition, the atomic unit
// the diff engine produces.
type FieldChange struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}
