package usecase

import (
	"fmt"
	"strings"

	"propmarketing/internal/domain/entities"
)

// FieldValue is one pre-serialized field of an entity snapshot. Snapshots are
// explicit ordered projections per entity kind rather than reflected object
// graphs, which keeps diff output deterministic.
type FieldValue struct {
	Field string
	Value string
}

// DiffChanges compares two flat snapshots field by field, skipping any field
// named in skip (typically collection-valued fields handled by a specialized
// diff). One FieldChange is emitted per field whose value differs. Output
// order follows the before snapshot, with after-only fields appended in
// after order, so audit text stays deterministic.
func DiffChanges(before, after []FieldValue, skip map[string]bool) []entities.FieldChange {
	afterByField := make(map[string]string, len(after))
	for _, fv := range after {
		afterByField[fv.Field] = fv.Value
	}

	var changes []entities.FieldChange
	seen := make(map[string]bool, len(before))
	for _, fv := range before {
		seen[fv.Field] = true
		if skip[fv.Field] {
			continue
		}
		if afterValue, ok := afterByField[fv.Field]; ok && afterValue != fv.Value {
			changes = append(changes, entities.FieldChange{Field: fv.Field, From: fv.Value, To: afterValue})
		}
	}
	for _, fv := range after {
		if seen[fv.Field] || skip[fv.Field] {
			continue
		}
		changes = append(changes, entities.FieldChange{Field: fv.Field, From: "—", To: fv.Value})
	}
	return changes
}

// SummariseChanges renders a one-line human summary: the base text alone when
// nothing changed, otherwise the base text followed by a comma-separated
// "<field> <from> → <to>" tail.
func SummariseChanges(baseText string, changes []entities.FieldChange) string {
	if len(changes) == 0 {
		return baseText
	}
	parts := make([]string, len(changes))
	for i, c := range changes {
		parts[i] = fmt.Sprintf("%s %s → %s", c.Field, c.From, c.To)
	}
	return baseText + ": " + strings.Join(parts, ", ")
}
