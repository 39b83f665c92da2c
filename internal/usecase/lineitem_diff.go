package usecase

import (
	"fmt"

	"propmarketing/internal/domain/entities"
)

// DiffLineItems diffs two line-item collections as keyed sets rather than
// positional arrays: items are matched by service id, so reordering alone
// never produces a change.
//
// Removed services are reported first (in before order), then for every
// service in after order: a single "added" entry for new services, or up to
// three independent entries (selection, variant, override) for services
// present on both sides.
func DiffLineItems(before, after []entities.LineItem) []entities.FieldChange {
	beforeByService := make(map[string]entities.LineItem, len(before))
	for _, item := range before {
		beforeByService[item.ServiceID] = item
	}
	afterByService := make(map[string]entities.LineItem, len(after))
	for _, item := range after {
		afterByService[item.ServiceID] = item
	}

	var changes []entities.FieldChange
	for _, item := range before {
		if _, ok := afterByService[item.ServiceID]; !ok {
			changes = append(changes, entities.FieldChange{
				Field: lineItemLabel(item),
				From:  "included",
				To:    "removed",
			})
		}
	}

	for _, item := range after {
		prev, ok := beforeByService[item.ServiceID]
		if !ok {
			changes = append(changes, entities.FieldChange{
				Field: lineItemLabel(item),
				From:  "—",
				To:    "added",
			})
			continue
		}

		if prev.IsSelected != item.IsSelected {
			changes = append(changes, entities.FieldChange{
				Field: lineItemLabel(item),
				From:  selectionLabel(prev.IsSelected),
				To:    selectionLabel(item.IsSelected),
			})
		}
		if prev.VariantID != item.VariantID {
			changes = append(changes, entities.FieldChange{
				Field: lineItemLabel(item) + " variant",
				From:  variantLabel(prev),
				To:    variantLabel(item),
			})
		}
		if !overridesEqual(prev.OverridePrice, item.OverridePrice) {
			changes = append(changes, entities.FieldChange{
				Field: lineItemLabel(item) + " price",
				From:  overrideLabel(prev.OverridePrice),
				To:    overrideLabel(item.OverridePrice),
			})
		}
	}
	return changes
}

// lineItemLabel falls back to the raw service id so a summary line is never
// empty.
func lineItemLabel(item entities.LineItem) string {
	label := item.ServiceName
	if label == "" {
		label = item.ServiceID
	}
	return fmt.Sprintf("service %q", label)
}

func selectionLabel(selected bool) string {
	if selected {
		return "selected"
	}
	return "deselected"
}

func variantLabel(item entities.LineItem) string {
	switch {
	case item.VariantName != "":
		return item.VariantName
	case item.VariantID != "":
		return item.VariantID
	default:
		return "—"
	}
}

func overrideLabel(price *float64) string {
	if price == nil {
		return "—"
	}
	return fmt.Sprintf("$%.2f", *price)
}

func overridesEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
