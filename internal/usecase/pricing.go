package usecase

import (
	"math"

	"propmarketing/internal/domain/entities"
)

// gstRate is the inclusive tax rate applied to schedule prices. Prices are
// tax-inclusive by convention, so the GST component of a gross amount is
// gross - gross/(1+gstRate).
const gstRate = 0.10

// EffectivePrice is the price of record for a line item: the manual override
// when one is set, otherwise the schedule price. The override, once set, is
// authoritative regardless of later context changes.
func EffectivePrice(item entities.LineItem) float64 {
	if item.IsOverridden && item.OverridePrice != nil {
		return *item.OverridePrice
	}
	return item.SchedulePrice
}

// ResolveLineItems re-resolves every line item against the service catalog
// and a (possibly new) context, refreshing service/variant names and schedule
// prices. Overrides are never touched.
//
// The boolean reports whether any item actually changed, so reactive callers
// can skip replacing state when a context recomputation resolved to the same
// result. Running the function twice with the same inputs reproduces the same
// output.
func ResolveLineItems(items []entities.LineItem, services []entities.Service, ctx entities.ResolutionContext) ([]entities.LineItem, bool) {
	byID := make(map[string]entities.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	out := make([]entities.LineItem, len(items))
	changed := false
	for i, item := range items {
		next := item
		if svc, ok := byID[item.ServiceID]; ok {
			next.ServiceName = svc.Name
			if v, ok := ResolveVariant(svc, ctx, item.VariantID); ok {
				next.VariantID = v.ID
				next.VariantName = v.Name
				next.SchedulePrice = v.BasePrice
			} else {
				// No variant matches the context: the schedule price is
				// unknown and the UI shows a dash.
				next.VariantID = ""
				next.VariantName = ""
				next.SchedulePrice = 0
			}
		}
		if next != item {
			changed = true
		}
		out[i] = next
	}
	return out, changed
}

// BudgetSummary aggregates a budget's line items for display.
type BudgetSummary struct {
	SelectedCount int     `json:"selected_count"`
	TotalCount    int     `json:"total_count"`
	Subtotal      float64 `json:"subtotal"`
	GST           float64 `json:"gst"`
	Total         float64 `json:"total"`
}

// CalculateBudgetSummary totals the selected line items. Prices are
// tax-inclusive, so subtotal and total are the same figure and GST is the
// extracted inclusive component, rounded to cents for display only. Empty or
// fully deselected input yields an all-zero summary.
func CalculateBudgetSummary(items []entities.LineItem) BudgetSummary {
	s := BudgetSummary{TotalCount: len(items)}
	for _, item := range items {
		if !item.IsSelected {
			continue
		}
		s.SelectedCount++
		s.Total += EffectivePrice(item)
	}
	s.Subtotal = s.Total
	s.GST = roundCents(s.Total - s.Total/(1+gstRate))
	return s
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
