package request

import "propmarketing/internal/domain/entities"

type LineItemRequest struct {
	ServiceID     string   `json:"service_id" binding:"required"`
	VariantID     string   `json:"variant_id"`
	IsSelected    *bool    `json:"is_selected"`
	OverridePrice *float64 `json:"override_price"`
}

// BudgetRequest is the payload for creating or updating a budget. Line items
// only carry user choices (service, variant, selection, override); names and
// schedule prices are resolved server-side against the catalog.
type BudgetRequest struct {
	PropertyAddress string            `json:"property_address" binding:"required"`
	Suburb          string            `json:"suburb"`
	PropertySize    string            `json:"property_size"`
	SuburbTier      string            `json:"suburb_tier"`
	LineItems       []LineItemRequest `json:"line_items"`
}

func (r BudgetRequest) ToBudget() entities.Budget {
	items := make([]entities.LineItem, len(r.LineItems))
	for i, li := range r.LineItems {
		items[i] = entities.LineItem{
			ServiceID:     li.ServiceID,
			VariantID:     li.VariantID,
			IsSelected:    boolOrDefault(li.IsSelected, true),
			OverridePrice: li.OverridePrice,
			IsOverridden:  li.OverridePrice != nil,
		}
	}
	return entities.Budget{
		PropertyAddress: r.PropertyAddress,
		Suburb:          r.Suburb,
		PropertySize:    r.PropertySize,
		SuburbTier:      entities.SuburbTier(r.SuburbTier),
		LineItems:       items,
	}
}
