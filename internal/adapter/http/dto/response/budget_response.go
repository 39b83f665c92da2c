package response

import (
	"time"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase"
)

type LineItemResponse struct {
	ServiceID      string   `json:"service_id"`
	ServiceName    string   `json:"service_name,omitempty"`
	VariantID      string   `json:"variant_id,omitempty"`
	VariantName    string   `json:"variant_name,omitempty"`
	IsSelected     bool     `json:"is_selected"`
	SchedulePrice  float64  `json:"schedule_price"`
	OverridePrice  *float64 `json:"override_price,omitempty"`
	IsOverridden   bool     `json:"is_overridden"`
	EffectivePrice float64  `json:"effective_price"`
}

type BudgetResponse struct {
	ID              string             `json:"id"`
	PropertyAddress string             `json:"property_address"`
	Suburb          string             `json:"suburb"`
	PropertySize    string             `json:"property_size"`
	SuburbTier      string             `json:"suburb_tier"`
	LineItems       []LineItemResponse `json:"line_items"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]LineItemResponse, len(b.LineItems))
	for i, li := range b.LineItems {
		items[i] = LineItemResponse{
			ServiceID:      li.ServiceID,
			ServiceName:    li.ServiceName,
			VariantID:      li.VariantID,
			VariantName:    li.VariantName,
			IsSelected:     li.IsSelected,
			SchedulePrice:  li.SchedulePrice,
			OverridePrice:  li.OverridePrice,
			IsOverridden:   li.IsOverridden,
			EffectivePrice: usecase.EffectivePrice(li),
		}
	}
	return BudgetResponse{
		ID:              b.ID,
		PropertyAddress: b.PropertyAddress,
		Suburb:          b.Suburb,
		PropertySize:    b.PropertySize,
		SuburbTier:      string(b.SuburbTier),
		LineItems:       items,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = FromBudget(b)
	}
	return out
}

type BudgetSummaryResponse struct {
	SelectedCount int     `json:"selected_count"`
	TotalCount    int     `json:"total_count"`
	Subtotal      float64 `json:"subtotal"`
	GST           float64 `json:"gst"`
	Total         float64 `json:"total"`
}

func FromBudgetSummary(s usecase.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		SelectedCount: s.SelectedCount,
		TotalCount:    s.TotalCount,
		Subtotal:      s.Subtotal,
		GST:           s.GST,
		Total:         s.Total,
	}
}
