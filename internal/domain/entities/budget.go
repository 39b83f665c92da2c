package entities

import "time"

// BudgetStatus represents the lifecycle of a marketing budget.
//
// Allowed transitions (enforced by the budget use case):
//   - draft    -> approved
//   - approved -> sent
//   - approved -> draft (explicit revert)
//   - sent     -> archived
//
// archived is terminal.

type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusSent     BudgetStatus = "sent"
	BudgetStatusArchived BudgetStatus = "archived"
)

// AllStatuses returns every budget status in lifecycle order. Status counts
// zero-fill from this list.
func AllStatuses() []BudgetStatus {
	return []BudgetStatus{
		BudgetStatusDraft,
		BudgetStatusApproved,
		BudgetStatusSent,
		BudgetStatusArchived,
	}
}

// SuburbTier classifies the budget's suburb for pricing and rollups.

type SuburbTier string

const (
	TierBasic    SuburbTier = "basic"
	TierStandard SuburbTier = "standard"
	TierPremium  SuburbTier = "premium"
)

// AllTiers returns every suburb tier. Spend-by-tier rollups zero-fill from it.
func AllTiers() []SuburbTier {
	return []SuburbTier{TierBasic, TierStandard, TierPremium}
}

// Property sizes used by propertySize variant matching.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// LineItem is one service on a budget.
//
// IsOverridden == true means OverridePrice is the price of record; otherwise
// SchedulePrice is. A deselected item stays in the collection (soft state) so
// re-selecting it is non-destructive, but it is excluded from every monetary
// aggregate.
type LineItem struct {
	ServiceID     string   `json:"service_id"`
	ServiceName   string   `json:"service_name,omitempty"`
	VariantID     string   `json:"variant_id,omitempty"`
	VariantName   string   `json:"variant_name,omitempty"`
	IsSelected    bool     `json:"is_selected"`
	SchedulePrice float64  `json:"schedule_price"`
	OverridePrice *float64 `json:"override_price,omitempty"`
	IsOverridden  bool     `json:"is_overridden"`
}

// Budget is the property-marketing budget persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A budget owns its LineItems exclusively; line item slices are never shared
// across budgets.
type Budget struct {
	ID              string       `json:"id"`
	PropertyAddress string       `json:"property_address"`
	Suburb          string       `json:"suburb"`
	PropertySize    string       `json:"property_size"`
	SuburbTier      SuburbTier   `json:"suburb_tier"`
	LineItems       []LineItem   `json:"line_items"`
	Status          BudgetStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Context derives the transient resolution context used to pick priced
// variants for this budget.
func (b Budget) Context() ResolutionContext {
	return ResolutionContext{
		PropertySize: b.PropertySize,
		SuburbTier:   string(b.SuburbTier),
	}
}
