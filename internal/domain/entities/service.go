package entities

// ServiceCategory buckets catalog services for dashboard rollups.
//
// CategoryOther doubles as the fallback bucket when a budget line references
// a service id that no longer exists in the catalog.

type ServiceCategory string

const (
	CategoryPhotography ServiceCategory = "photography"
	CategoryFloorPlan   ServiceCategory = "floorplan"
	CategoryListing     ServiceCategory = "listing"
	CategorySignage     ServiceCategory = "signage"
	CategoryVideo       ServiceCategory = "video"
	CategoryOther       ServiceCategory = "other"
)

// KnownCategories returns every category in display order. Rollups zero-fill
// from this list so a category never disappears from the dashboard.
func KnownCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryPhotography,
		CategoryFloorPlan,
		CategoryListing,
		CategorySignage,
		CategoryVideo,
		CategoryOther,
	}
}

// VariantSelector is the rule used to pick the priced variant of a service.
//
//   - SelectorNone: the service has one default variant, context is ignored.
//   - SelectorManual: the agent picks the variant in the UI.
//   - SelectorPropertySize / SelectorSuburbTier: resolved from the budget's
//     property size / suburb tier.

type VariantSelector string

const (
	SelectorNone         VariantSelector = ""
	SelectorManual       VariantSelector = "manual"
	SelectorPropertySize VariantSelector = "propertySize"
	SelectorSuburbTier   VariantSelector = "suburbTier"
)

// Variant is a named, priced option of a Service (e.g. "8 Photos").
// At most one of SizeMatch/TierMatch is populated, depending on the
// service's selector.
type Variant struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BasePrice        float64  `json:"base_price"`
	SizeMatch        string   `json:"size_match,omitempty"`
	TierMatch        string   `json:"tier_match,omitempty"`
	IncludedServices []string `json:"included_services,omitempty"`
}

// Service is a vendor service that can be added to a marketing budget.
//
// Invariant: a priced service carries at least one variant; with
// SelectorNone exactly the first variant applies regardless of context.
type Service struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        ServiceCategory `json:"category"`
	VendorID        string          `json:"vendor_id,omitempty"`
	VariantSelector VariantSelector `json:"variant_selector,omitempty"`
	Variants        []Variant       `json:"variants"`
	IncludesTax     bool            `json:"includes_tax"`
	Active          bool            `json:"active"`
}

// ResolutionContext is derived transiently from a budget's suburb tier and
// property size. It is never persisted.
type ResolutionContext struct {
	PropertySize string
	SuburbTier   string
}
