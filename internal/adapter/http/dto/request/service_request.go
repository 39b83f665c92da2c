package request

import "propmarketing/internal/domain/entities"

type VariantRequest struct {
	ID               string   `json:"id"`
	Name             string   `json:"name" binding:"required"`
	BasePrice        float64  `json:"base_price"`
	SizeMatch        string   `json:"size_match"`
	TierMatch        string   `json:"tier_match"`
	IncludedServices []string `json:"included_services"`
}

// ServiceRequest is the payload for creating or updating a catalog service.
// IncludesTax and Active default to true when omitted; schedule prices are
// tax-inclusive by convention and new services should be orderable.
type ServiceRequest struct {
	Name            string           `json:"name" binding:"required"`
	Category        string           `json:"category"`
	VendorID        string           `json:"vendor_id"`
	VariantSelector string           `json:"variant_selector"`
	Variants        []VariantRequest `json:"variants" binding:"required"`
	IncludesTax     *bool            `json:"includes_tax"`
	Active          *bool            `json:"active"`
}

func (r ServiceRequest) ToService() entities.Service {
	variants := make([]entities.Variant, len(r.Variants))
	for i, v := range r.Variants {
		variants[i] = entities.Variant{
			ID:               v.ID,
			Name:             v.Name,
			BasePrice:        v.BasePrice,
			SizeMatch:        v.SizeMatch,
			TierMatch:        v.TierMatch,
			IncludedServices: v.IncludedServices,
		}
	}
	return entities.Service{
		Name:            r.Name,
		Category:        entities.ServiceCategory(r.Category),
		VendorID:        r.VendorID,
		VariantSelector: entities.VariantSelector(r.VariantSelector),
		Variants:        variants,
		IncludesTax:     boolOrDefault(r.IncludesTax, true),
		Active:          boolOrDefault(r.Active, true),
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
