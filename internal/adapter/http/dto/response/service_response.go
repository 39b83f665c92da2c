package response

import "propmarketing/internal/domain/entities"

type VariantResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BasePrice        float64  `json:"base_price"`
	SizeMatch        string   `json:"size_match,omitempty"`
	TierMatch        string   `json:"tier_match,omitempty"`
	IncludedServices []string `json:"included_services,omitempty"`
}

type ServiceResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	VendorID        string            `json:"vendor_id,omitempty"`
	VariantSelector string            `json:"variant_selector,omitempty"`
	Selectable      bool              `json:"selectable"`
	Variants        []VariantResponse `json:"variants"`
	IncludesTax     bool              `json:"includes_tax"`
	Active          bool              `json:"active"`
}

func FromService(s entities.Service) ServiceResponse {
	variants := make([]VariantResponse, len(s.Variants))
	for i, v := range s.Variants {
		variants[i] = VariantResponse{
			ID:               v.ID,
			Name:             v.Name,
			BasePrice:        v.BasePrice,
			SizeMatch:        v.SizeMatch,
			TierMatch:        v.TierMatch,
			IncludedServices: v.IncludedServices,
		}
	}
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        string(s.Category),
		VendorID:        s.VendorID,
		VariantSelector: string(s.VariantSelector),
		Selectable:      s.VariantSelector == entities.SelectorManual,
		Variants:        variants,
		IncludesTax:     s.IncludesTax,
		Active:          s.Active,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = FromService(s)
	}
	return out
}
