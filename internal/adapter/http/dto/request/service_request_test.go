package request

import (
	"testing"

	"propmarketing/internal/domain/entities"
)

func TestServiceRequest_ToService(t *testing.T) {
	t.Run("defaults tax and active to true", func(t *testing.T) {
		r := ServiceRequest{
			Name:     "Photography",
			Category: "photography",
			Variants: []VariantRequest{{Name: "Standard", BasePrice: 330}},
		}
		s := r.ToService()
		if !s.IncludesTax || !s.Active {
			t.Fatalf("expected defaults true, got %+v", s)
		}
		if s.Category != entities.CategoryPhotography {
			t.Fatalf("unexpected category: %s", s.Category)
		}
	})

	t.Run("explicit false survives", func(t *testing.T) {
		f := false
		r := ServiceRequest{
			Name:     "Photography",
			Variants: []VariantRequest{{Name: "Standard", BasePrice: 330}},
			Active:   &f,
		}
		s := r.ToService()
		if s.Active {
			t.Fatalf("expected active false")
		}
		if !s.IncludesTax {
			t.Fatalf("expected includes tax default true")
		}
	})

	t.Run("variant matches carried through", func(t *testing.T) {
		r := ServiceRequest{
			Name:            "Photography",
			VariantSelector: "propertySize",
			Variants: []VariantRequest{
				{ID: "v-1", Name: "Small", BasePrice: 330, SizeMatch: "small"},
			},
		}
		s := r.ToService()
		if s.VariantSelector != entities.SelectorPropertySize {
			t.Fatalf("unexpected selector: %s", s.VariantSelector)
		}
		if s.Variants[0].SizeMatch != "small" {
			t.Fatalf("unexpected size match: %+v", s.Variants[0])
		}
	})
}
