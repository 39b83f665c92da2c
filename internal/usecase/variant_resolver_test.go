package usecase

import (
	"testing"

	"propmarketing/internal/domain/entities"
)

func sizedService() entities.Service {
	return entities.Service{
		ID:              "svc-photo",
		Name:            "Photography",
		VariantSelector: entities.SelectorPropertySize,
		Variants: []entities.Variant{
			{ID: "v-small", Name: "Small", BasePrice: 330, SizeMatch: entities.SizeSmall},
			{ID: "v-medium", Name: "Medium", BasePrice: 440, SizeMatch: entities.SizeMedium},
			{ID: "v-large", Name: "Large", BasePrice: 550, SizeMatch: entities.SizeLarge},
		},
	}
}

func TestResolveVariant(t *testing.T) {
	t.Run("no variants", func(t *testing.T) {
		_, ok := ResolveVariant(entities.Service{ID: "svc"}, entities.ResolutionContext{}, "")
		if ok {
			t.Fatalf("expected no variant for empty service")
		}
	})

	t.Run("no selector uses first variant", func(t *testing.T) {
		svc := entities.Service{
			ID: "svc",
			Variants: []entities.Variant{
				{ID: "v-1", BasePrice: 165},
				{ID: "v-2", BasePrice: 220},
			},
		}
		v, ok := ResolveVariant(svc, entities.ResolutionContext{PropertySize: entities.SizeLarge}, "v-2")
		if !ok || v.ID != "v-1" {
			t.Fatalf("expected v-1, got %+v ok=%v", v, ok)
		}
	})

	t.Run("single variant ignores selector", func(t *testing.T) {
		svc := sizedService()
		svc.Variants = svc.Variants[:1]
		v, ok := ResolveVariant(svc, entities.ResolutionContext{PropertySize: entities.SizeLarge}, "")
		if !ok || v.ID != "v-small" {
			t.Fatalf("expected the only variant, got %+v ok=%v", v, ok)
		}
	})

	t.Run("manual picks requested variant", func(t *testing.T) {
		svc := entities.Service{
			ID:              "svc",
			VariantSelector: entities.SelectorManual,
			Variants: []entities.Variant{
				{ID: "v-basic", BasePrice: 660},
				{ID: "v-premium", BasePrice: 1540},
			},
		}
		v, ok := ResolveVariant(svc, entities.ResolutionContext{}, "v-premium")
		if !ok || v.ID != "v-premium" {
			t.Fatalf("expected v-premium, got %+v ok=%v", v, ok)
		}
	})

	t.Run("manual falls back to first on unknown id", func(t *testing.T) {
		svc := entities.Service{
			ID:              "svc",
			VariantSelector: entities.SelectorManual,
			Variants: []entities.Variant{
				{ID: "v-basic", BasePrice: 660},
				{ID: "v-premium", BasePrice: 1540},
			},
		}
		v, ok := ResolveVariant(svc, entities.ResolutionContext{}, "missing")
		if !ok || v.ID != "v-basic" {
			t.Fatalf("expected fallback to v-basic, got %+v ok=%v", v, ok)
		}
	})

	t.Run("property size match", func(t *testing.T) {
		v, ok := ResolveVariant(sizedService(), entities.ResolutionContext{PropertySize: entities.SizeMedium}, "")
		if !ok || v.ID != "v-medium" || v.BasePrice != 440 {
			t.Fatalf("expected v-medium at 440, got %+v ok=%v", v, ok)
		}
	})

	t.Run("property size no match", func(t *testing.T) {
		_, ok := ResolveVariant(sizedService(), entities.ResolutionContext{PropertySize: "mansion"}, "")
		if ok {
			t.Fatalf("expected no match for unknown size")
		}
	})

	t.Run("suburb tier match", func(t *testing.T) {
		svc := entities.Service{
			ID:              "svc",
			VariantSelector: entities.SelectorSuburbTier,
			Variants: []entities.Variant{
				{ID: "v-basic", BasePrice: 220, TierMatch: string(entities.TierBasic)},
				{ID: "v-premium", BasePrice: 440, TierMatch: string(entities.TierPremium)},
			},
		}
		v, ok := ResolveVariant(svc, entities.ResolutionContext{SuburbTier: string(entities.TierPremium)}, "")
		if !ok || v.ID != "v-premium" {
			t.Fatalf("expected v-premium, got %+v ok=%v", v, ok)
		}

		if _, ok := ResolveVariant(svc, entities.ResolutionContext{SuburbTier: string(entities.TierStandard)}, ""); ok {
			t.Fatalf("expected no match for standard tier")
		}
	})
}

func TestHasSelectableVariants(t *testing.T) {
	manual := entities.Service{VariantSelector: entities.SelectorManual}
	if !HasSelectableVariants(manual) {
		t.Fatalf("manual selector should be selectable")
	}
	if HasSelectableVariants(sizedService()) {
		t.Fatalf("sized selector should not be selectable")
	}
	if HasSelectableVariants(entities.Service{}) {
		t.Fatalf("no selector should not be selectable")
	}
}
