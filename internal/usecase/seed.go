package usecase

import "propmarketing/internal/domain/entities"

// SeedCatalog is a small starter catalog covering every variant selector, so
// a fresh install can exercise the whole pricing surface immediately.
func SeedCatalog() entities.DataExport {
	return entities.DataExport{
		Services: []entities.Service{
			{
				ID:              "seed-photography",
				Name:            "Photography",
				Category:        entities.CategoryPhotography,
				VariantSelector: entities.SelectorPropertySize,
				IncludesTax:     true,
				Active:          true,
				Variants: []entities.Variant{
					{ID: "seed-photo-8", Name: "8 Photos", BasePrice: 330, SizeMatch: entities.SizeSmall},
					{ID: "seed-photo-12", Name: "12 Photos", BasePrice: 440, SizeMatch: entities.SizeMedium},
					{ID: "seed-photo-20", Name: "20 Photos", BasePrice: 550, SizeMatch: entities.SizeLarge},
				},
			},
			{
				ID:              "seed-floorplan",
				Name:            "Floor Plan",
				Category:        entities.CategoryFloorPlan,
				VariantSelector: entities.SelectorNone,
				IncludesTax:     true,
				Active:          true,
				Variants: []entities.Variant{
					{ID: "seed-floorplan-2d", Name: "2D Floor Plan", BasePrice: 165},
				},
			},
			{
				ID:              "seed-listing",
				Name:            "Portal Listing",
				Category:        entities.CategoryListing,
				VariantSelector: entities.SelectorManual,
				IncludesTax:     true,
				Active:          true,
				Variants: []entities.Variant{
					{ID: "seed-listing-standard", Name: "Standard Listing", BasePrice: 660},
					{
						ID:               "seed-listing-premiere",
						Name:             "Premiere Listing",
						BasePrice:        1540,
						IncludedServices: []string{"seed-photography"},
					},
				},
			},
			{
				ID:              "seed-signboard",
				Name:            "Signboard",
				Category:        entities.CategorySignage,
				VariantSelector: entities.SelectorSuburbTier,
				IncludesTax:     true,
				Active:          true,
				Variants: []entities.Variant{
					{ID: "seed-sign-basic", Name: "Standard Board", BasePrice: 220, TierMatch: string(entities.TierBasic)},
					{ID: "seed-sign-standard", Name: "Photo Board", BasePrice: 330, TierMatch: string(entities.TierStandard)},
					{ID: "seed-sign-premium", Name: "Premium Photo Board", BasePrice: 440, TierMatch: string(entities.TierPremium)},
				},
			},
		},
	}
}
