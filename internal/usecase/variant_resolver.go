package usecase

import "propmarketing/internal/domain/entities"

// ResolveVariant picks the one priced variant of a service that applies for
// the given context.
//
// Resolution rules:
//   - no selector, or a single variant: the first variant always applies and
//     both context and requestedVariantID are ignored
//   - manual: the requested variant when present and found, else the first
//   - propertySize / suburbTier: the first variant whose match equals the
//     context value; no match means no variant (callers render a dash)
//
// The second return is false only when a sized/tiered service has no variant
// matching the context, or the service has no variants at all.
func ResolveVariant(service entities.Service, ctx entities.ResolutionContext, requestedVariantID string) (entities.Variant, bool) {
	if len(service.Variants) == 0 {
		return entities.Variant{}, false
	}
	if service.VariantSelector == entities.SelectorNone || len(service.Variants) == 1 {
		return service.Variants[0], true
	}

	switch service.VariantSelector {
	case entities.SelectorManual:
		if requestedVariantID != "" {
			for _, v := range service.Variants {
				if v.ID == requestedVariantID {
					return v, true
				}
			}
		}
		return service.Variants[0], true
	case entities.SelectorPropertySize:
		for _, v := range service.Variants {
			if v.SizeMatch == ctx.PropertySize {
				return v, true
			}
		}
		return entities.Variant{}, false
	case entities.SelectorSuburbTier:
		for _, v := range service.Variants {
			if v.TierMatch == ctx.SuburbTier {
				return v, true
			}
		}
		return entities.Variant{}, false
	default:
		return service.Variants[0], true
	}
}

// HasSelectableVariants reports whether the agent picks the variant manually.
// This is the only signal the UI needs to render a picker instead of a
// read-only label.
func HasSelectableVariants(service entities.Service) bool {
	return service.VariantSelector == entities.SelectorManual
}
