package usecase

import (
	"testing"

	"propmarketing/internal/domain/entities"
)

func floatPtr(v float64) *float64 { return &v }

func TestEffectivePrice(t *testing.T) {
	item := entities.LineItem{SchedulePrice: 330}
	if got := EffectivePrice(item); got != 330 {
		t.Fatalf("expected schedule price 330, got %v", got)
	}

	item.OverridePrice = floatPtr(250)
	item.IsOverridden = true
	if got := EffectivePrice(item); got != 250 {
		t.Fatalf("expected override 250, got %v", got)
	}

	// Flag without a pointer falls back to the schedule price.
	item.OverridePrice = nil
	if got := EffectivePrice(item); got != 330 {
		t.Fatalf("expected fallback to schedule price, got %v", got)
	}
}

func TestResolveLineItems(t *testing.T) {
	services := []entities.Service{sizedService()}

	t.Run("refreshes name and price from catalog", func(t *testing.T) {
		items := []entities.LineItem{
			{ServiceID: "svc-photo", ServiceName: "stale name", IsSelected: true, SchedulePrice: 1},
		}
		out, changed := ResolveLineItems(items, services, entities.ResolutionContext{PropertySize: entities.SizeLarge})
		if !changed {
			t.Fatalf("expected change")
		}
		if out[0].ServiceName != "Photography" || out[0].VariantID != "v-large" || out[0].SchedulePrice != 550 {
			t.Fatalf("unexpected item: %+v", out[0])
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		items := []entities.LineItem{{ServiceID: "svc-photo", IsSelected: true}}
		ctx := entities.ResolutionContext{PropertySize: entities.SizeSmall}

		first, changed := ResolveLineItems(items, services, ctx)
		if !changed {
			t.Fatalf("expected first pass to change")
		}
		second, changed := ResolveLineItems(first, services, ctx)
		if changed {
			t.Fatalf("expected second pass to be a no-op")
		}
		if second[0] != first[0] {
			t.Fatalf("expected stable output, got %+v then %+v", first[0], second[0])
		}
	})

	t.Run("override survives re-resolution", func(t *testing.T) {
		items := []entities.LineItem{
			{ServiceID: "svc-photo", IsSelected: true, IsOverridden: true, OverridePrice: floatPtr(99)},
		}
		out, _ := ResolveLineItems(items, services, entities.ResolutionContext{PropertySize: entities.SizeMedium})
		if out[0].SchedulePrice != 440 {
			t.Fatalf("expected schedule price refreshed to 440, got %v", out[0].SchedulePrice)
		}
		if !out[0].IsOverridden || out[0].OverridePrice == nil || *out[0].OverridePrice != 99 {
			t.Fatalf("expected override untouched, got %+v", out[0])
		}
		if EffectivePrice(out[0]) != 99 {
			t.Fatalf("expected effective price 99, got %v", EffectivePrice(out[0]))
		}
	})

	t.Run("no match clears variant and price", func(t *testing.T) {
		items := []entities.LineItem{
			{ServiceID: "svc-photo", VariantID: "v-small", VariantName: "Small", IsSelected: true, SchedulePrice: 330},
		}
		out, changed := ResolveLineItems(items, services, entities.ResolutionContext{PropertySize: "castle"})
		if !changed {
			t.Fatalf("expected change")
		}
		if out[0].VariantID != "" || out[0].VariantName != "" || out[0].SchedulePrice != 0 {
			t.Fatalf("expected cleared variant, got %+v", out[0])
		}
	})

	t.Run("unknown service left alone", func(t *testing.T) {
		items := []entities.LineItem{
			{ServiceID: "deleted", ServiceName: "Gone", IsSelected: true, SchedulePrice: 42},
		}
		out, changed := ResolveLineItems(items, services, entities.ResolutionContext{})
		if changed {
			t.Fatalf("expected no change for unknown service")
		}
		if out[0] != items[0] {
			t.Fatalf("expected item preserved, got %+v", out[0])
		}
	})
}

func TestCalculateBudgetSummary(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := CalculateBudgetSummary(nil)
		if s != (BudgetSummary{}) {
			t.Fatalf("expected zero summary, got %+v", s)
		}
	})

	t.Run("deselected items excluded", func(t *testing.T) {
		items := []entities.LineItem{
			{ServiceID: "a", IsSelected: true, SchedulePrice: 330},
			{ServiceID: "b", IsSelected: false, SchedulePrice: 1000},
		}
		s := CalculateBudgetSummary(items)
		if s.SelectedCount != 1 || s.TotalCount != 2 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if s.Total != 330 || s.Subtotal != 330 {
			t.Fatalf("unexpected totals: %+v", s)
		}
	})

	t.Run("gst extracted from inclusive total", func(t *testing.T) {
		items := []entities.LineItem{{ServiceID: "a", IsSelected: true, SchedulePrice: 330}}
		s := CalculateBudgetSummary(items)
		if s.GST != 30.00 {
			t.Fatalf("expected GST 30.00 for 330 inclusive, got %v", s.GST)
		}
	})

	t.Run("override counts toward total", func(t *testing.T) {
		items := []entities.LineItem{
			{ServiceID: "a", IsSelected: true, SchedulePrice: 330, IsOverridden: true, OverridePrice: floatPtr(110)},
			{ServiceID: "b", IsSelected: true, SchedulePrice: 220},
		}
		s := CalculateBudgetSummary(items)
		if s.Total != 330 {
			t.Fatalf("expected total 330, got %v", s.Total)
		}
		if s.GST != 30.00 {
			t.Fatalf("expected GST 30.00, got %v", s.GST)
		}
	})
}
