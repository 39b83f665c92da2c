package usecase

import (
	"testing"

	"propmarketing/internal/domain/entities"
)

func TestDiffLineItems(t *testing.T) {
	t.Run("reorder alone is no change", func(t *testing.T) {
		a := entities.LineItem{ServiceID: "svc-a", ServiceName: "Photos", IsSelected: true}
		b := entities.LineItem{ServiceID: "svc-b", ServiceName: "Signboard", IsSelected: true}
		changes := DiffLineItems([]entities.LineItem{a, b}, []entities.LineItem{b, a})
		if len(changes) != 0 {
			t.Fatalf("expected no changes on reorder, got %v", changes)
		}
	})

	t.Run("added and removed", func(t *testing.T) {
		before := []entities.LineItem{{ServiceID: "svc-a", ServiceName: "Photos", IsSelected: true}}
		after := []entities.LineItem{{ServiceID: "svc-b", ServiceName: "Signboard", IsSelected: true}}
		changes := DiffLineItems(before, after)
		if len(changes) != 2 {
			t.Fatalf("expected removed + added, got %v", changes)
		}
		if changes[0].Field != `service "Photos"` || changes[0].From != "included" || changes[0].To != "removed" {
			t.Fatalf("unexpected removed entry: %+v", changes[0])
		}
		if changes[1].Field != `service "Signboard"` || changes[1].From != "—" || changes[1].To != "added" {
			t.Fatalf("unexpected added entry: %+v", changes[1])
		}
	})

	t.Run("variant change plus new service", func(t *testing.T) {
		before := []entities.LineItem{
			{ServiceID: "svc-a", ServiceName: "Photos", IsSelected: true, VariantID: "v-1", VariantName: "8 Photos"},
		}
		after := []entities.LineItem{
			{ServiceID: "svc-a", ServiceName: "Photos", IsSelected: true, VariantID: "v-2", VariantName: "12 Photos"},
			{ServiceID: "svc-b", ServiceName: "Signboard", IsSelected: true},
		}
		changes := DiffLineItems(before, after)
		if len(changes) != 2 {
			t.Fatalf("expected exactly variant change + added, got %v", changes)
		}
		if changes[0].Field != `service "Photos" variant` || changes[0].From != "8 Photos" || changes[0].To != "12 Photos" {
			t.Fatalf("unexpected variant entry: %+v", changes[0])
		}
		if changes[1].Field != `service "Signboard"` || changes[1].To != "added" {
			t.Fatalf("unexpected added entry: %+v", changes[1])
		}
	})

	t.Run("selection toggle", func(t *testing.T) {
		before := []entities.LineItem{{ServiceID: "svc-a", ServiceName: "Photos", IsSelected: true}}
		after := []entities.LineItem{{ServiceID: "svc-a", ServiceName: "Photos", IsSelected: false}}
		changes := DiffLineItems(before, after)
		if len(changes) != 1 {
			t.Fatalf("expected one change, got %v", changes)
		}
		if changes[0].Field != `service "Photos"` || changes[0].From != "selected" || changes[0].To != "deselected" {
			t.Fatalf("unexpected entry: %+v", changes[0])
		}
	})

	t.Run("override set and cleared", func(t *testing.T) {
		base := entities.LineItem{ServiceID: "svc-a", ServiceName: "Photos", IsSelected: true, SchedulePrice: 330}
		withOverride := base
		withOverride.OverridePrice = floatPtr(250)
		withOverride.IsOverridden = true

		changes := DiffLineItems([]entities.LineItem{base}, []entities.LineItem{withOverride})
		if len(changes) != 1 {
			t.Fatalf("expected one change, got %v", changes)
		}
		if changes[0].Field != `service "Photos" price` || changes[0].From != "—" || changes[0].To != "$250.00" {
			t.Fatalf("unexpected entry: %+v", changes[0])
		}

		changes = DiffLineItems([]entities.LineItem{withOverride}, []entities.LineItem{base})
		if len(changes) != 1 || changes[0].From != "$250.00" || changes[0].To != "—" {
			t.Fatalf("unexpected cleared entry: %v", changes)
		}
	})

	t.Run("label falls back to service id", func(t *testing.T) {
		before := []entities.LineItem{{ServiceID: "svc-a", IsSelected: true}}
		changes := DiffLineItems(before, nil)
		if len(changes) != 1 || changes[0].Field != `service "svc-a"` {
			t.Fatalf("expected id fallback, got %v", changes)
		}
	})
}
