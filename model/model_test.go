package model

import (
	"testing"
	"time"
)

func TestNewStateDefaults(t *testing.T) {
	state := NewState()
	if state.General == nil || len(state.General) != 0 {
		t.Fatalf("expected empty general collection, got %+v", state.General)
	}
	if state.Campaigns == nil || len(state.Campaigns) != 0 {
		t.Fatalf("expected empty campaigns map, got %+v", state.Campaigns)
	}
	if state.ActiveView != GeneralView {
		t.Fatalf("expected active view %q, got %q", GeneralView, state.ActiveView)
	}
}

func TestCopyStateIsDeep(t *testing.T) {
	original := NewState()
	original.General = []ContentItem{{
		ID:       NewID(),
		Title:    "Post A",
		Date:     Date(2026, time.September, 10),
		Category: CategoryEducational,
		Status:   StatusTodo,
	}}
	original.Campaigns["Lanzamiento"] = []ContentItem{{
		ID:       NewID(),
		Title:    "Teaser",
		Date:     Date(2026, time.September, 12),
		Category: CategoryPromotional,
		Status:   StatusTodo,
	}}

	clone := CopyState(original)
	clone.General[0].Title = "changed"
	clone.Campaigns["Lanzamiento"][0].Title = "changed"
	clone.Campaigns["Otra"] = []ContentItem{}

	if original.General[0].Title != "Post A" {
		t.Fatalf("copy mutated the original general collection")
	}
	if original.Campaigns["Lanzamiento"][0].Title != "Teaser" {
		t.Fatalf("copy mutated the original campaign collection")
	}
	if _, exists := original.Campaigns["Otra"]; exists {
		t.Fatalf("copy shares the campaigns map with the original")
	}
}

func TestValidCategoryAndStatus(t *testing.T) {
	for _, c := range ContentCategories {
		if !ValidCategory(c) {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	if ValidCategory("Educativo") {
		t.Fatalf("category without emoji tag must not validate")
	}

	for _, s := range ContentStatuses {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidStatus("Hecho") {
		t.Fatalf("unknown status must not validate")
	}
}

func TestDateIsMidnightUTC(t *testing.T) {
	d := Date(2026, time.September, 15)
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 || d.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}
	if d.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", d.Location())
	}
}

func TestInitialContentIsWellFormed(t *testing.T) {
	items := InitialContent()
	if len(items) == 0 {
		t.Fatalf("expected seed content")
	}

	seen := map[string]bool{}
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			t.Fatalf("expected unique non-empty ids, got %q", item.ID)
		}
		seen[item.ID] = true
		if !ValidCategory(item.Category) {
			t.Fatalf("seed item %q has invalid category %q", item.Title, item.Category)
		}
		if !ValidStatus(item.Status) {
			t.Fatalf("seed item %q has invalid status %q", item.Title, item.Status)
		}
	}

	for i := 1; i < len(items); i++ {
		if items[i].Date.Before(items[i-1].Date) {
			t.Fatalf("seed content out of date order at index %d", i)
		}
	}
}
