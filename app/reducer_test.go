package app

import (
	"testing"
	"time"

	"mktflow/model"
)

func item(id, title string, date time.Time) model.ContentItem {
	return model.ContentItem{
		ID:       id,
		Title:    title,
		Date:     date,
		Category: model.CategoryEducational,
		Status:   model.StatusTodo,
	}
}

func mustReduce(t *testing.T, state model.AppState, a Action) model.AppState {
	t.Helper()
	next, changed := reduce(state, a)
	if !changed {
		t.Fatalf("expected %s to change state", a.Type)
	}
	return next
}

func mustNoop(t *testing.T, state model.AppState, a Action) {
	t.Helper()
	if _, changed := reduce(state, a); changed {
		t.Fatalf("expected %s to be a no-op", a.Type)
	}
}

func TestAddContentKeepsDateOrder(t *testing.T) {
	state := model.NewState()
	state = mustReduce(t, state, Action{
		Type: ActionAddContent, View: model.GeneralView,
		Item: item("a", "A", model.Date(2026, time.September, 20)),
	})
	state = mustReduce(t, state, Action{
		Type: ActionAddContent, View: model.GeneralView,
		Item: item("b", "B", model.Date(2026, time.September, 10)),
	})

	if state.General[0].ID != "b" || state.General[1].ID != "a" {
		t.Fatalf("expected [b a], got %+v", state.General)
	}
}

func TestAddContentEqualDatesKeepInsertionOrder(t *testing.T) {
	date := model.Date(2026, time.September, 15)
	state := model.NewState()
	for _, id := range []string{"first", "second", "third"} {
		state = mustReduce(t, state, Action{
			Type: ActionAddContent, View: model.GeneralView,
			Item: item(id, id, date),
		})
	}

	for i, want := range []string{"first", "second", "third"} {
		if state.General[i].ID != want {
			t.Fatalf("tie order broken at %d: %+v", i, state.General)
		}
	}
}

func TestUpdateContentResortsAndIgnoresAbsentID(t *testing.T) {
	state := model.NewState()
	state = mustReduce(t, state, Action{
		Type: ActionAddContent, View: model.GeneralView,
		Item: item("a", "A", model.Date(2026, time.September, 1)),
	})
	state = mustReduce(t, state, Action{
		Type: ActionAddContent, View: model.GeneralView,
		Item: item("b", "B", model.Date(2026, time.September, 5)),
	})

	moved := item("a", "A moved", model.Date(2026, time.September, 30))
	state = mustReduce(t, state, Action{Type: ActionUpdateContent, View: model.GeneralView, Item: moved})
	if state.General[0].ID != "b" || state.General[1].ID != "a" {
		t.Fatalf("expected update to re-sort, got %+v", state.General)
	}
	if state.General[1].Title != "A moved" {
		t.Fatalf("expected updated title, got %q", state.General[1].Title)
	}

	mustNoop(t, state, Action{Type: ActionUpdateContent, View: model.GeneralView, Item: item("missing", "x", moved.Date)})
}

func TestDeleteContentIgnoresAbsentID(t *testing.T) {
	state := model.NewState()
	state = mustReduce(t, state, Action{
		Type: ActionAddContent, View: model.GeneralView,
		Item: item("a", "A", model.Date(2026, time.September, 1)),
	})

	mustNoop(t, state, Action{Type: ActionDeleteContent, View: model.GeneralView, ID: "missing"})

	state = mustReduce(t, state, Action{Type: ActionDeleteContent, View: model.GeneralView, ID: "a"})
	if len(state.General) != 0 {
		t.Fatalf("expected empty collection, got %+v", state.General)
	}
}

func TestUpdateStatusDoesNotReorder(t *testing.T) {
	date := model.Date(2026, time.September, 15)
	state := model.NewState()
	for _, id := range []string{"a", "b", "c"} {
		state = mustReduce(t, state, Action{
			Type: ActionAddContent, View: model.GeneralView,
			Item: item(id, id, date),
		})
	}

	state = mustReduce(t, state, Action{
		Type: ActionUpdateStatus, View: model.GeneralView, ID: "a", Status: model.StatusDone,
	})

	if state.General[0].ID != "a" || state.General[0].Status != model.StatusDone {
		t.Fatalf("expected a first and done, got %+v", state.General)
	}
	if state.General[1].ID != "b" || state.General[2].ID != "c" {
		t.Fatalf("status change must not reorder: %+v", state.General)
	}

	mustNoop(t, state, Action{Type: ActionUpdateStatus, View: model.GeneralView, ID: "missing", Status: model.StatusDone})
}

func TestContentActionsOnUnknownViewAreNoops(t *testing.T) {
	state := model.NewState()
	it := item("a", "A", model.Date(2026, time.September, 1))

	mustNoop(t, state, Action{Type: ActionAddContent, View: "fantasma", Item: it})
	mustNoop(t, state, Action{Type: ActionUpdateContent, View: "fantasma", Item: it})
	mustNoop(t, state, Action{Type: ActionDeleteContent, View: "fantasma", ID: "a"})
	mustNoop(t, state, Action{Type: ActionUpdateStatus, View: "fantasma", ID: "a", Status: model.StatusDone})
}

func TestSetContentSortsAndCreatesCampaign(t *testing.T) {
	state := model.NewState()
	items := []model.ContentItem{
		item("late", "Late", model.Date(2026, time.October, 5)),
		item("early", "Early", model.Date(2026, time.September, 1)),
	}

	state = mustReduce(t, state, Action{Type: ActionSetContent, View: "Lanzamiento", Items: items})

	got, ok := state.Campaigns["Lanzamiento"]
	if !ok {
		t.Fatalf("expected campaign to be created by bulk set")
	}
	if got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("expected bulk set to sort by date, got %+v", got)
	}
	if items[0].ID != "late" {
		t.Fatalf("bulk set must not mutate the caller's slice")
	}
}

func TestAddCampaignRules(t *testing.T) {
	state := model.NewState()

	mustNoop(t, state, Action{Type: ActionAddCampaign, Name: model.GeneralView})

	state = mustReduce(t, state, Action{Type: ActionAddCampaign, Name: "Lanzamiento"})
	if state.ActiveView != "Lanzamiento" {
		t.Fatalf("expected new campaign to become active, got %q", state.ActiveView)
	}
	if items := state.Campaigns["Lanzamiento"]; items == nil || len(items) != 0 {
		t.Fatalf("expected empty campaign collection, got %+v", items)
	}

	mustNoop(t, state, Action{Type: ActionAddCampaign, Name: "Lanzamiento"})
}

func TestDeleteCampaignResetsActiveView(t *testing.T) {
	state := model.NewState()
	state = mustReduce(t, state, Action{Type: ActionAddCampaign, Name: "Lanzamiento"})
	state = mustReduce(t, state, Action{Type: ActionAddCampaign, Name: "Navidad"})

	// Deleting an inactive campaign keeps the current view.
	state = mustReduce(t, state, Action{Type: ActionDeleteCampaign, Name: "Lanzamiento"})
	if state.ActiveView != "Navidad" {
		t.Fatalf("expected active view to survive, got %q", state.ActiveView)
	}

	state = mustReduce(t, state, Action{Type: ActionDeleteCampaign, Name: "Navidad"})
	if state.ActiveView != model.GeneralView {
		t.Fatalf("expected fallback to general, got %q", state.ActiveView)
	}

	mustNoop(t, state, Action{Type: ActionDeleteCampaign, Name: "Navidad"})
}

func TestSetActiveViewSameViewIsNoop(t *testing.T) {
	state := model.NewState()
	mustNoop(t, state, Action{Type: ActionSetActiveView, View: model.GeneralView})

	state = mustReduce(t, state, Action{Type: ActionAddCampaign, Name: "Lanzamiento"})
	state = mustReduce(t, state, Action{Type: ActionSetActiveView, View: model.GeneralView})
	if state.ActiveView != model.GeneralView {
		t.Fatalf("expected general active, got %q", state.ActiveView)
	}
}

func TestViewsAreIsolated(t *testing.T) {
	state := model.NewState()
	state = mustReduce(t, state, Action{
		Type: ActionAddContent, View: model.GeneralView,
		Item: item("g", "General post", model.Date(2026, time.September, 1)),
	})
	state = mustReduce(t, state, Action{Type: ActionAddCampaign, Name: "Lanzamiento"})
	state = mustReduce(t, state, Action{
		Type: ActionAddContent, View: "Lanzamiento",
		Item: item("c", "Campaign post", model.Date(2026, time.September, 2)),
	})

	state = mustReduce(t, state, Action{Type: ActionDeleteContent, View: "Lanzamiento", ID: "c"})

	if len(state.General) != 1 || state.General[0].ID != "g" {
		t.Fatalf("campaign edits leaked into general: %+v", state.General)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := model.NewState()
	state = mustReduce(t, state, Action{
		Type: ActionAddContent, View: model.GeneralView,
		Item: item("a", "A", model.Date(2026, time.September, 1)),
	})

	before := model.CopyState(state)
	_ = mustReduce(t, state, Action{
		Type: ActionUpdateStatus, View: model.GeneralView, ID: "a", Status: model.StatusDone,
	})

	if state.General[0].Status != before.General[0].Status {
		t.Fatalf("reduce mutated its input state")
	}
}
