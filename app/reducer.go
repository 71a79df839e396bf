package app

import (
	"sort"

	"mktflow/model"
)

// ActionType tags the operations the content reducer understands.
type ActionType string

const (
	ActionSetState       ActionType = "SET_STATE"
	ActionSetContent     ActionType = "SET_CONTENT"
	ActionAddContent     ActionType = "ADD_CONTENT"
	ActionUpdateContent  ActionType = "UPDATE_CONTENT"
	ActionDeleteContent  ActionType = "DELETE_CONTENT"
	ActionUpdateStatus   ActionType = "UPDATE_CONTENT_STATUS"
	ActionAddCampaign    ActionType = "ADD_CAMPAIGN"
	ActionDeleteCampaign ActionType = "DELETE_CAMPAIGN"
	ActionSetActiveView  ActionType = "SET_ACTIVE_VIEW"
	ActionUndo           ActionType = "UNDO"
	ActionRedo           ActionType = "REDO"
)

// Action is a tagged mutation request. Only the fields relevant to its Type
// are read by the reducer.
type Action struct {
	Type   ActionType
	State  model.AppState
	View   string
	Items  []model.ContentItem
	Item   model.ContentItem
	ID     string
	Status model.ContentStatus
	Name   string
}

// sortByDate orders a collection ascending by date. The sort is stable so
// equal dates keep their prior relative order, which makes import order
// deterministic and lets undo restore the exact original ordering.
func sortByDate(items []model.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}

// viewItems returns the collection backing a view and whether it exists.
func viewItems(state model.AppState, view string) ([]model.ContentItem, bool) {
	if view == model.GeneralView {
		return state.General, true
	}
	items, ok := state.Campaigns[view]
	return items, ok
}

// withView returns a shallow copy of state with one view's collection
// replaced. The campaigns map is copied; untouched collections are shared.
func withView(state model.AppState, view string, items []model.ContentItem) model.AppState {
	out := state
	if view == model.GeneralView {
		out.General = items
		return out
	}
	out.Campaigns = make(map[string][]model.ContentItem, len(state.Campaigns)+1)
	for name, existing := range state.Campaigns {
		out.Campaigns[name] = existing
	}
	out.Campaigns[view] = items
	return out
}

// reduce applies a single action to state, never mutating its input. The
// second result reports whether anything changed; no-op mutations (absent
// ids, duplicate or reserved campaign names, unknown views) return the state
// untouched with changed=false so the history wrapper skips them.
func reduce(state model.AppState, a Action) (model.AppState, bool) {
	switch a.Type {
	case ActionSetState:
		return a.State, true

	case ActionSetContent:
		// Creates the campaign collection when absent; bulk import may
		// target a view that has no items yet.
		items := model.CopyItems(a.Items)
		sortByDate(items)
		return withView(state, a.View, items), true

	case ActionAddContent:
		items, ok := viewItems(state, a.View)
		if !ok {
			return state, false
		}
		next := make([]model.ContentItem, 0, len(items)+1)
		next = append(next, items...)
		next = append(next, a.Item)
		sortByDate(next)
		return withView(state, a.View, next), true

	case ActionUpdateContent:
		items, ok := viewItems(state, a.View)
		if !ok {
			return state, false
		}
		idx := indexOf(items, a.Item.ID)
		if idx < 0 {
			return state, false
		}
		next := model.CopyItems(items)
		next[idx] = a.Item
		sortByDate(next)
		return withView(state, a.View, next), true

	case ActionDeleteContent:
		items, ok := viewItems(state, a.View)
		if !ok {
			return state, false
		}
		idx := indexOf(items, a.ID)
		if idx < 0 {
			return state, false
		}
		next := make([]model.ContentItem, 0, len(items)-1)
		next = append(next, items[:idx]...)
		next = append(next, items[idx+1:]...)
		return withView(state, a.View, next), true

	case ActionUpdateStatus:
		items, ok := viewItems(state, a.View)
		if !ok {
			return state, false
		}
		idx := indexOf(items, a.ID)
		if idx < 0 {
			return state, false
		}
		// Status is not part of the sort key, so no re-sort here.
		next := model.CopyItems(items)
		next[idx].Status = a.Status
		return withView(state, a.View, next), true

	case ActionAddCampaign:
		if a.Name == model.GeneralView {
			return state, false
		}
		if _, exists := state.Campaigns[a.Name]; exists {
			return state, false
		}
		out := withView(state, a.Name, []model.ContentItem{})
		out.ActiveView = a.Name
		return out, true

	case ActionDeleteCampaign:
		if _, exists := state.Campaigns[a.Name]; !exists {
			return state, false
		}
		out := state
		out.Campaigns = make(map[string][]model.ContentItem, len(state.Campaigns)-1)
		for name, items := range state.Campaigns {
			if name != a.Name {
				out.Campaigns[name] = items
			}
		}
		if out.ActiveView == a.Name {
			out.ActiveView = model.GeneralView
		}
		return out, true

	case ActionSetActiveView:
		if state.ActiveView == a.View {
			return state, false
		}
		out := state
		out.ActiveView = a.View
		return out, true
	}

	return state, false
}

func indexOf(items []model.ContentItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
