package app

import "mktflow/model"

// History wraps the content reducer with single-level-deep undo/redo
// bookkeeping: full snapshots of prior and subsequent presents.
type History struct {
	Past    []model.AppState
	Present model.AppState
	Future  []model.AppState
}

// NewHistory starts a history at the given present with empty stacks.
func NewHistory(present model.AppState) History {
	return History{Present: present}
}

// apply routes an action through the reducer with three special cases:
// view switches commit without snapshotting, full-state loads collapse the
// history (a freshly loaded snapshot must not be undoable past the load
// boundary), and no-op mutations leave history untouched. The second result
// reports whether the present changed at all, so callers know when to
// persist.
func (h History) apply(a Action) (History, bool) {
	switch a.Type {
	case ActionUndo:
		if len(h.Past) == 0 {
			return h, false
		}
		previous := h.Past[len(h.Past)-1]
		future := make([]model.AppState, 0, len(h.Future)+1)
		future = append(future, h.Present)
		future = append(future, h.Future...)
		return History{
			Past:    h.Past[:len(h.Past)-1],
			Present: previous,
			Future:  future,
		}, true

	case ActionRedo:
		if len(h.Future) == 0 {
			return h, false
		}
		next := h.Future[0]
		past := make([]model.AppState, 0, len(h.Past)+1)
		past = append(past, h.Past...)
		past = append(past, h.Present)
		return History{
			Past:    past,
			Present: next,
			Future:  h.Future[1:],
		}, true

	case ActionSetActiveView:
		present, changed := reduce(h.Present, a)
		if !changed {
			return h, false
		}
		h.Present = present
		return h, true

	case ActionSetState:
		present, _ := reduce(h.Present, a)
		return History{Present: present}, true

	default:
		present, changed := reduce(h.Present, a)
		if !changed {
			return h, false
		}
		past := make([]model.AppState, 0, len(h.Past)+1)
		past = append(past, h.Past...)
		past = append(past, h.Present)
		return History{
			Past:    past,
			Present: present,
			Future:  nil,
		}, true
	}
}

// CanUndo reports whether an undo would change the present.
func (h History) CanUndo() bool { return len(h.Past) > 0 }

// CanRedo reports whether a redo would change the present.
func (h History) CanRedo() bool { return len(h.Future) > 0 }
