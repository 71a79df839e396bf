package app

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"mktflow/model"
	"mktflow/store"
)

var (
	ErrInvalidTitle     = errors.New("title must not be empty")
	ErrInvalidCategory  = errors.New("invalid content category")
	ErrInvalidStatus    = errors.New("invalid content status")
	ErrInvalidName      = errors.New("campaign name must not be empty")
	ErrReservedName     = errors.New("campaign name is reserved")
	ErrCampaignExists   = errors.New("campaign already exists")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNothingToRedo    = errors.New("nothing to redo")
)

// Service is the public facade over the content store. It binds every
// operation to the currently active view, owns the readiness flag, and
// persists the present snapshot after each committed change. All reads hand
// out copies; the only way to mutate state is through these operations.
type Service struct {
	history   History
	statePath string
	logger    *zap.Logger
	loaded    bool
}

// NewService creates a service persisting to statePath. The logger receives
// persistence failures, which are never surfaced to callers.
func NewService(statePath string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		history:   NewHistory(model.NewState()),
		statePath: statePath,
		logger:    logger,
	}
}

// Load reads the persisted snapshot, falling back to the provided initial
// content when no usable state exists on disk. It resets history either way
// and flips the readiness flag. The returned message, when non-empty,
// describes a recovery the user should know about.
func (s *Service) Load(initial []model.ContentItem) string {
	state, msg, err := store.LoadWithRecovery(s.statePath)
	switch {
	case errors.Is(err, store.ErrNoState):
		state = model.NewState()
		state.General = model.CopyItems(initial)
		sortByDate(state.General)
	case err != nil:
		s.logger.Warn("failed to load persisted state, starting fresh",
			zap.String("path", s.statePath), zap.Error(err))
		state = model.NewState()
		state.General = model.CopyItems(initial)
		sortByDate(state.General)
	}

	s.history, _ = s.history.apply(Action{Type: ActionSetState, State: state})
	s.loaded = true
	s.persist()
	return msg
}

// Loaded reports whether the initial load attempt has completed. Consumers
// must not read or write content before this is true, or a default-content
// write could clobber persisted data.
func (s *Service) Loaded() bool { return s.loaded }

// ActiveView returns the name of the currently visible view.
func (s *Service) ActiveView() string { return s.history.Present.ActiveView }

// Content returns a copy of the active view's collection. A dangling
// campaign key yields an empty slice, never nil panic.
func (s *Service) Content() []model.ContentItem {
	items, ok := viewItems(s.history.Present, s.history.Present.ActiveView)
	if !ok {
		return []model.ContentItem{}
	}
	return model.CopyItems(items)
}

// Campaigns returns the campaign names sorted for stable tab rendering.
func (s *Service) Campaigns() []string {
	names := make([]string, 0, len(s.history.Present.Campaigns))
	for name := range s.history.Present.Campaigns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// State returns a deep copy of the present snapshot.
func (s *Service) State() model.AppState {
	return model.CopyState(s.history.Present)
}

// CanUndo reports whether an undo would take effect.
func (s *Service) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo would take effect.
func (s *Service) CanRedo() bool { return s.history.CanRedo() }

// SetContent replaces the active view's collection, used by bulk import and
// clear-all.
func (s *Service) SetContent(items []model.ContentItem) {
	s.dispatch(Action{Type: ActionSetContent, View: s.ActiveView(), Items: items})
}

// AddContent schedules a new item into the active view. A missing ID is
// filled in and a missing status defaults to Todo.
func (s *Service) AddContent(item model.ContentItem) (model.ContentItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return model.ContentItem{}, ErrInvalidTitle
	}
	if !model.ValidCategory(item.Category) {
		return model.ContentItem{}, ErrInvalidCategory
	}
	if item.ID == "" {
		item.ID = model.NewID()
	}
	if item.Status == "" {
		item.Status = model.StatusTodo
	}
	if !model.ValidStatus(item.Status) {
		return model.ContentItem{}, ErrInvalidStatus
	}
	s.dispatch(Action{Type: ActionAddContent, View: s.ActiveView(), Item: item})
	return item, nil
}

// UpdateContent replaces the item matching item.ID in the active view.
// An absent id is a silent no-op.
func (s *Service) UpdateContent(item model.ContentItem) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return ErrInvalidTitle
	}
	if !model.ValidCategory(item.Category) {
		return ErrInvalidCategory
	}
	s.dispatch(Action{Type: ActionUpdateContent, View: s.ActiveView(), Item: item})
	return nil
}

// DeleteContent removes the item with the given id from the active view.
// An absent id is a silent no-op.
func (s *Service) DeleteContent(id string) {
	s.dispatch(Action{Type: ActionDeleteContent, View: s.ActiveView(), ID: id})
}

// UpdateStatus sets the status of the matching item without re-sorting.
func (s *Service) UpdateStatus(id string, status model.ContentStatus) error {
	if !model.ValidStatus(status) {
		return ErrInvalidStatus
	}
	s.dispatch(Action{Type: ActionUpdateStatus, View: s.ActiveView(), ID: id, Status: status})
	return nil
}

// AddCampaign creates an empty campaign and makes it active. Duplicate and
// reserved names are reported so callers can tell the user; the underlying
// reducer treats them as no-ops either way, leaving history untouched.
func (s *Service) AddCampaign(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if name == model.GeneralView {
		return ErrReservedName
	}
	if _, exists := s.history.Present.Campaigns[name]; exists {
		return ErrCampaignExists
	}
	s.dispatch(Action{Type: ActionAddCampaign, Name: name})
	return nil
}

// DeleteCampaign removes a campaign. Deleting the active campaign resets the
// active view to general. An unknown name is a silent no-op.
func (s *Service) DeleteCampaign(name string) {
	s.dispatch(Action{Type: ActionDeleteCampaign, Name: name})
}

// SetActiveView switches the visible view. Unlike the reducer, the facade
// refuses unknown views so the active-view invariant holds.
func (s *Service) SetActiveView(view string) error {
	if view != model.GeneralView {
		if _, exists := s.history.Present.Campaigns[view]; !exists {
			return ErrCampaignNotFound
		}
	}
	s.dispatch(Action{Type: ActionSetActiveView, View: view})
	return nil
}

// Undo reverts the latest mutating action.
func (s *Service) Undo() error {
	if !s.dispatch(Action{Type: ActionUndo}) {
		return ErrNothingToUndo
	}
	return nil
}

// Redo re-applies the most recently undone action.
func (s *Service) Redo() error {
	if !s.dispatch(Action{Type: ActionRedo}) {
		return ErrNothingToRedo
	}
	return nil
}

func (s *Service) dispatch(a Action) bool {
	next, changed := s.history.apply(a)
	if !changed {
		return false
	}
	s.history = next
	s.persist()
	return true
}

// persist is fire-and-forget: write failures are logged, never returned.
func (s *Service) persist() {
	if !s.loaded {
		return
	}
	if err := store.Autosave(s.statePath, s.history.Present); err != nil {
		s.logger.Warn("failed to autosave state",
			zap.String("path", s.statePath), zap.Error(err))
	}
}
