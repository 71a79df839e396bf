package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"mktflow/model"
)

const maxRotatingBackups = 10

var (
	// ErrNoState signals that no persisted snapshot exists yet; callers fall
	// back to their initial content.
	ErrNoState = errors.New("no persisted state")

	errNoValidBackup = errors.New("no valid backup found")
)

// DefaultPath returns the fixed per-user location of the state snapshot.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mktflow", "state.json"), nil
}

// Load reads the calendar state from a JSON file. A missing file returns
// ErrNoState rather than an empty state, so the caller can seed defaults.
func Load(path string) (model.AppState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.AppState{}, ErrNoState
		}
		return model.AppState{}, err
	}
	return decodeState(data)
}

// LoadWithRecovery loads state and tries automatic recovery when the main
// JSON is corrupted. It returns an optional status message to show the user.
func LoadWithRecovery(path string) (model.AppState, string, error) {
	state, err := Load(path)
	if err == nil || errors.Is(err, ErrNoState) {
		return state, "", err
	}
	if !isCorruptStateError(err) {
		return model.AppState{}, "", err
	}

	corruptPath, moveErr := moveCorruptFile(path)
	if moveErr != nil {
		return model.AppState{}, "", fmt.Errorf("failed to move corrupt state file: %w", moveErr)
	}

	recovered, backupPath, backupErr := loadLatestValidBackup(path)
	if backupErr == nil {
		if err := Save(path, recovered); err != nil {
			return model.AppState{}, "", fmt.Errorf("failed to restore backup: %w", err)
		}
		msg := fmt.Sprintf("Estado corrupto recuperado de %s", filepath.Base(backupPath))
		if corruptPath != "" {
			msg += fmt.Sprintf(" (archivo dañado movido a %s)", filepath.Base(corruptPath))
		}
		return recovered, msg, nil
	}
	if !errors.Is(backupErr, errNoValidBackup) {
		return model.AppState{}, "", fmt.Errorf("failed to inspect backups: %w", backupErr)
	}

	empty := model.NewState()
	if err := Save(path, empty); err != nil {
		return model.AppState{}, "", fmt.Errorf("failed to reinitialize state after corruption: %w", err)
	}
	msg := "Estado corrupto sin backup válido; se inició un calendario vacío"
	if corruptPath != "" {
		msg += fmt.Sprintf(" (archivo dañado movido a %s)", filepath.Base(corruptPath))
	}
	return empty, msg, nil
}

// Save writes the state to path as indented JSON.
func Save(path string, state model.AppState) error {
	return writeJSON(path, state)
}

// Autosave writes safely using temporary file + atomic rename. It also
// stores a latest backup (.bak) and a rotating timestamped backup set.
func Autosave(path string, state model.AppState) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	if err := backup(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// decodeState parses and revives a persisted snapshot: nil collections
// become empty, a blank or dangling active view falls back to general, blank
// statuses default to Todo, and every collection is re-sorted so the date
// invariant holds even for hand-edited files. Dates travel as RFC 3339
// strings and are revived by encoding/json into time.Time values.
func decodeState(data []byte) (model.AppState, error) {
	var state model.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return model.AppState{}, err
	}

	if state.General == nil {
		state.General = []model.ContentItem{}
	}
	if state.Campaigns == nil {
		state.Campaigns = map[string][]model.ContentItem{}
	}
	for name, items := range state.Campaigns {
		if items == nil {
			state.Campaigns[name] = []model.ContentItem{}
		}
	}

	normalizeItems(state.General)
	sortItems(state.General)
	for _, items := range state.Campaigns {
		normalizeItems(items)
		sortItems(items)
	}

	if state.ActiveView == "" {
		state.ActiveView = model.GeneralView
	}
	if state.ActiveView != model.GeneralView {
		if _, ok := state.Campaigns[state.ActiveView]; !ok {
			state.ActiveView = model.GeneralView
		}
	}

	return state, nil
}

func normalizeItems(items []model.ContentItem) {
	for i := range items {
		if items[i].Status == "" {
			items[i].Status = model.StatusTodo
		}
	}
}

func sortItems(items []model.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}

func writeJSON(path string, state model.AppState) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := os.WriteFile(path+".bak", data, 0o644); err != nil {
		return err
	}

	timestamp := time.Now().UTC().Format("20060102-150405.000000000")
	rotatingPath := fmt.Sprintf("%s.bak.%s", path, timestamp)
	if err := os.WriteFile(rotatingPath, data, 0o644); err != nil {
		return err
	}

	return pruneRotatingBackups(path)
}

func pruneRotatingBackups(path string) error {
	files, err := filepath.Glob(path + ".bak.*")
	if err != nil {
		return err
	}
	if len(files) <= maxRotatingBackups {
		return nil
	}

	sort.Strings(files)
	toDelete := files[:len(files)-maxRotatingBackups]
	for _, old := range toDelete {
		if err := os.Remove(old); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

func loadLatestValidBackup(path string) (model.AppState, string, error) {
	candidates := make([]string, 0, 12)
	latest := path + ".bak"
	if _, err := os.Stat(latest); err == nil {
		candidates = append(candidates, latest)
	}
	rotating, err := filepath.Glob(path + ".bak.*")
	if err != nil {
		return model.AppState{}, "", err
	}
	candidates = append(candidates, rotating...)
	if len(candidates) == 0 {
		return model.AppState{}, "", errNoValidBackup
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		iInfo, iErr := os.Stat(candidates[i])
		jInfo, jErr := os.Stat(candidates[j])
		if iErr != nil || jErr != nil {
			return candidates[i] > candidates[j]
		}
		return iInfo.ModTime().After(jInfo.ModTime())
	})

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		state, err := decodeState(data)
		if err != nil {
			continue
		}
		return state, candidate, nil
	}

	return model.AppState{}, "", errNoValidBackup
}

func moveCorruptFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	timestamp := time.Now().UTC().Format("20060102-150405")
	corruptName := fmt.Sprintf("%s.corrupt-%s%s", name, timestamp, ext)
	corruptPath := filepath.Join(filepath.Dir(path), corruptName)
	if err := os.Rename(path, corruptPath); err != nil {
		return "", err
	}
	return corruptPath, nil
}

func isCorruptStateError(err error) bool {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF)
}
