package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"mktflow/model"
)

func sampleState(label string) model.AppState {
	date := model.Date(2026, time.September, 15)
	return model.AppState{
		General: []model.ContentItem{{
			ID:          "item-" + label,
			Title:       "Post " + label,
			Date:        date,
			Category:    model.CategoryEducational,
			Description: "Descripción " + label,
			Status:      model.StatusTodo,
		}},
		Campaigns: map[string][]model.ContentItem{
			"Lanzamiento": {{
				ID:       "campaign-item-" + label,
				Title:    "Teaser " + label,
				Date:     date.AddDate(0, 0, 3),
				Category: model.CategoryPromotional,
				Status:   model.StatusInProgress,
			}},
		},
		ActiveView: "Lanzamiento",
	}
}

func TestLoadMissingFileReturnsErrNoState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	if _, err := Load(path); !errors.Is(err, ErrNoState) {
		t.Fatalf("expected ErrNoState for missing file, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	want := sampleState("a")

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !reflect.DeepEqual(want, got) {
		t.Fatalf("save/load mismatch\nwant=%+v\ngot=%+v", want, got)
	}
}

func TestLoadRevivesDatesAsUTC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	want := sampleState("utc")

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	revived := got.General[0].Date
	if !revived.Equal(want.General[0].Date) {
		t.Fatalf("date changed across round trip: want %v, got %v", want.General[0].Date, revived)
	}
	if revived.Location() != time.UTC {
		t.Fatalf("expected UTC date, got %v", revived.Location())
	}
}

func TestLoadNormalizesSparseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	sparse := `{
  "general": [
    {"id": "b", "title": "Late", "date": "2026-10-01T00:00:00Z", "category": "📚 Educativo", "description": ""},
    {"id": "a", "title": "Early", "date": "2026-09-01T00:00:00Z", "category": "📚 Educativo", "description": ""}
  ],
  "campaigns": {"Vacía": null},
  "activeView": "Inexistente"
}`
	if err := os.WriteFile(path, []byte(sparse), 0o644); err != nil {
		t.Fatalf("write sparse file failed: %v", err)
	}

	state, err := Load(path)
	if err != nil {
		t.Fatalf("load sparse state failed: %v", err)
	}

	if state.General[0].ID != "a" || state.General[1].ID != "b" {
		t.Fatalf("expected load to re-sort by date, got %+v", state.General)
	}
	if state.General[0].Status != model.StatusTodo {
		t.Fatalf("expected blank status to default to Todo, got %q", state.General[0].Status)
	}
	if items := state.Campaigns["Vacía"]; items == nil {
		t.Fatalf("expected nil campaign collection to become empty slice")
	}
	if state.ActiveView != model.GeneralView {
		t.Fatalf("expected dangling active view to fall back to general, got %q", state.ActiveView)
	}
}

func TestAutosaveCreatesBackupAndPersistsLatestState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	initial := sampleState("old")
	updated := sampleState("new")

	if err := Save(path, initial); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}
	if err := Autosave(path, updated); err != nil {
		t.Fatalf("autosave failed: %v", err)
	}

	gotLatest, err := Load(path)
	if err != nil {
		t.Fatalf("load latest failed: %v", err)
	}
	if !reflect.DeepEqual(updated, gotLatest) {
		t.Fatalf("latest state mismatch\nwant=%+v\ngot=%+v", updated, gotLatest)
	}

	gotBackup, err := Load(path + ".bak")
	if err != nil {
		t.Fatalf("load backup failed: %v", err)
	}
	if !reflect.DeepEqual(initial, gotBackup) {
		t.Fatalf("backup mismatch\nwant=%+v\ngot=%+v", initial, gotBackup)
	}
}

func TestAutosaveRotatingBackupsArePruned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	if err := Save(path, sampleState("seed")); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	for i := 0; i < 15; i++ {
		if err := Autosave(path, sampleState(fmt.Sprintf("%d", i))); err != nil {
			t.Fatalf("autosave %d failed: %v", i, err)
		}
		time.Sleep(1 * time.Millisecond)
	}

	files, err := filepath.Glob(path + ".bak.*")
	if err != nil {
		t.Fatalf("glob rotating backups failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("expected rotating backups, found none")
	}
	if len(files) > maxRotatingBackups {
		t.Fatalf("expected at most %d rotating backups, got %d", maxRotatingBackups, len(files))
	}
}

func TestLoadWithRecoveryRestoresFromBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	v1 := sampleState("v1")
	v2 := sampleState("v2")
	v3 := sampleState("v3")

	if err := Save(path, v1); err != nil {
		t.Fatalf("save v1 failed: %v", err)
	}
	if err := Autosave(path, v2); err != nil {
		t.Fatalf("autosave v2 failed: %v", err)
	}
	if err := Autosave(path, v3); err != nil {
		t.Fatalf("autosave v3 failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("{invalid"), 0o644); err != nil {
		t.Fatalf("corrupt write failed: %v", err)
	}

	recovered, status, err := LoadWithRecovery(path)
	if err != nil {
		t.Fatalf("load with recovery failed: %v", err)
	}
	if status == "" {
		t.Fatalf("expected recovery status message, got empty")
	}
	if !reflect.DeepEqual(v2, recovered) {
		t.Fatalf("expected recovery from latest backup (v2), got %+v", recovered)
	}

	persisted, err := Load(path)
	if err != nil {
		t.Fatalf("load persisted recovered state failed: %v", err)
	}
	if !reflect.DeepEqual(v2, persisted) {
		t.Fatalf("expected persisted recovered state to match v2")
	}

	corruptFiles, err := filepath.Glob(filepath.Join(dir, "state.corrupt-*.json"))
	if err != nil {
		t.Fatalf("glob corrupt files failed: %v", err)
	}
	if len(corruptFiles) != 1 {
		t.Fatalf("expected exactly one moved corrupt file, got %d", len(corruptFiles))
	}
}

func TestLoadWithRecoveryWithoutBackupStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}

	recovered, status, err := LoadWithRecovery(path)
	if err != nil {
		t.Fatalf("load with recovery failed: %v", err)
	}
	if status == "" {
		t.Fatalf("expected recovery status message")
	}
	if !reflect.DeepEqual(model.NewState(), recovered) {
		t.Fatalf("expected empty state when no valid backup")
	}

	persisted, err := Load(path)
	if err != nil {
		t.Fatalf("load persisted empty state failed: %v", err)
	}
	if !reflect.DeepEqual(model.NewState(), persisted) {
		t.Fatalf("expected persisted empty state after recovery")
	}
}
