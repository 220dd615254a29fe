package progress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTracker_AdvanceRaisesBestAndSaves(t *testing.T) {
	store := &MemoryStore{}
	tr := NewTracker(store, 1, 0)
	if tr.CurrentLevel() != 1 || tr.BestLevel() != 1 {
		t.Fatalf("new tracker = %d/%d, want 1/1", tr.CurrentLevel(), tr.BestLevel())
	}

	tr.Advance()
	tr.Advance()
	if tr.CurrentLevel() != 3 || tr.BestLevel() != 3 {
		t.Errorf("after two advances = %d/%d, want 3/3", tr.CurrentLevel(), tr.BestLevel())
	}
	if best, ok := store.LoadBest(); !ok || best != 3 {
		t.Errorf("saved best = %d,%v, want 3,true", best, ok)
	}
}

func TestTracker_LoadsSavedBest(t *testing.T) {
	tr := NewTracker(NewMemoryStore(9), 1, 0)
	if tr.BestLevel() != 9 || tr.CurrentLevel() != 1 {
		t.Errorf("tracker = %d/%d, want current 1 best 9", tr.CurrentLevel(), tr.BestLevel())
	}

	tr = NewTracker(NewMemoryStore(2), 5, 0)
	if tr.BestLevel() != 5 {
		t.Errorf("BestLevel() = %d, want start level 5 over a lower save", tr.BestLevel())
	}
}

func TestTracker_StartAboveSaveIsSaved(t *testing.T) {
	tests := []struct {
		name     string
		store    *MemoryStore
		start    int
		wantBest int
		wantOK   bool
	}{
		{"lower save", NewMemoryStore(2), 5, 5, true},
		{"no save", NewMemoryStore(0), 4, 4, true},
		{"higher save", NewMemoryStore(9), 5, 9, true},
		{"fresh start", NewMemoryStore(0), 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewTracker(tt.store, tt.start, 0)
			if best, ok := tt.store.LoadBest(); best != tt.wantBest || ok != tt.wantOK {
				t.Errorf("saved best = %d,%v, want %d,%v", best, ok, tt.wantBest, tt.wantOK)
			}
		})
	}
}

func TestTracker_RestartAndResetKeepBest(t *testing.T) {
	tr := NewTracker(&MemoryStore{}, 2, 0)
	tr.Advance()
	tr.Advance()

	if got := tr.Restart(); got != 4 || tr.CurrentLevel() != 4 {
		t.Errorf("Restart() = %d, want 4", got)
	}
	if got := tr.Reset(); got != 2 {
		t.Errorf("Reset() = %d, want 2", got)
	}
	if tr.BestLevel() != 4 {
		t.Errorf("BestLevel() after Reset = %d, want 4", tr.BestLevel())
	}
}

func TestTracker_AdvanceStopsAtMax(t *testing.T) {
	tr := NewTracker(&MemoryStore{}, 1, 3)
	for i := 0; i < 5; i++ {
		tr.Advance()
	}
	if tr.CurrentLevel() != 3 || !tr.AtMax() {
		t.Errorf("CurrentLevel() = %d, AtMax() = %v, want 3,true", tr.CurrentLevel(), tr.AtMax())
	}
}

func TestTracker_SaveFailureIsNotFatal(t *testing.T) {
	store := &MemoryStore{Err: errors.New("disk full")}
	tr := NewTracker(store, 1, 0)
	tr.Advance()
	tr.Advance()
	if tr.CurrentLevel() != 3 || tr.BestLevel() != 3 {
		t.Errorf("tracker = %d/%d, want 3/3 despite save errors", tr.CurrentLevel(), tr.BestLevel())
	}
	if _, ok := store.LoadBest(); ok {
		t.Error("failing store recorded a save")
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.msgpack")
	s := NewFileStore(path)

	if _, ok := s.LoadBest(); ok {
		t.Fatal("LoadBest on missing file reported a save")
	}
	if s.Exists() {
		t.Error("Exists() = true before saving")
	}
	if err := s.SaveBest(7); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}
	best, ok := s.LoadBest()
	if !ok || best != 7 {
		t.Errorf("LoadBest() = %d,%v, want 7,true", best, ok)
	}

	// A second store on the same path sees the same progress.
	tr := NewTracker(NewFileStore(path), 1, 0)
	if tr.BestLevel() != 7 {
		t.Errorf("tracker BestLevel() = %d, want 7", tr.BestLevel())
	}
}

func TestFileStore_CorruptFileIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.msgpack")
	if err := os.WriteFile(path, []byte{0xc1, 0xff, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := NewFileStore(path).LoadBest(); ok {
		t.Error("corrupt file reported a save")
	}
}

func TestFileStore_SaveFailsUnderFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(filepath.Join(blocker, "progress.msgpack"))
	if err := s.SaveBest(2); err == nil {
		t.Error("SaveBest under a regular file succeeded")
	}
}
