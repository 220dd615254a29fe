package progress

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Store persists the best level reached.
type Store interface {
	// LoadBest returns the saved best level, or false if nothing usable is saved.
	LoadBest() (int, bool)
	SaveBest(best int) error
}

// record is the on-disk save format.
type record struct {
	Best int `msgpack:"best"`
}

// FileStore keeps the best level in a msgpack file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// LoadBest reads the save file. Missing, unreadable or corrupt files count as no save.
func (s *FileStore) LoadBest() (int, bool) {
	best, err := s.load()
	if err != nil {
		return 0, false
	}
	return best, true
}

func (s *FileStore) load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0, err
	}
	var r record
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	if r.Best < 1 {
		return 0, fmt.Errorf("decode %s: best level %d out of range", s.Path, r.Best)
	}
	return r.Best, nil
}

// SaveBest writes the save file atomically, creating parent directories.
func (s *FileStore) SaveBest(best int) error {
	data, err := msgpack.Marshal(&record{Best: best})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

// Exists reports whether a save file is present
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.Path)
	return !errors.Is(err, os.ErrNotExist)
}

// MemoryStore keeps progress in memory. The zero value is an empty store.
type MemoryStore struct {
	mu    sync.Mutex
	best  int
	saved bool

	// Err, when set, is returned by SaveBest instead of saving.
	Err error
}

// NewMemoryStore creates a store pre-loaded with best, or empty if best < 1.
func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best, saved: best >= 1}
}

// LoadBest returns the stored value
func (s *MemoryStore) LoadBest() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, s.saved
}

// SaveBest stores the value unless Err is set
func (s *MemoryStore) SaveBest(best int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.best = best
	s.saved = true
	return nil
}
