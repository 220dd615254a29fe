// Package progress tracks the current level and the best level ever reached.
// Only the best level is persisted; every game starts on the configured start level.
package progress

import (
	"log"
)

// Tracker owns the level counters. It never fails: a store that cannot be
// read or written is logged once and the tracker carries on in memory.
type Tracker struct {
	store Store
	start int
	max   int // 0 means unbounded

	current int
	best    int

	saveWarned bool
}

// NewTracker creates a tracker starting at start (at least 1), capped at
// maxLevel when maxLevel > 0. The best level is loaded from store and is never
// lower than start; a start above the saved best is saved right away.
func NewTracker(store Store, start, maxLevel int) *Tracker {
	if start < 1 {
		start = 1
	}
	if maxLevel < 0 {
		maxLevel = 0
	}
	if maxLevel > 0 && start > maxLevel {
		start = maxLevel
	}
	if store == nil {
		store = &MemoryStore{}
	}

	t := &Tracker{store: store, start: start, max: maxLevel, current: start, best: start}
	saved, ok := store.LoadBest()
	switch {
	case ok && saved > t.best:
		t.best = saved
	case ok || t.best > 1:
		// A later start level counts as reached
		t.save()
	}
	return t
}

// CurrentLevel returns the level being played
func (t *Tracker) CurrentLevel() int {
	return t.current
}

// BestLevel returns the highest level reached
func (t *Tracker) BestLevel() int {
	return t.best
}

// MaxLevel returns the level cap, 0 if unbounded
func (t *Tracker) MaxLevel() int {
	return t.max
}

// AtMax reports whether Advance can no longer increase the level
func (t *Tracker) AtMax() bool {
	return t.max > 0 && t.current >= t.max
}

// Advance moves to the next level, saving the best level if it increased.
// It returns the new current level.
func (t *Tracker) Advance() int {
	if !t.AtMax() {
		t.current++
	}
	if t.current > t.best {
		t.best = t.current
		t.save()
	}
	return t.current
}

// Restart keeps the current level. The caller regenerates the maze.
func (t *Tracker) Restart() int {
	return t.current
}

// Reset returns to the start level. The best level is kept.
func (t *Tracker) Reset() int {
	t.current = t.start
	return t.current
}

func (t *Tracker) save() {
	if err := t.store.SaveBest(t.best); err != nil {
		if !t.saveWarned {
			log.Printf("Warning: could not save progress: %v", err)
			t.saveWarned = true
		}
		return
	}
	t.saveWarned = false
}
