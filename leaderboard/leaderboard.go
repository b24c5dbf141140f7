// Package leaderboard holds the in-memory top-N ranking shared by both games
package leaderboard

import (
	"slices"
	"strings"
	"sync"

	"github.com/lixenwraith/graspease/core"
)

// DefaultCapacity matches the scoreboard panel
const DefaultCapacity = 10

// Entry is one admitted result
type Entry struct {
	Name  string
	Score int
	Kind  core.GameKind
	RunID string
}

// Leaderboard is a bounded list sorted by score descending, stable on ties
// Safe for concurrent use; readers receive copies
type Leaderboard struct {
	mu       sync.RWMutex
	capacity int
	entries  []Entry
}

// New creates a leaderboard holding at most capacity entries
// Non-positive capacity falls back to DefaultCapacity
func New(capacity int) *Leaderboard {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Leaderboard{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity+1),
	}
}

// Submit inserts a result in rank order and truncates to capacity
// Returns false when score <= 0, the name is blank, or the score did not make the cut
func (l *Leaderboard) Submit(name string, score int, kind core.GameKind, runID string) bool {
	if score <= 0 || strings.TrimSpace(name) == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Stable insert: the new entry goes after every entry with an equal or higher score
	pos := 0
	for _, e := range l.entries {
		if e.Score >= score {
			pos++
		}
	}
	if pos >= l.capacity {
		return false
	}

	l.entries = slices.Insert(l.entries, pos, Entry{Name: name, Score: score, Kind: kind, RunID: runID})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
	return true
}

// Top returns the current ranking, best first
func (l *Leaderboard) Top() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.entries)
}

// Len returns the number of ranked entries
func (l *Leaderboard) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Capacity returns the maximum number of entries
func (l *Leaderboard) Capacity() int {
	return l.capacity
}

// Reset removes every entry
func (l *Leaderboard) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}
