// internal/game/types.go
//
// Core type definitions for the daily word-guessing engine.
// Defines:
//   - Attempt: one scored guess, immutable once recorded.
//   - Session: per-player, per-day state with its own lock.

package game

import (
	"sync"
	"time"
)

// Attempt is a single scored guess. Seq is 1 + the number of prior
// attempts; the sequence is append-only with no gaps.
type Attempt struct {
	Word       string // normalized display form
	Similarity int    // 0..100
	Seq        int
	At         time.Time
}

// Session holds one player's progress against one challenge day.
// A new day implicitly starts a fresh session; sessions never carry
// over. The mutex serializes operations per session; distinct sessions
// never contend on it.
type Session struct {
	mu sync.Mutex

	ID       string
	Day      string // YYYY-MM-DD challenge key
	Attempts []Attempt
	Finished bool
	GaveUp   bool

	// prior counts attempts recorded before a same-day restart; only
	// the count survives a restore, not the attempt details.
	prior int
}

// Total returns the attempt count including restored history.
func (s *Session) Total() int { return s.prior + len(s.Attempts) }
