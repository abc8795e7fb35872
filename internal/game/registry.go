// internal/game/registry.go
//
// In-memory session registry keyed by sessionID|day. Lightweight
// persistence for active play; finished state additionally goes to the
// completion log so it survives a same-day restart. Sessions from
// previous days are pruned lazily when a new day's session is created.

package game

import "sync"

// Registry is a concurrency-safe map of live sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session // keyed by ID + "|" + Day
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for (id, day), creating it when
// absent. init runs exactly once on creation, under the session's own
// lock but outside the registry lock: a slow restore (it may hit the
// completion store) stalls only callers of the same session, never the
// whole registry. Late arrivals block on the session lock until init
// finishes, so none can slip past the finished guard.
func (r *Registry) GetOrCreate(id, day string, init func(*Session)) *Session {
	key := id + "|" + day
	r.mu.Lock()
	if s, ok := r.sessions[key]; ok {
		r.mu.Unlock()
		return s
	}
	r.pruneLocked(day)
	s := &Session{ID: id, Day: day, Attempts: []Attempt{}}
	s.mu.Lock()
	r.sessions[key] = s
	r.mu.Unlock()

	if init != nil {
		init(s)
	}
	s.mu.Unlock()
	return s
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// pruneLocked drops sessions belonging to other challenge days.
func (r *Registry) pruneLocked(day string) {
	for k, s := range r.sessions {
		if s.Day != day {
			delete(r.sessions, k)
		}
	}
}
