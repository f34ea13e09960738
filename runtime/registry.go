package runtime

import (
	"sync"
	"time"

	"readroom/domain"
)

// Registry is the process-wide table of live sessions. It is an injected
// object with an explicit lifecycle: sessions are created lazily on first
// join and evicted by Sweep once idle, never by module-level state.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[domain.SessionID]*Session)}
}

// GetOrCreate returns the one Session for id, constructing it atomically on
// first use. Concurrent callers for the same id always observe the same
// instance.
func (r *Registry) GetOrCreate(id domain.SessionID) *Session {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		return s
	}
	s = newSession(id, time.Now().UTC())
	r.sessions[id] = s
	return s
}

// Get never creates: chat relay must not resurrect unknown sessions.
func (r *Registry) Get(id domain.SessionID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep evicts every session that has no live connection and has been idle
// for at least ttl. It returns the number of evicted sessions. A ttl of zero
// disables eviction.
func (r *Registry) Sweep(now time.Time, ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if s.Idle(now, ttl) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Snapshot copies the observable state of every session, for telemetry.
func (r *Registry) Snapshot() []SessionSnapshot {
	r.mu.RLock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	snaps := make([]SessionSnapshot, 0, len(sessions))
	for _, s := range sessions {
		snaps = append(snaps, s.Snapshot())
	}
	return snaps
}
