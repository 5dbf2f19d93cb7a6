package portal

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"request-portal/core/utils"
)

type contextKey string

// SessionContextKey carries the *Session through the request context.
const SessionContextKey contextKey = "portal_session"

type registryEntry struct {
	session    *Session
	lastSeenAt time.Time
	expiresAt  time.Time
}

// Registry keeps live portal sessions in memory, keyed by an opaque id.
// Nothing survives a restart; persistence across page loads is explicitly
// out of scope.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	ttl     time.Duration
	logger  *utils.Logger
}

func NewRegistry(ttl time.Duration, logger *utils.Logger) *Registry {
	return &Registry{entries: map[string]*registryEntry{}, ttl: ttl, logger: logger}
}

// Put registers the session and returns its new id.
func (r *Registry) Put(s *Session) string {
	id := uuid.Must(uuid.NewV4()).String()
	now := utils.NowUTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &registryEntry{session: s, lastSeenAt: now, expiresAt: now.Add(r.ttl)}
	return id
}

// Get returns the session for id, refreshing its activity window, or nil
// if it is unknown or expired.
func (r *Registry) Get(id string) *Session {
	now := utils.NowUTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil
	}
	if now.After(e.expiresAt) {
		delete(r.entries, id)
		return nil
	}
	e.lastSeenAt = now
	e.expiresAt = now.Add(r.ttl)
	return e.session
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Sweep evicts expired sessions and reports how many went.
func (r *Registry) Sweep() int {
	now := utils.NowUTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.entries {
		if now.After(e.expiresAt) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
