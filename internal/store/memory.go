// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Solver sessions are ephemeral by design (one per puzzle attempt, never
// persisted between runs), so a map behind an RWMutex is the only backend.
//
// Characteristics:
//   - Stores *solver.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - ErrNotFound is returned for missing session IDs on Get/Delete.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/lexio/wordle-assist/internal/solver"
)

// ErrNotFound is returned when a session ID is not in the store.
var ErrNotFound = errors.New("session not found")

// Store defines the holding interface for solver sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *solver.Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*solver.Session, error)

	// Delete abandons a session. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex               // guards sessions map
	sessions map[string]*solver.Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*solver.Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *solver.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*solver.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Delete removes a session by ID.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}
