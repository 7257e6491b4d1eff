// internal/store/memory.go
//
// In-memory registry of live game sessions.
//
// Characteristics:
//   - Sessions are keyed by ID in a map guarded by an RWMutex.
//   - State is lost when the process restarts (score persistence is not offered).
//   - Removing a session also stops its goroutine.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/hangman/internal/session"
)

var ErrNotFound = errors.New("not found")

// Store defines how live sessions are tracked.
type Store interface {
	// Save registers or replaces a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID or returns ErrNotFound.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete closes and forgets a session. Missing IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Evict closes sessions idle for longer than maxIdle and returns how many.
	Evict(now time.Time, maxIdle time.Duration) int

	// Len is the number of live sessions.
	Len() int

	// Close shuts every session down.
	Close()
}

type memory struct {
	mu       sync.RWMutex                // guards sessions
	sessions map[string]*session.Session // keyed by Session.ID
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*session.Session)}
}

func (m *memory) Save(ctx context.Context, s *session.Session) error {
	m.mu.Lock()
	old := m.sessions[s.ID]
	m.sessions[s.ID] = s
	m.mu.Unlock()
	if old != nil && old != s {
		old.Close()
	}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	s := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if s != nil {
		s.Close()
	}
	return nil
}

func (m *memory) Evict(now time.Time, maxIdle time.Duration) int {
	var stale []*session.Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if s.Idle(now) > maxIdle {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()
	for _, s := range stale {
		s.Close()
	}
	return len(stale)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *memory) Close() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*session.Session)
	m.mu.Unlock()
	for _, s := range all {
		s.Close()
	}
}
