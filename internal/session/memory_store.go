package session

import (
	"sync"

	"github.com/google/uuid"

	"invopo/internal/domain"
)

// MemoryStore is an in-process port.SessionStore. Sessions live for the
// lifetime of the process only; there is no cross-process persistence.
// The mutex guards the map itself; actions within a single session are
// expected to execute sequentially.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]*domain.Session)}
}

// GetOrCreate returns the session for id, creating an empty one if needed.
func (s *MemoryStore) GetOrCreate(id uuid.UUID) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := domain.NewSession(id)
	s.sessions[id] = sess
	return sess
}

// Get returns the session for id, or domain.ErrSessionNotFound.
func (s *MemoryStore) Get(id uuid.UUID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes the session for id. Scratch files owned by the session
// are left in place.
func (s *MemoryStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
