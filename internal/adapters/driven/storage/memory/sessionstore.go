package memory

import (
	"context"
	"sync"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
// A single mutex covers the map; every operation is single-key and
// short, so per-key sharding buys nothing at bot scale. Put is
// last-writer-wins and SetPage is an atomic read-modify-write, which
// is what keeps concurrent pagination updates from being lost.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.SearchSession
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.SearchSession),
	}
}

// Put stores or unconditionally replaces the owner's session.
func (s *SessionStore) Put(_ context.Context, session domain.SearchSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.OwnerID] = session
	return nil
}

// Get retrieves the owner's session.
func (s *SessionStore) Get(_ context.Context, ownerID string) (*domain.SearchSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[ownerID]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return &session, nil
}

// SetPage atomically updates the page cursor of the owner's session.
func (s *SessionStore) SetPage(_ context.Context, ownerID string, page int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[ownerID]
	if !ok {
		return domain.ErrNoSession
	}
	session.Page = page
	s.sessions[ownerID] = session
	return nil
}
