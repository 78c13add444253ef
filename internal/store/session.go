package store

import (
	"context"
	"sync"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
)

// SessionStore keeps the single process-wide session.
type SessionStore struct {
	mu      sync.RWMutex
	current *domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Get(ctx context.Context) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNotFound
	}
	cp := *s.current
	cp.Permissions = cp.Permissions.Clone()
	return &cp, nil
}

func (s *SessionStore) Put(ctx context.Context, sess *domain.Session) error {
	cp := *sess
	cp.Permissions = cp.Permissions.Clone()

	s.mu.Lock()
	s.current = &cp
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}
