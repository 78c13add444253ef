package store

import (
	"context"
	"sync"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
)

// UserStore is the in-memory roster. Entries are copied on the way in and out
// so callers never share state with the store.
type UserStore struct {
	mu    sync.RWMutex
	order []string
	users map[string]domain.User
}

// NewUserStore returns a roster seeded with the mock members.
func NewUserStore() *UserStore {
	s := &UserStore{users: make(map[string]domain.User)}
	for _, u := range seedUsers() {
		s.order = append(s.order, u.ID)
		s.users[u.ID] = u
	}
	return s
}

func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID]; exists {
		return ErrConflict
	}
	s.order = append(s.order, u.ID)
	s.users[u.ID] = u.Clone()
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u = u.Clone()
	return &u, nil
}

func (s *UserStore) ListByTenant(ctx context.Context, tenantID string) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0)
	for _, id := range s.order {
		if u := s.users[id]; u.TenantID == tenantID {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

// FindByTenantAndRole returns the first member, in insertion order, holding
// role within the tenant.
func (s *UserStore) FindByTenantAndRole(ctx context.Context, tenantID string, role domain.Role) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if u := s.users[id]; u.TenantID == tenantID && u.Role == role {
			u = u.Clone()
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *UserStore) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u = u.Apply(patch)
	s.users[id] = u

	u = u.Clone()
	return &u, nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
