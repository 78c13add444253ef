package store

import (
	"context"
	"sync"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
)

type TenantStore struct {
	mu      sync.RWMutex
	order   []string
	tenants map[string]domain.Tenant
}

// NewTenantStore returns a catalog seeded with the mock tenants.
func NewTenantStore() *TenantStore {
	s := &TenantStore{tenants: make(map[string]domain.Tenant)}
	for _, t := range seedTenants() {
		s.order = append(s.order, t.ID)
		s.tenants[t.ID] = t
	}
	return s
}

func (s *TenantStore) List(ctx context.Context) ([]domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Tenant, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneTenant(s.tenants[id]))
	}
	return out, nil
}

func (s *TenantStore) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	t = cloneTenant(t)
	return &t, nil
}

func (s *TenantStore) UpdateSettings(ctx context.Context, id string, patch domain.SettingsPatch) (*domain.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	t.Settings = t.Settings.Merge(patch)
	s.tenants[id] = t

	t = cloneTenant(t)
	return &t, nil
}

func cloneTenant(t domain.Tenant) domain.Tenant {
	if t.Settings.Logo != nil {
		logo := *t.Settings.Logo
		t.Settings.Logo = &logo
	}
	return t
}
