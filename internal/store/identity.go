package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// IdentityStore is the fixed credential table. Every identity shares the
// single demo password, hashed once at construction.
type IdentityStore struct {
	byEmail map[string]domain.Identity
}

func NewIdentityStore(demoPassword string, cost int) (*IdentityStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	s := &IdentityStore{byEmail: make(map[string]domain.Identity)}
	for _, id := range seedIdentities() {
		id.PasswordHash = hash
		s.byEmail[strings.ToLower(id.Email)] = id
	}
	return s, nil
}

func (s *IdentityStore) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	id, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ErrNotFound
	}
	id.Permissions = id.Permissions.Clone()
	return &id, nil
}
