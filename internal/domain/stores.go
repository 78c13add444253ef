package domain

import "context"

// Subject is anything that can be checked against a capability: a signed-in
// session or a roster member.
type Subject interface {
	RoleOf() Role
	HasPermission(p Permission) bool
}

type IdentityStore interface {
	GetByEmail(ctx context.Context, email string) (*Identity, error)
}

// SessionStore holds at most one session at a time.
type SessionStore interface {
	Get(ctx context.Context) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

type TenantStore interface {
	List(ctx context.Context) ([]Tenant, error)
	GetByID(ctx context.Context, id string) (*Tenant, error)
	UpdateSettings(ctx context.Context, id string, patch SettingsPatch) (*Tenant, error)
}

type UserStore interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	ListByTenant(ctx context.Context, tenantID string) ([]User, error)
	FindByTenantAndRole(ctx context.Context, tenantID string, role Role) (*User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*User, error)
	Delete(ctx context.Context, id string) error
}
