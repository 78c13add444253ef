package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/Harshitk-cp/tenantdesk/internal/store"
	"go.uber.org/zap"
)

// TenantService is the tenant workspace: the active tenant, the member acting
// on its behalf, and the analytics snapshot shown for it. Roster and settings
// mutations are scoped to the active tenant.
type TenantService struct {
	tenants   domain.TenantStore
	users     domain.UserStore
	generator *AnalyticsGenerator
	logger    *zap.Logger
	now       func() time.Time

	mu         sync.RWMutex
	activeID   string
	actingID   string
	analytics  *domain.AnalyticsSnapshot
	lastUserID int64
}

func NewTenantService(ts domain.TenantStore, us domain.UserStore, gen *AnalyticsGenerator, logger *zap.Logger) *TenantService {
	return &TenantService{
		tenants:   ts,
		users:     us,
		generator: gen,
		logger:    logger,
		now:       time.Now,
	}
}

// SelectTenant makes tenantID the active tenant and regenerates analytics.
// The tenant's first admin, if any, becomes the acting member.
func (s *TenantService) SelectTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	t, _, err := s.selectTenant(ctx, tenantID, false)
	return t, err
}

// SelectTenantIfLoading selects tenantID only while no tenant is active. The
// check and the switch happen under one lock, so a selection made in between
// by a sign-in is never overwritten. It reports whether it selected.
func (s *TenantService) SelectTenantIfLoading(ctx context.Context, tenantID string) (bool, error) {
	_, selected, err := s.selectTenant(ctx, tenantID, true)
	return selected, err
}

func (s *TenantService) selectTenant(ctx context.Context, tenantID string, onlyIfLoading bool) (*domain.Tenant, bool, error) {
	t, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, ErrTenantNotFound
		}
		return nil, false, fmt.Errorf("get tenant: %w", err)
	}

	admin, err := s.users.FindByTenantAndRole(ctx, tenantID, domain.RoleAdmin)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("find tenant admin: %w", err)
	}

	snapshot := s.generator.Generate()

	s.mu.Lock()
	if onlyIfLoading && s.activeID != "" {
		s.mu.Unlock()
		return nil, false, nil
	}
	switch {
	case admin != nil:
		s.actingID = admin.ID
	case s.activeID != t.ID:
		// The acting member always belongs to the active tenant.
		s.actingID = ""
	}
	s.activeID = t.ID
	s.analytics = snapshot
	s.mu.Unlock()

	s.logger.Info("tenant selected", zap.String("tenant_id", t.ID))
	return t, true, nil
}

// Loading reports whether no tenant has been selected yet.
func (s *TenantService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID == ""
}

func (s *TenantService) ActiveTenantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

func (s *TenantService) ActiveTenant(ctx context.Context) (*domain.Tenant, error) {
	id := s.ActiveTenantID()
	if id == "" {
		return nil, ErrNoActiveTenant
	}
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get active tenant: %w", err)
	}
	return t, nil
}

// ActingMember returns the roster member acting for the active tenant, or nil.
func (s *TenantService) ActingMember(ctx context.Context) (*domain.User, error) {
	s.mu.RLock()
	id := s.actingID
	s.mu.RUnlock()
	if id == "" {
		return nil, nil
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (s *TenantService) Tenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenants.List(ctx)
}

// CheckSession verifies that sess belongs to the active tenant.
func (s *TenantService) CheckSession(sess *domain.Session) error {
	id := s.ActiveTenantID()
	if id == "" {
		return ErrNoActiveTenant
	}
	if sess.TenantID != id {
		return ErrTenantMismatch
	}
	return nil
}

// Analytics returns the current snapshot. Snapshots are never mutated after
// creation, so the returned pointer is safe to read concurrently.
func (s *TenantService) Analytics() (*domain.AnalyticsSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.analytics == nil {
		return nil, ErrNoActiveTenant
	}
	return s.analytics, nil
}

// RefreshAnalytics swaps in a freshly generated snapshot.
func (s *TenantService) RefreshAnalytics(ctx context.Context) *domain.AnalyticsSnapshot {
	snapshot := s.generator.Generate()

	s.mu.Lock()
	s.analytics = snapshot
	s.mu.Unlock()

	s.logger.Debug("analytics refreshed", zap.Time("generated_at", snapshot.GeneratedAt))
	return snapshot
}

func (s *TenantService) UpdateTenantSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.Tenant, error) {
	id := s.ActiveTenantID()
	if id == "" {
		return nil, ErrNoActiveTenant
	}

	t, err := s.tenants.UpdateSettings(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.logger.Info("tenant settings updated", zap.String("tenant_id", id), zap.Any("patch", patch))
	return t, nil
}

// Users lists the active tenant's roster. With no active tenant it is empty.
func (s *TenantService) Users(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	id := s.ActiveTenantID()
	if id == "" {
		return []domain.User{}, nil
	}

	all, err := s.users.ListByTenant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.User, 0, len(all))
	for _, u := range all {
		if filter.Matches(u) {
			out = append(out, u)
		}
	}
	return out, nil
}

// User returns a member of the active tenant.
func (s *TenantService) User(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if active := s.ActiveTenantID(); active == "" || u.TenantID != active {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// AddUser stores data under a new timestamp-derived id. An empty tenant
// defaults to the active tenant; empty permissions default to the role's.
func (s *TenantService) AddUser(ctx context.Context, data domain.User) (*domain.User, error) {
	if data.Name == "" || data.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidUser)
	}
	if !data.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidUser, data.Role)
	}
	if data.TenantID == "" {
		data.TenantID = s.ActiveTenantID()
		if data.TenantID == "" {
			return nil, ErrNoActiveTenant
		}
	}
	if _, err := s.tenants.GetByID(ctx, data.TenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	if len(data.Permissions) == 0 {
		data.Permissions = domain.DefaultPermissions(data.Role)
	}

	u := data.Clone()
	u.ID = s.nextUserID()
	if err := s.users.Create(ctx, &u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user added",
		zap.String("user_id", u.ID),
		zap.String("tenant_id", u.TenantID),
		zap.String("role", string(u.Role)))
	return &u, nil
}

func (s *TenantService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if _, err := s.User(ctx, id); err != nil {
		return nil, err
	}
	if (patch.Name != nil && *patch.Name == "") || (patch.Email != nil && *patch.Email == "") {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidUser)
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidUser, *patch.Role)
	}

	u, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("user updated", zap.String("user_id", id), zap.Any("patch", patch))
	return u, nil
}

// ChangeRole moves a member to role and resets their permissions to the
// role's defaults.
func (s *TenantService) ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	perms := domain.DefaultPermissions(role)
	return s.UpdateUser(ctx, id, domain.UserPatch{Role: &role, Permissions: &perms})
}

func (s *TenantService) RemoveUser(ctx context.Context, id string) error {
	if _, err := s.User(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.mu.Lock()
	if s.actingID == id {
		s.actingID = ""
	}
	s.mu.Unlock()

	s.logger.Info("user removed", zap.String("user_id", id))
	return nil
}

// nextUserID derives an id from the current Unix millisecond, bumped past the
// previous id so that ids stay unique within a millisecond.
func (s *TenantService) nextUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastUserID {
		id = s.lastUserID + 1
	}
	s.lastUserID = id
	return strconv.FormatInt(id, 10)
}
