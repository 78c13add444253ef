package store

import (
	"context"
	"testing"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestIdentityStore_GetByEmail(t *testing.T) {
	s, err := NewIdentityStore("demo123", bcrypt.MinCost)
	require.NoError(t, err)
	ctx := context.Background()

	id, err := s.GetByEmail(ctx, " Admin@AcmeCorp.com ")
	require.NoError(t, err)
	assert.Equal(t, "1", id.ID)
	assert.Equal(t, domain.RoleAdmin, id.Role)
	assert.Equal(t, "acme-corp", id.TenantID)
	assert.NoError(t, bcrypt.CompareHashAndPassword(id.PasswordHash, []byte("demo123")))

	_, err = s.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIdentityStore_SixSeededIdentities(t *testing.T) {
	s, err := NewIdentityStore("demo123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Len(t, s.byEmail, 6)
}

func TestSessionStore_PutGetClear(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	_, err := s.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	sess := &domain.Session{Token: "t1", ID: "1", Permissions: domain.DefaultPermissions(domain.RoleAdmin)}
	require.NoError(t, s.Put(ctx, sess))

	// Mutating the caller's copy does not leak into the store.
	sess.Token = "tampered"
	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Token)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	_, err = s.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTenantStore_UpdateSettingsMerges(t *testing.T) {
	s := NewTenantStore()
	ctx := context.Background()
	color := "#000000"

	got, err := s.UpdateSettings(ctx, "acme-corp", domain.SettingsPatch{PrimaryColor: &color})
	require.NoError(t, err)
	assert.Equal(t, "#000000", got.Settings.PrimaryColor)
	assert.Equal(t, "UTC", got.Settings.Timezone)

	reread, err := s.GetByID(ctx, "acme-corp")
	require.NoError(t, err)
	assert.Equal(t, got.Settings, reread.Settings)

	_, err = s.UpdateSettings(ctx, "missing", domain.SettingsPatch{PrimaryColor: &color})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTenantStore_ListKeepsSeedOrder(t *testing.T) {
	tenants, err := NewTenantStore().List(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "acme-corp", tenants[0].ID)
	assert.Equal(t, "tech-solutions", tenants[1].ID)
}

func TestUserStore_CRUD(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := &domain.User{ID: "100", Name: "X", Email: "x@y.com", Role: domain.RoleViewer, TenantID: "acme-corp"}
	require.NoError(t, s.Create(ctx, u))
	assert.ErrorIs(t, s.Create(ctx, u), ErrConflict)

	list, err := s.ListByTenant(ctx, "acme-corp")
	require.NoError(t, err)
	assert.Len(t, list, 4)
	assert.Equal(t, "100", list[3].ID)

	dept := "Ops"
	updated, err := s.Update(ctx, "100", domain.UserPatch{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Ops", updated.Department)

	require.NoError(t, s.Delete(ctx, "100"))
	assert.ErrorIs(t, s.Delete(ctx, "100"), ErrNotFound)

	_, err = s.Update(ctx, "100", domain.UserPatch{Department: &dept})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_FindByTenantAndRole(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	admin, err := s.FindByTenantAndRole(ctx, "acme-corp", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "1", admin.ID)

	_, err = s.FindByTenantAndRole(ctx, "tech-solutions", domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}
