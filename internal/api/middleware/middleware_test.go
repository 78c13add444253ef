package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

type stubAuth struct {
	token string
	sess  *domain.Session
}

func (s stubAuth) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token != s.token {
		return nil, errors.New("unauthenticated")
	}
	return s.sess, nil
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestSessionAuth_AttachesOnlyValidSessions(t *testing.T) {
	sess := &domain.Session{Email: "admin@acmecorp.com", Role: domain.RoleAdmin}
	var got *domain.Session
	h := SessionAuth(stubAuth{token: "good", sess: sess})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	}))

	for _, tc := range []struct {
		header string
		want   *domain.Session
	}{
		{"Bearer good", sess},
		{"bearer good", sess},
		{"Bearer bad", nil},
		{"Basic good", nil},
		{"", nil},
	} {
		got = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, tc.want, got, tc.header)
	}
}

func serveWithSession(h http.Handler, sess *domain.Session) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if sess != nil {
		req = req.WithContext(WithSession(req.Context(), sess))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireRoles(t *testing.T) {
	h := RequireRoles(domain.RoleAdmin)(okHandler)

	rec := serveWithSession(h, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"view":"sign_in","error":"authentication required"}`, rec.Body.String())

	rec = serveWithSession(h, &domain.Session{Role: domain.RoleViewer})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body accessDeniedBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access_denied", body.View)
	assert.Equal(t, domain.RoleViewer, body.Role)
	assert.Equal(t, []domain.Role{domain.RoleAdmin}, body.RequiredRoles)

	rec = serveWithSession(h, &domain.Session{Role: domain.RoleAdmin})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePermission(t *testing.T) {
	h := RequirePermission(domain.PermManageUsers)(okHandler)

	assert.Equal(t, http.StatusUnauthorized, serveWithSession(h, nil).Code)
	assert.Equal(t, http.StatusForbidden, serveWithSession(h, &domain.Session{
		Role:        domain.RoleManager,
		Permissions: domain.DefaultPermissions(domain.RoleManager),
	}).Code)
	assert.Equal(t, http.StatusOK, serveWithSession(h, &domain.Session{
		Role:        domain.RoleAdmin,
		Permissions: domain.DefaultPermissions(domain.RoleAdmin),
	}).Code)
}

func TestMetrics_CountsOutcomes(t *testing.T) {
	c := &Counters{}
	status := http.StatusOK
	h := Metrics(c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	for _, status = range []int{http.StatusOK, http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	snap := c.Snapshot()
	assert.Equal(t, int64(4), snap["request_count"])
	assert.Equal(t, int64(3), snap["error_count"])
	assert.Equal(t, int64(1), snap["sign_in_shown_count"])
	assert.Equal(t, int64(1), snap["access_denied_count"])
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Middleware(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Another client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(10, 1)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(time.Hour)
	rl.Allow("b")

	assert.Equal(t, 1, rl.Cleanup(30*time.Minute))
	assert.Equal(t, 1, rl.Len())
}

type stubTenants struct {
	loading bool
	active  string
}

func (s stubTenants) Loading() bool { return s.loading }

func (s stubTenants) CheckSession(sess *domain.Session) error {
	if sess.TenantID != s.active {
		return errors.New("session tenant does not match active tenant")
	}
	return nil
}

func TestRequireSessionTenant(t *testing.T) {
	sess := &domain.Session{Role: domain.RoleAdmin, TenantID: "tech-solutions"}

	h := RequireSessionTenant(stubTenants{active: "acme-corp"})(okHandler)
	assert.Equal(t, http.StatusUnauthorized, serveWithSession(h, nil).Code)
	assert.Equal(t, http.StatusConflict, serveWithSession(h, sess).Code)

	h = RequireSessionTenant(stubTenants{active: "tech-solutions"})(okHandler)
	assert.Equal(t, http.StatusOK, serveWithSession(h, sess).Code)

	h = RequireSessionTenant(stubTenants{loading: true})(okHandler)
	assert.Equal(t, http.StatusOK, serveWithSession(h, sess).Code)
}
