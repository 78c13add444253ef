package service

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Harshitk-cp/tenantdesk/internal/store"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *AnalyticsGenerator {
	return NewAnalyticsGenerator(rand.New(rand.NewPCG(seed, seed+1)), func() time.Time { return fixedNow })
}

func newTestTenantService(t *testing.T) *TenantService {
	t.Helper()
	svc := NewTenantService(store.NewTenantStore(), store.NewUserStore(), newTestGenerator(1), zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}
