package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRefresherService_SelectsDefaultTenantAndRefreshes(t *testing.T) {
	svc := newTestTenantService(t)
	r := NewRefresherService(svc, "acme-corp", zap.NewNop())
	r.SetInitialDelay(time.Millisecond)
	r.SetInterval(5 * time.Millisecond)

	r.Start()
	defer r.Stop()

	require.Eventually(t, func() bool { return !svc.Loading() }, time.Second, time.Millisecond)
	assert.Equal(t, "acme-corp", svc.ActiveTenantID())

	first, err := svc.Analytics()
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		cur, err := svc.Analytics()
		return err == nil && cur != first
	}, time.Second, time.Millisecond)
}

func TestRefresherService_KeepsTenantChosenBeforeInitialLoad(t *testing.T) {
	svc := newTestTenantService(t)
	_, err := svc.SelectTenant(t.Context(), "tech-solutions")
	require.NoError(t, err)

	r := NewRefresherService(svc, "acme-corp", zap.NewNop())
	r.SetInitialDelay(time.Millisecond)
	r.SetInterval(time.Hour)
	r.Start()

	time.Sleep(20 * time.Millisecond)
	r.Stop()
	assert.Equal(t, "tech-solutions", svc.ActiveTenantID())
}

func TestRefresherService_StopBeforeInitialLoad(t *testing.T) {
	svc := newTestTenantService(t)
	r := NewRefresherService(svc, "acme-corp", zap.NewNop())
	r.SetInitialDelay(time.Hour)

	r.Start()
	r.Stop()
	r.Stop()

	assert.True(t, svc.Loading())
}

func TestRefresherService_UnknownDefaultTenantStaysLoading(t *testing.T) {
	svc := newTestTenantService(t)
	r := NewRefresherService(svc, "missing", zap.NewNop())
	r.SetInitialDelay(time.Millisecond)
	r.SetInterval(time.Millisecond)

	r.Start()
	time.Sleep(20 * time.Millisecond)
	r.Stop()

	assert.True(t, svc.Loading())
}

func TestRefresherService_SetIntervalIgnoresNonPositive(t *testing.T) {
	r := NewRefresherService(newTestTenantService(t), "acme-corp", zap.NewNop())

	r.SetInterval(0)
	r.SetInterval(-time.Second)
	assert.Equal(t, defaultRefreshInterval, r.interval)

	r.SetInterval(5 * time.Second)
	assert.Equal(t, 5*time.Second, r.interval)
}
