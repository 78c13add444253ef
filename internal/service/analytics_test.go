package service

import (
	"context"
	"testing"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSeriesInRange(t *testing.T, s domain.Series, r seriesRange) {
	t.Helper()
	assert.GreaterOrEqual(t, s.Current, r.currentMin)
	assert.Less(t, s.Current, r.currentMax)
	assert.GreaterOrEqual(t, s.Change, r.changeMin)
	assert.Less(t, s.Change, r.changeMax)
	require.Len(t, s.Data, domain.SeriesLength)
	for _, p := range s.Data {
		assert.GreaterOrEqual(t, p.Value, r.pointMin)
		assert.Less(t, p.Value, r.pointMax)
	}
}

func TestAnalyticsGenerator_Ranges(t *testing.T) {
	g := newTestGenerator(42)
	for i := 0; i < 50; i++ {
		snap := g.Generate()
		assertSeriesInRange(t, snap.ActiveUsers, activeUsersRange)
		assertSeriesInRange(t, snap.Revenue, revenueRange)
		assertSeriesInRange(t, snap.Engagement, engagementRange)
	}
}

func TestAnalyticsGenerator_LastSevenDays(t *testing.T) {
	snap := newTestGenerator(7).Generate()

	want := []string{"2026-03-04", "2026-03-05", "2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09", "2026-03-10"}
	for _, s := range []domain.Series{snap.ActiveUsers, snap.Revenue, snap.Engagement} {
		got := make([]string, len(s.Data))
		for i, p := range s.Data {
			got[i] = p.Date
		}
		assert.Equal(t, want, got)
	}
	assert.Equal(t, fixedNow, snap.GeneratedAt)
}

func TestTenantService_RefreshAnalyticsReplacesSnapshot(t *testing.T) {
	svc := newTestTenantService(t)
	ctx := context.Background()
	_, err := svc.SelectTenant(ctx, "acme-corp")
	require.NoError(t, err)

	first := svc.RefreshAnalytics(ctx)
	second := svc.RefreshAnalytics(ctx)

	assert.NotSame(t, first, second)
	assert.Len(t, first.ActiveUsers.Data, domain.SeriesLength)
	assert.Len(t, second.ActiveUsers.Data, domain.SeriesLength)
	assert.Len(t, first.Engagement.Data, len(second.Engagement.Data))

	current, err := svc.Analytics()
	require.NoError(t, err)
	assert.Same(t, second, current)
}
