package service

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
)

// seriesRange bounds a randomized series. Lower bounds are inclusive, upper
// bounds exclusive.
type seriesRange struct {
	currentMin, currentMax int
	changeMin, changeMax   int
	pointMin, pointMax     int
}

var (
	activeUsersRange = seriesRange{5000, 15000, -10, 10, 3000, 8000}
	revenueRange     = seriesRange{50000, 150000, -15, 15, 25000, 75000}
	engagementRange  = seriesRange{70, 170, -5, 5, 70, 100}
)

// AnalyticsGenerator builds mock analytics snapshots covering the last
// domain.SeriesLength days.
type AnalyticsGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewAnalyticsGenerator(rng *rand.Rand, now func() time.Time) *AnalyticsGenerator {
	return &AnalyticsGenerator{rng: rng, now: now}
}

// NewRandomAnalyticsGenerator seeds a generator from the wall clock.
func NewRandomAnalyticsGenerator() *AnalyticsGenerator {
	seed := uint64(time.Now().UnixNano())
	return NewAnalyticsGenerator(rand.New(rand.NewPCG(seed, seed>>1|1)), time.Now)
}

// Generate returns a newly allocated snapshot on every call.
func (g *AnalyticsGenerator) Generate() *domain.AnalyticsSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().UTC()
	days := make([]string, domain.SeriesLength)
	for i := range days {
		days[i] = now.AddDate(0, 0, -(domain.SeriesLength - 1 - i)).Format(time.DateOnly)
	}

	return &domain.AnalyticsSnapshot{
		ActiveUsers: g.series(activeUsersRange, days),
		Revenue:     g.series(revenueRange, days),
		Engagement:  g.series(engagementRange, days),
		GeneratedAt: now,
	}
}

func (g *AnalyticsGenerator) series(r seriesRange, days []string) domain.Series {
	s := domain.Series{
		Current: g.between(r.currentMin, r.currentMax),
		Change:  g.between(r.changeMin, r.changeMax),
		Data:    make([]domain.Point, len(days)),
	}
	for i, d := range days {
		s.Data[i] = domain.Point{Date: d, Value: g.between(r.pointMin, r.pointMax)}
	}
	return s
}

func (g *AnalyticsGenerator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo)
}
