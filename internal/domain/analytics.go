package domain

import "time"

type Metric string

const (
	MetricActiveUsers Metric = "active-users"
	MetricRevenue     Metric = "revenue"
	MetricEngagement  Metric = "engagement"
)

var Metrics = []Metric{MetricActiveUsers, MetricRevenue, MetricEngagement}

// SeriesLength is the number of daily points carried by every series.
const SeriesLength = 7

type Point struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

type Series struct {
	Current int     `json:"current"`
	Change  int     `json:"change"`
	Data    []Point `json:"data"`
}

// AnalyticsSnapshot is replaced wholesale on every refresh.
type AnalyticsSnapshot struct {
	ActiveUsers Series    `json:"active_users"`
	Revenue     Series    `json:"revenue"`
	Engagement  Series    `json:"engagement"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (a *AnalyticsSnapshot) Series(m Metric) (Series, bool) {
	switch m {
	case MetricActiveUsers:
		return a.ActiveUsers, true
	case MetricRevenue:
		return a.Revenue, true
	case MetricEngagement:
		return a.Engagement, true
	}
	return Series{}, false
}
