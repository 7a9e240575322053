package history

import "strings"

// Metrics tracked per dish. The history table is an append-only audit
// trail of these two columns.
const (
	MetricOurPrice      = "our_price"
	MetricCompetitorAvg = "competitor_avg"
)

// Point is one logged price observation.
type Point struct {
	TenantID string
	DishID   *int
	DishName string
	Metric   string
	Value    float64
}

// SeriesPoint is one day of the charted window. Price is nil when no
// history and no baseline exist for the day.
type SeriesPoint struct {
	Day   string   `json:"day"`
	Date  string   `json:"date"`
	Price *float64 `json:"price"`
}

type Series struct {
	Metric string        `json:"metric"`
	DishID *int          `json:"dish_id"`
	Days   int           `json:"days"`
	Points []SeriesPoint `json:"points"`
}

// NormalizeMetric lowercases and trims the requested metric, falling
// back to our_price for anything unknown.
func NormalizeMetric(raw string) string {
	if strings.ToLower(strings.TrimSpace(raw)) == MetricCompetitorAvg {
		return MetricCompetitorAvg
	}
	return MetricOurPrice
}
