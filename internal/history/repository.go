package history

import (
	"context"
	"time"
)

// Repository defines the data-access contract for the price audit
// trail. History rows are only ever inserted, never updated.
type Repository interface {
	Record(ctx context.Context, point Point) error

	// DailyAverages returns the per-day average of logged values since
	// the given instant, keyed by ISO date (2006-01-02).
	DailyAverages(ctx context.Context, tenantID, metric string, dishID *int, since time.Time) (map[string]float64, error)

	// Baseline is the tenant's current live average of the metric
	// column on the dishes table, nil when the tenant has no dishes.
	Baseline(ctx context.Context, tenantID, metric string, dishID *int) (*float64, error)
}
