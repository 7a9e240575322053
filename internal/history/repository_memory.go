package history

import (
	"context"
	"time"
)

// InMemoryRepository backs service tests; points are bucketed by the
// date they were recorded on.
type InMemoryRepository struct {
	Points    []recordedPoint
	Baselines map[string]*float64 // keyed by metric
}

type recordedPoint struct {
	Point
	RecordedAt time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		Baselines: make(map[string]*float64),
	}
}

func (r *InMemoryRepository) Record(ctx context.Context, point Point) error {
	r.Points = append(r.Points, recordedPoint{Point: point, RecordedAt: time.Now().UTC()})
	return nil
}

// RecordAt plants a point on a specific day for window tests.
func (r *InMemoryRepository) RecordAt(point Point, at time.Time) {
	r.Points = append(r.Points, recordedPoint{Point: point, RecordedAt: at})
}

func (r *InMemoryRepository) DailyAverages(
	ctx context.Context,
	tenantID, metric string,
	dishID *int,
	since time.Time,
) (map[string]float64, error) {

	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, p := range r.Points {
		if p.TenantID != tenantID || p.Metric != metric || p.RecordedAt.Before(since) {
			continue
		}
		if dishID != nil && (p.DishID == nil || *p.DishID != *dishID) {
			continue
		}
		date := p.RecordedAt.Format("2006-01-02")
		sums[date] += p.Value
		counts[date]++
	}

	averages := make(map[string]float64, len(sums))
	for date, sum := range sums {
		averages[date] = sum / float64(counts[date])
	}
	return averages, nil
}

func (r *InMemoryRepository) Baseline(
	ctx context.Context,
	tenantID, metric string,
	dishID *int,
) (*float64, error) {
	return r.Baselines[metric], nil
}
