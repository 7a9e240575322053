package history

import (
	"context"
	"math"
	"time"
)

const (
	defaultDays = 7
	maxDays     = 30
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// BuildSeries reconstructs a fixed-length daily series covering
// [today-(days-1) .. today]. Days with no logged value are filled with
// the most recent resolved value; leading gaps fall back to the
// tenant's live average of the metric column.
func (s *Service) BuildSeries(
	ctx context.Context,
	tenantID, metric string,
	dishID *int,
	days int,
) (*Series, error) {

	metric = NormalizeMetric(metric)
	days = clampDays(days)

	end := time.Now().UTC()
	start := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(days - 1))

	averages, err := s.repo.DailyAverages(ctx, tenantID, metric, dishID, start)
	if err != nil {
		return nil, err
	}

	baseline, err := s.repo.Baseline(ctx, tenantID, metric, dishID)
	if err != nil {
		return nil, err
	}

	return &Series{
		Metric: metric,
		DishID: dishID,
		Days:   days,
		Points: assemblePoints(start, days, averages, baseline),
	}, nil
}

func clampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

// assemblePoints runs the forward-fill. Values are kept unrounded for
// filling and rounded to 2 decimals only on output.
func assemblePoints(start time.Time, days int, averages map[string]float64, baseline *float64) []SeriesPoint {
	points := make([]SeriesPoint, 0, days)

	var lastKnown *float64
	for offset := 0; offset < days; offset++ {
		day := start.AddDate(0, 0, offset)
		date := day.Format("2006-01-02")

		var value *float64
		if avg, ok := averages[date]; ok {
			v := avg
			value = &v
		} else if lastKnown != nil {
			value = lastKnown
		} else {
			value = baseline
		}

		point := SeriesPoint{
			Day:  day.Format("Mon"),
			Date: date,
		}
		if value != nil {
			lastKnown = value
			rounded := math.Round(*value*100) / 100
			point.Price = &rounded
		}
		points = append(points, point)
	}

	return points
}
