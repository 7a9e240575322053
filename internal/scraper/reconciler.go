package scraper

import (
	"context"
	"fmt"
	"strconv"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/history"
)

// TrackedDish is the slice of a dish the reconciler needs.
type TrackedDish struct {
	ID            int
	DishName      string
	CompetitorAvg *float64
}

// ReconcilerRepo is the write surface the reconciler drives. The
// production implementation runs on a single transaction so one
// competitor's items land atomically.
type ReconcilerRepo interface {
	FindDish(ctx context.Context, tenantID, dishName string) (*TrackedDish, error)
	UpdateCompetitorAvg(ctx context.Context, dishID int, tenantID string, price float64) (int64, error)
	InsertAlert(ctx context.Context, tenantID, dishName string, oldPrice, newPrice float64, message string) error
	RecordHistory(ctx context.Context, point history.Point) error
}

// Reconcile applies extracted competitor prices to the tenant's
// catalog. Dishes are matched by exact name; unmatched items are
// ignored. An alert fires only when a previously known competitor
// average drops. Returns the number of dishes updated.
func Reconcile(ctx context.Context, repo ReconcilerRepo, tenantID string, items []Item) (int, error) {
	updated := 0

	for _, item := range items {
		tracked, err := repo.FindDish(ctx, tenantID, item.DishName)
		if err != nil {
			return updated, err
		}
		if tracked == nil {
			continue
		}

		if tracked.CompetitorAvg != nil && item.Price < *tracked.CompetitorAvg {
			message := fmt.Sprintf(
				"Competitor dropped price for %s from %s to %s",
				tracked.DishName, formatPrice(*tracked.CompetitorAvg), formatPrice(item.Price),
			)
			if err := repo.InsertAlert(ctx, tenantID, tracked.DishName, *tracked.CompetitorAvg, item.Price, message); err != nil {
				return updated, err
			}
		}

		affected, err := repo.UpdateCompetitorAvg(ctx, tracked.ID, tenantID, item.Price)
		if err != nil {
			return updated, err
		}
		if affected == 0 {
			continue
		}
		updated++

		dishID := tracked.ID
		point := history.Point{
			TenantID: tenantID,
			DishID:   &dishID,
			DishName: tracked.DishName,
			Metric:   history.MetricCompetitorAvg,
			Value:    item.Price,
		}
		if err := repo.RecordHistory(ctx, point); err != nil {
			return updated, err
		}
	}

	return updated, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
