package competitor

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("competitor not found")

// Repository defines the data-access contract. The scrape pipeline
// consumes the FindByID / ListWithFixtures / UpdateScrapeResult subset.
type Repository interface {
	Create(ctx context.Context, comp *Competitor) error
	ListByTenant(ctx context.Context, tenantID string) ([]*Competitor, error)
	FindByID(ctx context.Context, competitorID int, tenantID string) (*Competitor, error)
	UpdateStatus(ctx context.Context, competitorID int, tenantID, status string) (int64, error)
	Delete(ctx context.Context, competitorID int, tenantID string) (int64, error)

	// scrape pipeline
	ListWithFixtures(ctx context.Context) ([]*Competitor, error)
	UpdateScrapeResult(ctx context.Context, competitorID int, tenantID string, dishesTracked int, title string) error

	// analysis
	StatusBands(ctx context.Context, tenantID string) (map[string]StatusBand, error)
}
