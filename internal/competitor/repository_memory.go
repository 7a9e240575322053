package competitor

import (
	"context"
	"sort"
	"strings"
	"time"
)

// MemoryRepository is an in-memory Repository used in tests.
type MemoryRepository struct {
	competitors map[int]*Competitor
	nextID      int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		competitors: make(map[int]*Competitor),
		nextID:      1,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, comp *Competitor) error {
	comp.ID = r.nextID
	r.nextID++
	now := time.Now()
	comp.CreatedAt = now
	comp.LastUpdated = &now

	stored := *comp
	r.competitors[comp.ID] = &stored
	return nil
}

func (r *MemoryRepository) ListByTenant(ctx context.Context, tenantID string) ([]*Competitor, error) {
	var out []*Competitor
	for _, comp := range r.competitors {
		if comp.TenantID == tenantID {
			copied := *comp
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, competitorID int, tenantID string) (*Competitor, error) {
	comp, ok := r.competitors[competitorID]
	if !ok || comp.TenantID != tenantID {
		return nil, ErrNotFound
	}
	copied := *comp
	return &copied, nil
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, competitorID int, tenantID, status string) (int64, error) {
	comp, ok := r.competitors[competitorID]
	if !ok || comp.TenantID != tenantID {
		return 0, nil
	}
	comp.Status = status
	now := time.Now()
	comp.LastUpdated = &now
	return 1, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, competitorID int, tenantID string) (int64, error) {
	comp, ok := r.competitors[competitorID]
	if !ok || comp.TenantID != tenantID {
		return 0, nil
	}
	delete(r.competitors, competitorID)
	return 1, nil
}

func (r *MemoryRepository) ListWithFixtures(ctx context.Context) ([]*Competitor, error) {
	var out []*Competitor
	for _, comp := range r.competitors {
		if comp.FixtureFile != nil && *comp.FixtureFile != "" {
			copied := *comp
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) UpdateScrapeResult(ctx context.Context, competitorID int, tenantID string, dishesTracked int, title string) error {
	comp, ok := r.competitors[competitorID]
	if !ok || comp.TenantID != tenantID {
		return ErrNotFound
	}
	comp.DishesTracked = dishesTracked
	comp.ScrapedTitle = &title
	comp.Status = StatusActive
	now := time.Now()
	comp.LastUpdated = &now
	return nil
}

func (r *MemoryRepository) StatusBands(ctx context.Context, tenantID string) (map[string]StatusBand, error) {
	bands := make(map[string]StatusBand)
	for _, comp := range r.competitors {
		if comp.TenantID != tenantID {
			continue
		}
		key := strings.ToLower(comp.Status)
		band := bands[key]
		band.CompetitorCount++
		band.DishesTrackedTotal += comp.DishesTracked
		bands[key] = band
	}
	return bands, nil
}
