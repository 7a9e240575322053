package alert

import (
	"context"
	"sort"
	"time"
)

// MemoryRepository is an in-memory Repository used in tests.
type MemoryRepository struct {
	alerts map[int]*Alert
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		alerts: make(map[int]*Alert),
		nextID: 1,
	}
}

// Add inserts an alert directly, standing in for the reconciler write path.
func (r *MemoryRepository) Add(a *Alert) {
	a.ID = r.nextID
	r.nextID++
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	stored := *a
	r.alerts[a.ID] = &stored
}

func (r *MemoryRepository) ListByTenant(ctx context.Context, tenantID string) ([]*Alert, error) {
	var out []*Alert
	for _, a := range r.alerts {
		if a.TenantID == tenantID {
			copied := *a
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) MarkRead(ctx context.Context, alertID int, tenantID string) (int64, error) {
	a, ok := r.alerts[alertID]
	if !ok || a.TenantID != tenantID {
		return 0, nil
	}
	a.IsRead = true
	return 1, nil
}
