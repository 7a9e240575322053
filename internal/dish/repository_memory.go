package dish

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	dishes map[int]*Dish
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		dishes: make(map[int]*Dish),
		nextID: 1,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, d *Dish) error {
	d.ID = r.nextID
	r.nextID++
	d.CreatedAt = time.Now()
	copied := *d
	r.dishes[d.ID] = &copied
	return nil
}

func (r *InMemoryRepository) ListByTenant(ctx context.Context, tenantID string) ([]*Dish, error) {
	var dishes []*Dish
	// newest first, same as the SQL ordering
	for id := r.nextID - 1; id >= 1; id-- {
		if d, ok := r.dishes[id]; ok && d.TenantID == tenantID {
			dishes = append(dishes, d)
		}
	}
	return dishes, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, dishID int) (*Dish, error) {
	d, ok := r.dishes[dishID]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, d *Dish) (int64, error) {
	existing, ok := r.dishes[d.ID]
	if !ok || existing.TenantID != d.TenantID {
		return 0, nil
	}
	d.CreatedAt = existing.CreatedAt
	copied := *d
	r.dishes[d.ID] = &copied
	return 1, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, dishID int, tenantID string) (int64, error) {
	d, ok := r.dishes[dishID]
	if !ok || d.TenantID != tenantID {
		return 0, nil
	}
	delete(r.dishes, dishID)
	return 1, nil
}
