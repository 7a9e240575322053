package dish

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, d *Dish) error
	ListByTenant(ctx context.Context, tenantID string) ([]*Dish, error)
	FindByID(ctx context.Context, dishID int) (*Dish, error)
	Update(ctx context.Context, d *Dish) (int64, error)
	Delete(ctx context.Context, dishID int, tenantID string) (int64, error)
}
