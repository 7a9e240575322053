package alert

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("alert not found")

type Repository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*Alert, error)
	MarkRead(ctx context.Context, alertID int, tenantID string) (int64, error)
}
