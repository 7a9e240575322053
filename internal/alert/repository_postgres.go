package alert

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByTenant(ctx context.Context, tenantID string) ([]*Alert, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, tenant_id, dish_name, old_price, new_price, message, is_read, created_at
		FROM alerts
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []*Alert
	for rows.Next() {
		var a Alert
		if err := rows.Scan(
			&a.ID, &a.TenantID, &a.DishName, &a.OldPrice,
			&a.NewPrice, &a.Message, &a.IsRead, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		alerts = append(alerts, &a)
	}
	return alerts, rows.Err()
}

func (r *PostgresRepository) MarkRead(ctx context.Context, alertID int, tenantID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE alerts SET is_read = TRUE
		WHERE id = $1 AND tenant_id = $2
	`, alertID, tenantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
