package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(ctx context.Context, point Point) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO dish_price_history (tenant_id, dish_id, dish_name, metric, price_value)
		VALUES ($1, $2, $3, $4, $5)
	`,
		point.TenantID,
		point.DishID,
		point.DishName,
		point.Metric,
		point.Value,
	)
	return err
}

func (r *PostgresRepository) DailyAverages(
	ctx context.Context,
	tenantID, metric string,
	dishID *int,
	since time.Time,
) (map[string]float64, error) {

	query := `
		SELECT recorded_at::date AS history_day, AVG(price_value) AS avg_price
		FROM dish_price_history
		WHERE tenant_id = $1
		  AND metric = $2
		  AND recorded_at >= $3
	`
	args := []interface{}{tenantID, metric, since}

	if dishID != nil {
		query += ` AND dish_id = $4`
		args = append(args, *dishID)
	}

	query += ` GROUP BY recorded_at::date ORDER BY history_day ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make(map[string]float64)
	for rows.Next() {
		var day time.Time
		var avg float64
		if err := rows.Scan(&day, &avg); err != nil {
			return nil, err
		}
		averages[day.Format("2006-01-02")] = avg
	}
	return averages, rows.Err()
}

func (r *PostgresRepository) Baseline(
	ctx context.Context,
	tenantID, metric string,
	dishID *int,
) (*float64, error) {

	// metric is interpolated as a column name; restrict it to the two
	// known columns before building the query.
	metric = NormalizeMetric(metric)

	query := fmt.Sprintf(`SELECT AVG(%s) FROM dishes WHERE tenant_id = $1`, metric)
	args := []interface{}{tenantID}

	if dishID != nil {
		query += ` AND id = $2`
		args = append(args, *dishID)
	}

	var baseline *float64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&baseline); err != nil {
		return nil, err
	}
	return baseline, nil
}
