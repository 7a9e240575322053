package scraper

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/history"
)

// txRepo implements ReconcilerRepo on top of a single transaction so
// a competitor's reconciliation commits or rolls back as one unit.
type txRepo struct {
	tx pgx.Tx
}

func newTxRepo(tx pgx.Tx) *txRepo {
	return &txRepo{tx: tx}
}

func (r *txRepo) FindDish(ctx context.Context, tenantID, dishName string) (*TrackedDish, error) {
	var tracked TrackedDish
	err := r.tx.QueryRow(ctx, `
		SELECT id, dish_name, competitor_avg
		FROM dishes
		WHERE tenant_id = $1 AND dish_name = $2
	`, tenantID, dishName).Scan(&tracked.ID, &tracked.DishName, &tracked.CompetitorAvg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tracked, nil
}

func (r *txRepo) UpdateCompetitorAvg(ctx context.Context, dishID int, tenantID string, price float64) (int64, error) {
	tag, err := r.tx.Exec(ctx, `
		UPDATE dishes SET competitor_avg = $1
		WHERE id = $2 AND tenant_id = $3
	`, price, dishID, tenantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *txRepo) InsertAlert(ctx context.Context, tenantID, dishName string, oldPrice, newPrice float64, message string) error {
	_, err := r.tx.Exec(ctx, `
		INSERT INTO alerts (tenant_id, dish_name, old_price, new_price, message)
		VALUES ($1, $2, $3, $4, $5)
	`, tenantID, dishName, oldPrice, newPrice, message)
	return err
}

func (r *txRepo) RecordHistory(ctx context.Context, point history.Point) error {
	_, err := r.tx.Exec(ctx, `
		INSERT INTO dish_price_history (tenant_id, dish_id, dish_name, metric, price_value)
		VALUES ($1, $2, $3, $4, $5)
	`, point.TenantID, point.DishID, point.DishName, point.Metric, point.Value)
	return err
}
