package dish

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("dish not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, d *Dish) error {
	query := `
		INSERT INTO dishes (tenant_id, dish_name, category, our_price, competitor_avg)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		d.TenantID, d.DishName, d.Category, d.OurPrice, d.CompetitorAvg,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *PostgresRepository) ListByTenant(ctx context.Context, tenantID string) ([]*Dish, error) {
	query := `
		SELECT id, tenant_id, dish_name, category, our_price, competitor_avg, created_at
		FROM dishes
		WHERE tenant_id = $1
		ORDER BY id DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []*Dish
	for rows.Next() {
		d := &Dish{}
		if err := rows.Scan(&d.ID, &d.TenantID, &d.DishName, &d.Category, &d.OurPrice, &d.CompetitorAvg, &d.CreatedAt); err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) FindByID(ctx context.Context, dishID int) (*Dish, error) {
	query := `
		SELECT id, tenant_id, dish_name, category, our_price, competitor_avg, created_at
		FROM dishes
		WHERE id = $1
	`
	d := &Dish{}
	err := r.db.QueryRow(ctx, query, dishID).Scan(
		&d.ID, &d.TenantID, &d.DishName, &d.Category, &d.OurPrice, &d.CompetitorAvg, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *PostgresRepository) Update(ctx context.Context, d *Dish) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE dishes
		SET dish_name = $1, category = $2, our_price = $3, competitor_avg = $4
		WHERE id = $5 AND tenant_id = $6
	`, d.DishName, d.Category, d.OurPrice, d.CompetitorAvg, d.ID, d.TenantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) Delete(ctx context.Context, dishID int, tenantID string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM dishes WHERE id = $1 AND tenant_id = $2`,
		dishID, tenantID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
