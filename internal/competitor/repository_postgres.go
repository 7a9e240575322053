package competitor

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const competitorColumns = `
	id, tenant_id, name, platform, website_url, fixture_file,
	dishes_tracked, status, scraped_title, last_updated, created_at
`

func scanCompetitor(row pgx.Row) (*Competitor, error) {
	comp := &Competitor{}
	err := row.Scan(
		&comp.ID,
		&comp.TenantID,
		&comp.Name,
		&comp.Platform,
		&comp.WebsiteURL,
		&comp.FixtureFile,
		&comp.DishesTracked,
		&comp.Status,
		&comp.ScrapedTitle,
		&comp.LastUpdated,
		&comp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comp, nil
}

func (r *PostgresRepository) Create(ctx context.Context, comp *Competitor) error {
	query := `
		INSERT INTO competitors (tenant_id, name, platform, website_url, status, last_updated, fixture_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	now := time.Now().UTC()
	comp.LastUpdated = &now
	return r.db.QueryRow(ctx, query,
		comp.TenantID, comp.Name, comp.Platform, comp.WebsiteURL, comp.Status, comp.LastUpdated, comp.FixtureFile,
	).Scan(&comp.ID, &comp.CreatedAt)
}

func (r *PostgresRepository) ListByTenant(ctx context.Context, tenantID string) ([]*Competitor, error) {
	query := `
		SELECT ` + competitorColumns + `
		FROM competitors
		WHERE tenant_id = $1
		ORDER BY id DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var competitors []*Competitor
	for rows.Next() {
		comp, err := scanCompetitor(rows)
		if err != nil {
			return nil, err
		}
		competitors = append(competitors, comp)
	}
	return competitors, rows.Err()
}

func (r *PostgresRepository) FindByID(ctx context.Context, competitorID int, tenantID string) (*Competitor, error) {
	query := `
		SELECT ` + competitorColumns + `
		FROM competitors
		WHERE id = $1 AND tenant_id = $2
	`
	comp, err := scanCompetitor(r.db.QueryRow(ctx, query, competitorID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comp, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, competitorID int, tenantID, status string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE competitors
		SET status = $1, last_updated = $2
		WHERE id = $3 AND tenant_id = $4
	`, status, time.Now().UTC(), competitorID, tenantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) Delete(ctx context.Context, competitorID int, tenantID string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM competitors WHERE id = $1 AND tenant_id = $2`,
		competitorID, tenantID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --------------------------------------------------
// Scrape pipeline
// --------------------------------------------------

func (r *PostgresRepository) ListWithFixtures(ctx context.Context) ([]*Competitor, error) {
	query := `
		SELECT ` + competitorColumns + `
		FROM competitors
		WHERE fixture_file IS NOT NULL AND fixture_file <> ''
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var competitors []*Competitor
	for rows.Next() {
		comp, err := scanCompetitor(rows)
		if err != nil {
			return nil, err
		}
		competitors = append(competitors, comp)
	}
	return competitors, rows.Err()
}

func (r *PostgresRepository) UpdateScrapeResult(
	ctx context.Context,
	competitorID int,
	tenantID string,
	dishesTracked int,
	title string,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE competitors
		SET dishes_tracked = $1,
		    scraped_title = $2,
		    last_updated = $3,
		    status = $4
		WHERE id = $5 AND tenant_id = $6
	`, dishesTracked, title, time.Now().UTC(), StatusActive, competitorID, tenantID)

	return err
}

// --------------------------------------------------
// Analysis
// --------------------------------------------------

func (r *PostgresRepository) StatusBands(ctx context.Context, tenantID string) (map[string]StatusBand, error) {
	rows, err := r.db.Query(ctx, `
		SELECT LOWER(status) AS status, COUNT(*) AS competitor_count,
		       COALESCE(SUM(dishes_tracked), 0) AS dishes_tracked_total
		FROM competitors
		WHERE tenant_id = $1
		GROUP BY LOWER(status)
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bands := make(map[string]StatusBand)
	for rows.Next() {
		var status string
		var band StatusBand
		if err := rows.Scan(&status, &band.CompetitorCount, &band.DishesTrackedTotal); err != nil {
			return nil, err
		}
		bands[status] = band
	}
	return bands, rows.Err()
}
