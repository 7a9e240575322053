package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// TENANTS
	// -------------------------------
	tenantTableSQL := `
		CREATE TABLE IF NOT EXISTS tenants (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category_level VARCHAR(20) NOT NULL DEFAULT 'medium',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, tenantTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
			owner_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'staff',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// DISHES
	// -------------------------------
	dishTableSQL := `
		CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
			dish_name VARCHAR(255) NOT NULL,
			category VARCHAR(255),
			our_price DOUBLE PRECISION NOT NULL,
			competitor_avg DOUBLE PRECISION,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, dishTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// COMPETITORS
	// -------------------------------
	competitorTableSQL := `
		CREATE TABLE IF NOT EXISTS competitors (
			id SERIAL PRIMARY KEY,
			tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			platform VARCHAR(100),
			website_url VARCHAR(500),
			fixture_file VARCHAR(255),
			dishes_tracked INT NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'Active',
			scraped_title VARCHAR(500),
			last_updated TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, competitorTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ALERTS
	// -------------------------------
	alertTableSQL := `
		CREATE TABLE IF NOT EXISTS alerts (
			id SERIAL PRIMARY KEY,
			tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
			dish_name VARCHAR(255) NOT NULL,
			old_price DOUBLE PRECISION,
			new_price DOUBLE PRECISION,
			message VARCHAR(255),
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, alertTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRICE HISTORY (append-only)
	// -------------------------------
	historyTableSQL := `
		CREATE TABLE IF NOT EXISTS dish_price_history (
			id SERIAL PRIMARY KEY,
			tenant_id UUID NOT NULL,
			dish_id INT,
			dish_name VARCHAR(255),
			metric VARCHAR(32) NOT NULL,
			price_value DOUBLE PRECISION NOT NULL,
			recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_price_history_tenant_metric_time
			ON dish_price_history (tenant_id, metric, recorded_at);

		CREATE INDEX IF NOT EXISTS idx_price_history_dish_metric_time
			ON dish_price_history (dish_id, metric, recorded_at);
	`
	if _, err := pool.Exec(ctx, historyTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
