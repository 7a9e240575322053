package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT 1 FROM users WHERE LOWER(TRIM(email)) = $1 LIMIT 1`
	row := r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email)))

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, tenant_id, owner_name, email, password, role
		FROM users
		WHERE LOWER(TRIM(email)) = $1
	`
	row := r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email)))

	user := &User{}
	if err := row.Scan(&user.ID, &user.TenantID, &user.OwnerName, &user.Email, &user.Password, &user.Role); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *PostgresUserRepository) FindProfile(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT u.id, u.tenant_id, t.name, u.owner_name, u.email, t.category_level, u.role
		FROM users u
		JOIN tenants t ON t.id = u.tenant_id
		WHERE u.id = $1
	`
	row := r.db.QueryRow(ctx, query, userID)

	profile := &Profile{}
	if err := row.Scan(
		&profile.ID,
		&profile.TenantID,
		&profile.RestaurantName,
		&profile.OwnerName,
		&profile.Email,
		&profile.CategoryLevel,
		&profile.Role,
	); err != nil {
		return nil, errors.New("user not found")
	}
	return profile, nil
}

func (r *PostgresUserRepository) CreateTenant(ctx context.Context, tenant *Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}

	query := `
		INSERT INTO tenants (id, name, category_level)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, tenant.ID, tenant.Name, tenant.CategoryLevel)
	return err
}

func (r *PostgresUserRepository) CreateTenantWithAdmin(ctx context.Context, tenant *Tenant, user *User) error {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.TenantID = tenant.ID

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO tenants (id, name, category_level)
		VALUES ($1, $2, $3)
	`, tenant.ID, tenant.Name, tenant.CategoryLevel); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO users (id, tenant_id, owner_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.TenantID, user.OwnerName, user.Email, user.Password, user.Role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailExists
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, tenant_id, owner_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.TenantID, user.OwnerName, user.Email, user.Password, user.Role,
	)
	return err
}

// --------------------------------------------------
// Staff + profile management
// --------------------------------------------------

func (r *PostgresUserRepository) ListStaff(ctx context.Context, tenantID string) ([]*Profile, error) {
	query := `
		SELECT u.id, u.tenant_id, t.name, u.owner_name, u.email, t.category_level, u.role
		FROM users u
		JOIN tenants t ON t.id = u.tenant_id
		WHERE u.tenant_id = $1 AND u.role = $2
		ORDER BY u.owner_name ASC
	`
	rows, err := r.db.Query(ctx, query, tenantID, RoleStaff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []*Profile
	for rows.Next() {
		profile := &Profile{}
		if err := rows.Scan(
			&profile.ID,
			&profile.TenantID,
			&profile.RestaurantName,
			&profile.OwnerName,
			&profile.Email,
			&profile.CategoryLevel,
			&profile.Role,
		); err != nil {
			return nil, err
		}
		staff = append(staff, profile)
	}
	return staff, rows.Err()
}

func (r *PostgresUserRepository) DeleteStaff(ctx context.Context, userID, tenantID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM users
		WHERE id = $1 AND tenant_id = $2 AND role = $3
	`, userID, tenantID, RoleStaff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresUserRepository) UpdateTenant(ctx context.Context, tenantID, name, categoryLevel string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE tenants SET name = $1, category_level = $2
		WHERE id = $3
	`, name, categoryLevel, tenantID)
	return err
}

func (r *PostgresUserRepository) UpdateUserContact(ctx context.Context, userID, ownerName, email string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET owner_name = $1, email = $2
		WHERE id = $3
	`, ownerName, email, userID)
	return err
}

func (r *PostgresUserRepository) EmailOwnedByOther(ctx context.Context, email, userID string) (bool, error) {
	query := `
		SELECT 1 FROM users
		WHERE LOWER(TRIM(email)) = $1 AND id <> $2
		LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email)), userID)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

// --------------------------------------------------
// Legacy password migration
// --------------------------------------------------

func (r *PostgresUserRepository) ListLegacyPasswords(ctx context.Context) ([]*User, error) {
	// bcrypt digests start with the $2 prefix; anything else is a
	// plaintext row left behind by the old system.
	query := `
		SELECT id, tenant_id, owner_name, email, password, role
		FROM users
		WHERE password NOT LIKE '$2%'
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(&user.ID, &user.TenantID, &user.OwnerName, &user.Email, &user.Password, &user.Role); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, userID, hashed string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1
		WHERE id = $2
	`, hashed, userID)

	return err
}
