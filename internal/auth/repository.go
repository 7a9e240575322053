package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindProfile(ctx context.Context, userID string) (*Profile, error)
	CreateTenant(ctx context.Context, tenant *Tenant) error
	// CreateTenantWithAdmin inserts the tenant and its admin as one
	// unit; a failed user insert must not leave the tenant behind.
	CreateTenantWithAdmin(ctx context.Context, tenant *Tenant, user *User) error
	Save(ctx context.Context, user *User) error

	// staff + profile management
	ListStaff(ctx context.Context, tenantID string) ([]*Profile, error)
	DeleteStaff(ctx context.Context, userID, tenantID string) (int64, error)
	UpdateTenant(ctx context.Context, tenantID, name, categoryLevel string) error
	UpdateUserContact(ctx context.Context, userID, ownerName, email string) error
	EmailOwnedByOther(ctx context.Context, email, userID string) (bool, error)

	// legacy password migration
	ListLegacyPasswords(ctx context.Context) ([]*User, error)
	UpdatePassword(ctx context.Context, userID, hashed string) error
}
