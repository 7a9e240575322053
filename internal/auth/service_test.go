package auth

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.RegisterAdmin(context.Background(), "Spice Villa", "Test Owner", "test@example.com", password, "medium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterAdminAssignsRoleAndTenant(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	profile, err := service.RegisterAdmin(context.Background(), "Spice Villa", "Test Owner", "admin@example.com", "Password@123", "premium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Role != RoleAdmin {
		t.Errorf("expected role %q, got %q", RoleAdmin, profile.Role)
	}
	if profile.TenantID == "" {
		t.Errorf("expected a tenant to be created")
	}
	if profile.RestaurantName != "Spice Villa" {
		t.Errorf("expected restaurant name to come from the tenant, got %q", profile.RestaurantName)
	}
	if profile.CategoryLevel != "premium" {
		t.Errorf("expected category level premium, got %q", profile.CategoryLevel)
	}
}

func TestRegisterStaffInheritsAdminTenant(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	admin, err := service.RegisterAdmin(context.Background(), "Spice Villa", "Test Owner", "admin@example.com", "Password@123", "medium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	staff, err := service.RegisterStaff(context.Background(), admin, "Staff Member", "staff@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if staff.Role != RoleStaff {
		t.Errorf("expected role %q, got %q", RoleStaff, staff.Role)
	}
	if staff.TenantID != admin.TenantID {
		t.Errorf("staff tenant %q does not match admin tenant %q", staff.TenantID, admin.TenantID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	ctx := context.Background()
	if _, err := service.RegisterAdmin(ctx, "Spice Villa", "Test Owner", "dup@example.com", "Password@123", "medium"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.RegisterAdmin(ctx, "Other Place", "Other Owner", "dup@example.com", "Password@123", "medium")
	if err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	ctx := context.Background()
	if _, err := service.RegisterAdmin(ctx, "Spice Villa", "Test Owner", "login@example.com", "Password@123", "medium"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login(ctx, "login@example.com", "wrong-password"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := service.Login(ctx, "login@example.com", "Password@123"); err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
}

// staleCheckRepo reports every email as free, standing in for a
// concurrent registration that lands between the uniqueness check and
// the insert.
type staleCheckRepo struct {
	*InMemoryUserRepository
}

func (r *staleCheckRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func TestRegisterAdminLeavesNoOrphanTenant(t *testing.T) {
	mem := NewInMemoryUserRepository()
	service := NewService(&staleCheckRepo{mem})

	ctx := context.Background()
	if _, err := service.RegisterAdmin(ctx, "Spice Villa", "Test Owner", "race@example.com", "Password@123", "medium"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tenantsBefore := len(mem.tenants)
	if _, err := service.RegisterAdmin(ctx, "Copy Villa", "Other Owner", "race@example.com", "Password@123", "medium"); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(mem.tenants) != tenantsBefore {
		t.Fatalf("orphaned tenant left behind after failed registration: %d tenant rows", len(mem.tenants)-tenantsBefore+1)
	}
}

func TestMigrateLegacyPasswords(t *testing.T) {
	repo := NewInMemoryUserRepository()

	tenant := &Tenant{Name: "Spice Villa", CategoryLevel: "medium"}
	if err := repo.CreateTenant(context.Background(), tenant); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(context.Background(), &User{
		TenantID:  tenant.ID,
		OwnerName: "Legacy User",
		Email:     "legacy@example.com",
		Password:  "plaintext-secret",
		Role:      RoleAdmin,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := MigrateLegacyPasswords(context.Background(), repo, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["legacy@example.com"]
	if !strings.HasPrefix(user.Password, "$2") {
		t.Fatalf("expected bcrypt digest after migration, got %q", user.Password)
	}

	// After migration login works against the hash.
	service := NewService(repo)
	if _, err := service.Login(context.Background(), "legacy@example.com", "plaintext-secret"); err != nil {
		t.Fatalf("expected migrated login to succeed, got %v", err)
	}

	// A second pass finds nothing to do.
	hashed := user.Password
	if err := MigrateLegacyPasswords(context.Background(), repo, zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.users["legacy@example.com"].Password != hashed {
		t.Fatalf("second migration pass re-hashed an already migrated password")
	}
}
