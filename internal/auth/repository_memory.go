package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users   map[string]*User // keyed by email
	tenants map[string]*Tenant
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:   make(map[string]*User),
		tenants: make(map[string]*Tenant),
	}
}

func (r *InMemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.users[strings.ToLower(strings.TrimSpace(email))]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) FindProfile(ctx context.Context, userID string) (*Profile, error) {
	for _, user := range r.users {
		if user.ID != userID {
			continue
		}
		profile := &Profile{
			ID:        user.ID,
			TenantID:  user.TenantID,
			OwnerName: user.OwnerName,
			Email:     user.Email,
			Role:      user.Role,
		}
		if tenant, ok := r.tenants[user.TenantID]; ok {
			profile.RestaurantName = tenant.Name
			profile.CategoryLevel = tenant.CategoryLevel
		}
		return profile, nil
	}
	return nil, errors.New("user not found")
}

func (r *InMemoryUserRepository) CreateTenant(ctx context.Context, tenant *Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	r.tenants[tenant.ID] = tenant
	return nil
}

func (r *InMemoryUserRepository) CreateTenantWithAdmin(ctx context.Context, tenant *Tenant, user *User) error {
	key := strings.ToLower(strings.TrimSpace(user.Email))
	if _, exists := r.users[key]; exists {
		return ErrEmailExists
	}

	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.TenantID = tenant.ID

	r.tenants[tenant.ID] = tenant
	r.users[key] = user
	return nil
}

func (r *InMemoryUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[strings.ToLower(strings.TrimSpace(user.Email))] = user
	return nil
}

func (r *InMemoryUserRepository) ListStaff(ctx context.Context, tenantID string) ([]*Profile, error) {
	var staff []*Profile
	for _, user := range r.users {
		if user.TenantID != tenantID || user.Role != RoleStaff {
			continue
		}
		profile, err := r.FindProfile(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		staff = append(staff, profile)
	}
	return staff, nil
}

func (r *InMemoryUserRepository) DeleteStaff(ctx context.Context, userID, tenantID string) (int64, error) {
	for key, user := range r.users {
		if user.ID == userID && user.TenantID == tenantID && user.Role == RoleStaff {
			delete(r.users, key)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *InMemoryUserRepository) UpdateTenant(ctx context.Context, tenantID, name, categoryLevel string) error {
	tenant, ok := r.tenants[tenantID]
	if !ok {
		return errors.New("tenant not found")
	}
	tenant.Name = name
	tenant.CategoryLevel = categoryLevel
	return nil
}

func (r *InMemoryUserRepository) UpdateUserContact(ctx context.Context, userID, ownerName, email string) error {
	for key, user := range r.users {
		if user.ID != userID {
			continue
		}
		user.OwnerName = ownerName
		user.Email = email
		newKey := strings.ToLower(strings.TrimSpace(email))
		if newKey != key {
			delete(r.users, key)
			r.users[newKey] = user
		}
		return nil
	}
	return errors.New("user not found")
}

func (r *InMemoryUserRepository) EmailOwnedByOther(ctx context.Context, email, userID string) (bool, error) {
	user, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	return ok && user.ID != userID, nil
}

func (r *InMemoryUserRepository) ListLegacyPasswords(ctx context.Context) ([]*User, error) {
	var users []*User
	for _, user := range r.users {
		if !strings.HasPrefix(user.Password, "$2") {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *InMemoryUserRepository) UpdatePassword(ctx context.Context, userID, hashed string) error {
	for _, user := range r.users {
		if user.ID == userID {
			user.Password = hashed
			return nil
		}
	}
	return errors.New("user not found")
}
