package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrStaffNotFound      = errors.New("staff member not found")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// RegisterAdmin bootstraps a new tenant and its admin account.
func (s *Service) RegisterAdmin(
	ctx context.Context,
	restaurantName, ownerName, email, password, categoryLevel string,
) (*Profile, error) {

	if restaurantName == "" || ownerName == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, _ := s.repo.ExistsByEmail(ctx, email)
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	tenant := &Tenant{
		Name:          restaurantName,
		CategoryLevel: NormalizeCategoryLevel(categoryLevel),
	}
	user := &User{
		OwnerName: ownerName,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      RoleAdmin,
	}

	// Single atomic insert pair. An email collision that slips past
	// the ExistsByEmail check must not leave an orphaned tenant.
	if err := s.repo.CreateTenantWithAdmin(ctx, tenant, user); err != nil {
		return nil, err
	}

	return s.repo.FindProfile(ctx, user.ID)
}

// RegisterStaff creates a staff account inside the admin's tenant.
// Staff share the admin's restaurant scope and pricing band.
func (s *Service) RegisterStaff(
	ctx context.Context,
	admin *Profile,
	ownerName, email, password string,
) (*Profile, error) {

	if ownerName == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, _ := s.repo.ExistsByEmail(ctx, email)
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		TenantID:  admin.TenantID,
		OwnerName: ownerName,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      RoleStaff,
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.repo.FindProfile(ctx, user.ID)
}

// LOGIN
func (s *Service) Login(ctx context.Context, email, password string) (*Profile, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.repo.FindProfile(ctx, user.ID)
}

// Profile resolves the caller's user + tenant view.
func (s *Service) Profile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.FindProfile(ctx, userID)
}

// --------------------------------------------------
// Staff + profile management
// --------------------------------------------------

func (s *Service) ListStaff(ctx context.Context, tenantID string) ([]*Profile, error) {
	return s.repo.ListStaff(ctx, tenantID)
}

// DeleteStaff removes a staff account from the tenant. Admin
// accounts are never deletable through this path.
func (s *Service) DeleteStaff(ctx context.Context, tenantID, staffID string) error {
	affected, err := s.repo.DeleteStaff(ctx, staffID, tenantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// UpdateRestaurantProfile changes the tenant's name and pricing band
// together with the admin's own contact details.
func (s *Service) UpdateRestaurantProfile(
	ctx context.Context,
	userID, restaurantName, ownerName, email, categoryLevel string,
) (*Profile, error) {

	if restaurantName == "" || ownerName == "" || email == "" {
		return nil, errors.New("missing required fields")
	}

	current, err := s.repo.FindProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.EmailOwnedByOther(ctx, email, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailExists
	}

	if err := s.repo.UpdateTenant(ctx, current.TenantID, restaurantName, NormalizeCategoryLevel(categoryLevel)); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateUserContact(ctx, userID, ownerName, email); err != nil {
		return nil, err
	}

	return s.repo.FindProfile(ctx, userID)
}
