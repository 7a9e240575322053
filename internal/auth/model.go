package auth

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Tenant is the restaurant-scoped ownership boundary. Every dish,
// competitor, alert and history row belongs to exactly one tenant.
type Tenant struct {
	ID            string
	Name          string
	CategoryLevel string
	CreatedAt     time.Time
}

// User is the domain entity.
type User struct {
	ID        string
	TenantID  string
	OwnerName string
	Email     string
	Password  string
	Role      string
}

// Profile is a user joined with its tenant, as returned to API clients.
type Profile struct {
	ID             string `json:"id"`
	TenantID       string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	OwnerName      string `json:"owner_name"`
	Email          string `json:"email"`
	CategoryLevel  string `json:"category_level"`
	Role           string `json:"role"`
}

var allowedCategoryLevels = map[string]bool{
	"low":     true,
	"medium":  true,
	"high":    true,
	"premium": true,
}

// NormalizeCategoryLevel lowercases and validates a pricing band,
// falling back to "medium".
func NormalizeCategoryLevel(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if allowedCategoryLevels[value] {
		return value
	}
	return "medium"
}
