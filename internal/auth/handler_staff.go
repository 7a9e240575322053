package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Staff and profile routes sit behind the auth middleware with the
// admin role required, so the caller identity comes off the context.

func callerID(c *gin.Context) (string, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}

// --------------------------------------------------
// POST /api/create-staff
// --------------------------------------------------
func (h *Handler) CreateStaff(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		OwnerName string `json:"owner_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.OwnerName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_name, email, and password are required"})
		return
	}

	admin, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	staff, err := h.service.RegisterStaff(c.Request.Context(), admin, req.OwnerName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create staff"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// --------------------------------------------------
// GET /api/staff
// --------------------------------------------------
func (h *Handler) ListStaff(c *gin.Context) {
	tenantID, ok := c.Get("tenantID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	staff, err := h.service.ListStaff(c.Request.Context(), tenantID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch staff"})
		return
	}
	if staff == nil {
		staff = []*Profile{}
	}

	c.JSON(http.StatusOK, staff)
}

// --------------------------------------------------
// DELETE /api/staff/:id
// --------------------------------------------------
func (h *Handler) DeleteStaff(c *gin.Context) {
	tenantID, ok := c.Get("tenantID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.service.DeleteStaff(c.Request.Context(), tenantID.(string), c.Param("id")); err != nil {
		if errors.Is(err, ErrStaffNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete staff"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member removed"})
}

// --------------------------------------------------
// PUT /api/restaurant-profile
// --------------------------------------------------
func (h *Handler) UpdateRestaurantProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		RestaurantName string `json:"restaurant_name"`
		OwnerName      string `json:"owner_name"`
		Email          string `json:"email"`
		CategoryLevel  string `json:"category_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.RestaurantName == "" || req.OwnerName == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_name, owner_name, and email are required"})
		return
	}

	profile, err := h.service.UpdateRestaurantProfile(
		c.Request.Context(),
		userID, req.RestaurantName, req.OwnerName, req.Email, req.CategoryLevel,
	)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
