package dish

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type dishRequest struct {
	DishName      string   `json:"dish_name"`
	Category      string   `json:"category"`
	OurPrice      *float64 `json:"our_price"`
	CompetitorAvg *float64 `json:"competitor_avg"`
}

// --------------------------------------------------
// List dishes
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dishes, err := h.service.List(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dishes"})
		return
	}

	if dishes == nil {
		dishes = []*Dish{}
	}
	c.JSON(http.StatusOK, dishes)
}

// --------------------------------------------------
// Create dish
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.DishName == "" || req.Category == "" || req.OurPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish_name, category, and our_price are required"})
		return
	}

	d, err := h.service.Create(
		c.Request.Context(),
		tenantID,
		req.DishName,
		req.Category,
		*req.OurPrice,
		req.CompetitorAvg,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create dish"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Dish created successfully", "id": d.ID})
}

// --------------------------------------------------
// Update dish
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dishID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.DishName == "" || req.Category == "" || req.OurPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish_name, category, and our_price are required"})
		return
	}

	if _, err := h.service.Update(
		c.Request.Context(),
		tenantID,
		dishID,
		req.DishName,
		req.Category,
		*req.OurPrice,
		req.CompetitorAvg,
	); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update dish"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dish updated successfully"})
}

// --------------------------------------------------
// Delete dish
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dishID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, dishID); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete dish"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}
