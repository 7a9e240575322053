package competitor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/competitors
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	competitors, err := h.service.List(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch competitors"})
		return
	}
	if competitors == nil {
		competitors = []*Competitor{}
	}

	c.JSON(http.StatusOK, competitors)
}

// --------------------------------------------------
// POST /api/competitors
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Name        string `json:"restaurant_name"`
		Platform    string `json:"platform"`
		WebsiteURL  string `json:"website_url"`
		FixtureFile string `json:"mock_file"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" || req.Platform == "" || req.WebsiteURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_name, platform and website_url are required"})
		return
	}

	comp, err := h.service.Create(
		c.Request.Context(),
		tenantID, req.Name, req.Platform, req.WebsiteURL, req.FixtureFile, req.Status,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create competitor"})
		return
	}

	c.JSON(http.StatusCreated, comp)
}

// --------------------------------------------------
// PUT /api/competitors/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid competitor id"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), tenantID, id, req.Status); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "competitor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update competitor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Competitor updated"})
}

// --------------------------------------------------
// DELETE /api/competitors/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid competitor id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "competitor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete competitor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Competitor removed"})
}

// --------------------------------------------------
// GET /api/analysis/summary
// --------------------------------------------------
func (h *Handler) AnalysisSummary(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
