package scraper

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/competitor"
	"github.com/navarojreddy48/PriceWatcher-AI/internal/middleware"
)

type Handler struct {
	service *Service
	saver   FixtureSaver
}

func NewHandler(service *Service, saver FixtureSaver) *Handler {
	return &Handler{service: service, saver: saver}
}

// --------------------------------------------------
// POST /api/competitors/:id/scrape
// --------------------------------------------------
func (h *Handler) ScrapeLive(c *gin.Context) {
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

	probe, err := h.service.ScrapeLive(c.Request.Context(), tenantID, id)
	if err != nil {
		switch {
		case errors.Is(err, competitor.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "competitor not found"})
		case errors.Is(err, ErrScrapeFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to scrape competitor website"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store scrape result"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Scrape complete",
		"title":          probe.Title,
		"dishes_tracked": probe.PricesFound,
	})
}

// --------------------------------------------------
// POST /api/scrape/:id
// --------------------------------------------------
func (h *Handler) Reconcile(c *gin.Context) {
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

	updated, err := h.service.ReconcileByID(c.Request.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, competitor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "competitor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reconcile competitor prices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reconciliation complete",
		"updated": updated,
	})
}

// --------------------------------------------------
// POST /api/fixtures
// --------------------------------------------------
func (h *Handler) UploadFixture(c *gin.Context) {
	if _, ok := middleware.TenantID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()

	if err := h.saver.Save(c.Request.Context(), fileHeader.Filename, f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store snapshot"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Snapshot stored", "file": fileHeader.Filename})
}
