package history

import (
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

// GET /api/price-history?metric=&days=&dish_id=
func (h *Handler) Get(c *gin.Context) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	metric := NormalizeMetric(c.Query("metric"))

	days := defaultDays
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}

	var dishID *int
	if raw := c.Query("dish_id"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			dishID = &parsed
		}
	}

	series, err := h.service.BuildSeries(c.Request.Context(), tenantID, metric, dishID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch price history"})
		return
	}

	c.JSON(http.StatusOK, series)
}
