package alert

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(repo)

	r := gin.New()
	scoped := r.Group("/api", func(c *gin.Context) {
		c.Set("tenantID", "tenant-1")
		c.Next()
	})
	scoped.GET("/alerts", handler.List)
	scoped.PUT("/alerts/:id/read", handler.MarkRead)
	return r
}

func TestListReturnsNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add(&Alert{
		TenantID: "tenant-1", DishName: "Paneer Tikka",
		OldPrice: 250, NewPrice: 220,
		Message:   "Competitor dropped price for Paneer Tikka from 250 to 220",
		CreatedAt: time.Now().Add(-time.Hour),
	})
	repo.Add(&Alert{
		TenantID: "tenant-1", DishName: "Veg Biryani",
		OldPrice: 180, NewPrice: 150,
		Message:   "Competitor dropped price for Veg Biryani from 180 to 150",
		CreatedAt: time.Now(),
	})
	repo.Add(&Alert{TenantID: "tenant-2", DishName: "Momos", OldPrice: 90, NewPrice: 80})

	router := setupRouter(repo)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/alerts", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var alerts []Alert
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts for tenant, got %d", len(alerts))
	}
	if alerts[0].DishName != "Veg Biryani" {
		t.Errorf("expected newest alert first, got %q", alerts[0].DishName)
	}
}

func TestListEmptyReturnsArray(t *testing.T) {
	router := setupRouter(NewMemoryRepository())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/alerts", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestMarkRead(t *testing.T) {
	repo := NewMemoryRepository()
	a := &Alert{TenantID: "tenant-1", DishName: "Paneer Tikka", OldPrice: 250, NewPrice: 220}
	repo.Add(a)

	router := setupRouter(repo)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/alerts/1/read", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	alerts, _ := repo.ListByTenant(context.Background(), "tenant-1")
	if !alerts[0].IsRead {
		t.Error("expected alert to be marked read")
	}
}

func TestMarkReadMissingAlert(t *testing.T) {
	router := setupRouter(NewMemoryRepository())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/alerts/99/read", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestMarkReadForeignTenant(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Add(&Alert{TenantID: "tenant-2", DishName: "Momos", OldPrice: 90, NewPrice: 80})

	router := setupRouter(repo)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/alerts/1/read", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for foreign tenant alert, got %d", w.Code)
	}
}
