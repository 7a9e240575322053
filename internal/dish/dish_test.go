package dish

import (
	"context"
	"testing"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/history"

	"go.uber.org/zap"
)

const (
	tenantA = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	tenantB = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

func newTestService() (*Service, *history.InMemoryRepository) {
	recorder := history.NewInMemoryRepository()
	service := NewService(NewInMemoryRepository(), recorder, zap.NewNop())
	return service, recorder
}

func TestCreateThenListRoundTrip(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	avg := 250.0
	created, err := service.Create(ctx, tenantA, "Paneer Tikka", "Starters", 220.0, &avg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dishes, err := service.List(ctx, tenantA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dishes) != 1 {
		t.Fatalf("expected 1 dish, got %d", len(dishes))
	}

	got := dishes[0]
	if got.ID != created.ID ||
		got.DishName != "Paneer Tikka" ||
		got.Category != "Starters" ||
		got.OurPrice != 220.0 ||
		got.CompetitorAvg == nil || *got.CompetitorAvg != 250.0 {
		t.Errorf("listed dish does not match created dish: %+v", got)
	}
}

func TestListIsTenantScoped(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Create(ctx, tenantA, "Paneer Tikka", "Starters", 220.0, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dishes, err := service.List(ctx, tenantB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dishes) != 0 {
		t.Fatalf("expected no dishes for other tenant, got %d", len(dishes))
	}
}

func TestCreateLogsBothMetrics(t *testing.T) {
	service, recorder := newTestService()
	ctx := context.Background()

	avg := 250.0
	if _, err := service.Create(ctx, tenantA, "Paneer Tikka", "Starters", 220.0, &avg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recorder.Points) != 2 {
		t.Fatalf("expected 2 history points, got %d", len(recorder.Points))
	}

	metrics := map[string]float64{}
	for _, p := range recorder.Points {
		metrics[p.Metric] = p.Value
	}
	if metrics[history.MetricOurPrice] != 220.0 {
		t.Errorf("expected our_price point 220.0, got %v", metrics[history.MetricOurPrice])
	}
	if metrics[history.MetricCompetitorAvg] != 250.0 {
		t.Errorf("expected competitor_avg point 250.0, got %v", metrics[history.MetricCompetitorAvg])
	}
}

func TestCreateWithoutCompetitorAvgLogsOneMetric(t *testing.T) {
	service, recorder := newTestService()

	if _, err := service.Create(context.Background(), tenantA, "Paneer Tikka", "Starters", 220.0, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recorder.Points) != 1 {
		t.Fatalf("expected 1 history point, got %d", len(recorder.Points))
	}
	if recorder.Points[0].Metric != history.MetricOurPrice {
		t.Errorf("expected our_price point, got %s", recorder.Points[0].Metric)
	}
}

func TestUpdateOtherTenantDishRejected(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, tenantA, "Paneer Tikka", "Starters", 220.0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Update(ctx, tenantB, created.ID, "Paneer Tikka", "Starters", 99.0, nil); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for cross-tenant update, got %v", err)
	}

	if err := service.Delete(ctx, tenantB, created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for cross-tenant delete, got %v", err)
	}
}
