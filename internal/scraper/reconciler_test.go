package scraper

import (
	"context"
	"testing"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/history"
)

type fakeAlert struct {
	dishName string
	oldPrice float64
	newPrice float64
	message  string
}

// fakeReconcilerRepo stands in for the transactional repository.
type fakeReconcilerRepo struct {
	dishes  map[string]*TrackedDish
	avgs    map[int]float64
	alerts  []fakeAlert
	history []history.Point
}

func newFakeReconcilerRepo() *fakeReconcilerRepo {
	return &fakeReconcilerRepo{
		dishes: make(map[string]*TrackedDish),
		avgs:   make(map[int]float64),
	}
}

func (f *fakeReconcilerRepo) addDish(id int, name string, competitorAvg *float64) {
	f.dishes[name] = &TrackedDish{ID: id, DishName: name, CompetitorAvg: competitorAvg}
}

func (f *fakeReconcilerRepo) FindDish(ctx context.Context, tenantID, dishName string) (*TrackedDish, error) {
	return f.dishes[dishName], nil
}

func (f *fakeReconcilerRepo) UpdateCompetitorAvg(ctx context.Context, dishID int, tenantID string, price float64) (int64, error) {
	f.avgs[dishID] = price
	return 1, nil
}

func (f *fakeReconcilerRepo) InsertAlert(ctx context.Context, tenantID, dishName string, oldPrice, newPrice float64, message string) error {
	f.alerts = append(f.alerts, fakeAlert{dishName, oldPrice, newPrice, message})
	return nil
}

func (f *fakeReconcilerRepo) RecordHistory(ctx context.Context, point history.Point) error {
	f.history = append(f.history, point)
	return nil
}

func avg(v float64) *float64 { return &v }

func TestReconcilePriceDropFiresOneAlert(t *testing.T) {
	repo := newFakeReconcilerRepo()
	repo.addDish(1, "Paneer Tikka", avg(250))

	updated, err := Reconcile(context.Background(), repo, "tenant-1", []Item{
		{DishName: "Paneer Tikka", Price: 220},
	})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if updated != 1 {
		t.Errorf("expected 1 updated, got %d", updated)
	}
	if len(repo.alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(repo.alerts))
	}
	alert := repo.alerts[0]
	if alert.message != "Competitor dropped price for Paneer Tikka from 250 to 220" {
		t.Errorf("unexpected alert message %q", alert.message)
	}
	if alert.oldPrice != 250 || alert.newPrice != 220 {
		t.Errorf("unexpected alert prices %+v", alert)
	}
	if repo.avgs[1] != 220 {
		t.Errorf("competitor avg not updated, got %v", repo.avgs[1])
	}
}

func TestReconcileHigherPriceNoAlert(t *testing.T) {
	repo := newFakeReconcilerRepo()
	repo.addDish(1, "Paneer Tikka", avg(250))

	updated, err := Reconcile(context.Background(), repo, "tenant-1", []Item{
		{DishName: "Paneer Tikka", Price: 250},
		{DishName: "Paneer Tikka", Price: 300},
	})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(repo.alerts) != 0 {
		t.Errorf("equal or higher price must not alert, got %d alerts", len(repo.alerts))
	}
	if updated != 2 {
		t.Errorf("updates still apply, expected 2, got %d", updated)
	}
	if repo.avgs[1] != 300 {
		t.Errorf("expected last write 300, got %v", repo.avgs[1])
	}
}

func TestReconcileFirstObservationNoAlert(t *testing.T) {
	repo := newFakeReconcilerRepo()
	repo.addDish(1, "Veg Biryani", nil)

	updated, err := Reconcile(context.Background(), repo, "tenant-1", []Item{
		{DishName: "Veg Biryani", Price: 150},
	})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(repo.alerts) != 0 {
		t.Error("first observation must not alert")
	}
	if updated != 1 {
		t.Errorf("expected 1 updated, got %d", updated)
	}
}

func TestReconcileSkipsUnknownDishes(t *testing.T) {
	repo := newFakeReconcilerRepo()
	repo.addDish(1, "Paneer Tikka", avg(250))

	updated, err := Reconcile(context.Background(), repo, "tenant-1", []Item{
		{DishName: "Mystery Dish", Price: 10},
		{DishName: "Paneer Tikka", Price: 240},
	})
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if updated != 1 {
		t.Errorf("expected 1 updated, got %d", updated)
	}
	if len(repo.history) != 1 {
		t.Fatalf("expected one history point, got %d", len(repo.history))
	}
	point := repo.history[0]
	if point.Metric != history.MetricCompetitorAvg || point.Value != 240 {
		t.Errorf("unexpected history point %+v", point)
	}
	if point.DishID == nil || *point.DishID != 1 {
		t.Errorf("history point not tied to dish, got %+v", point.DishID)
	}
}
