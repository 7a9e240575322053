package competitor

import (
	"context"
	"testing"
)

func TestCreateDefaultsStatus(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	comp, err := svc.Create(context.Background(), "tenant-1", "Spice Route", "zomato", "https://spiceroute.example", "", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if comp.Status != StatusActive {
		t.Errorf("expected default status %q, got %q", StatusActive, comp.Status)
	}
	if comp.FixtureFile != nil {
		t.Errorf("expected nil fixture file, got %v", *comp.FixtureFile)
	}
}

func TestCreateRequiresFields(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if _, err := svc.Create(context.Background(), "tenant-1", "", "zomato", "https://x.example", "", ""); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := svc.Create(context.Background(), "tenant-1", "Spice Route", "zomato", "", "", ""); err == nil {
		t.Error("expected error for missing website url")
	}
}

func TestUpdateStatusScopedToTenant(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	comp, err := svc.Create(context.Background(), "tenant-1", "Spice Route", "zomato", "https://x.example", "", "Watching")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), "tenant-2", comp.ID, "Paused"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for foreign tenant, got %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), "tenant-1", comp.ID, "Paused"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	got, _ := repo.FindByID(context.Background(), comp.ID, "tenant-1")
	if got.Status != "Paused" {
		t.Errorf("expected status Paused, got %q", got.Status)
	}
}

func TestDeleteMissingCompetitor(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if err := svc.Delete(context.Background(), "tenant-1", 42); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryAlwaysCarriesBands(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalCompetitors != 0 {
		t.Errorf("expected 0 competitors, got %d", summary.TotalCompetitors)
	}
	for _, name := range []string{"low", "medium", "premium"} {
		band, ok := summary.StatusBands[name]
		if !ok {
			t.Fatalf("missing band %q", name)
		}
		if band.CompetitorCount != 0 || band.DishesTrackedTotal != 0 {
			t.Errorf("expected zero band %q, got %+v", name, band)
		}
	}

	if _, err := svc.Create(context.Background(), "tenant-1", "Spice Route", "zomato", "https://x.example", "", "medium"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "tenant-1", "Tandoor Hub", "swiggy", "https://y.example", "", "Medium"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	summary, err = svc.Summary(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalCompetitors != 2 {
		t.Errorf("expected 2 competitors, got %d", summary.TotalCompetitors)
	}
	if summary.StatusBands["medium"].CompetitorCount != 2 {
		t.Errorf("expected medium band of 2, got %+v", summary.StatusBands["medium"])
	}
}

func TestListWithFixturesFiltersEmpty(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), "tenant-1", "Spice Route", "zomato", "https://x.example", "spice.html", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "tenant-2", "Tandoor Hub", "swiggy", "https://y.example", "", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	withFixtures, err := repo.ListWithFixtures(context.Background())
	if err != nil {
		t.Fatalf("ListWithFixtures failed: %v", err)
	}
	if len(withFixtures) != 1 {
		t.Fatalf("expected 1 competitor with fixture, got %d", len(withFixtures))
	}
	if *withFixtures[0].FixtureFile != "spice.html" {
		t.Errorf("unexpected fixture %q", *withFixtures[0].FixtureFile)
	}
}
