package catalog

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRepositoryFiltersUnavailable(t *testing.T) {
	repo := NewStaticRepository(
		[]Accommodation{
			{ID: 1, Title: "Cottage", Available: true},
			{ID: 2, Title: "Closed wing", Available: false},
		},
		[]MealPlan{
			{ID: 1, Title: "Meals", Available: true},
			{ID: 2, Title: "Retired plan", Available: false},
		},
		[]Activity{
			{ID: 1, Title: "Boating", Available: true},
			{ID: 2, Title: "Winter hike", Available: false},
		},
	)

	ctx := context.Background()

	accs, err := repo.ListAccommodations(ctx)
	if err != nil {
		t.Fatalf("ListAccommodations() error = %v", err)
	}
	if len(accs) != 1 || accs[0].ID != 1 {
		t.Fatalf("ListAccommodations() = %v, want only id 1", accs)
	}

	plans, err := repo.ListMealPlans(ctx)
	if err != nil {
		t.Fatalf("ListMealPlans() error = %v", err)
	}
	if len(plans) != 1 || plans[0].ID != 1 {
		t.Fatalf("ListMealPlans() = %v, want only id 1", plans)
	}

	acts, err := repo.ListActivities(ctx)
	if err != nil {
		t.Fatalf("ListActivities() error = %v", err)
	}
	if len(acts) != 1 || acts[0].ID != 1 {
		t.Fatalf("ListActivities() = %v, want only id 1", acts)
	}
}

func TestSnapshotIncludesUnavailable(t *testing.T) {
	// The booking flow needs unavailable entries so the availability
	// guard can reject them explicitly rather than treat them as unknown.
	repo := NewStaticRepository(
		[]Accommodation{{ID: 1, Available: true}, {ID: 2, Available: false}},
		nil, nil,
	)

	snap, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(snap.Accommodations) != 2 {
		t.Fatalf("Snapshot has %d accommodations, want 2", len(snap.Accommodations))
	}
	if snap.Accommodations[2].Available {
		t.Fatal("accommodation 2 should be flagged unavailable")
	}
}

func TestServiceWorksWithoutRedis(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil, time.Minute)
	ctx := context.Background()

	accs, err := svc.Accommodations(ctx)
	if err != nil {
		t.Fatalf("Accommodations() error = %v", err)
	}
	if len(accs) != len(Fixtures.Accommodations) {
		t.Fatalf("got %d accommodations, want %d", len(accs), len(Fixtures.Accommodations))
	}

	plans, err := svc.MealPlans(ctx)
	if err != nil {
		t.Fatalf("MealPlans() error = %v", err)
	}
	if len(plans) != len(Fixtures.MealPlans) {
		t.Fatalf("got %d meal plans, want %d", len(plans), len(Fixtures.MealPlans))
	}

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(snap.Activities) != len(Fixtures.Activities) {
		t.Fatalf("snapshot has %d activities, want %d", len(snap.Activities), len(Fixtures.Activities))
	}

	// Invalidate is a no-op without Redis
	svc.Invalidate(ctx)
}
