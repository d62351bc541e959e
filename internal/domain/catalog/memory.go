package catalog

import "context"

// memoryRepository serves the catalog from fixed in-process tables.
// It implements the same Repository interface as the Postgres store so
// the rest of the system is agnostic to catalog origin.
type memoryRepository struct {
	accommodations []Accommodation
	mealPlans      []MealPlan
	activities     []Activity
}

// NewMemoryRepository creates a repository backed by the built-in fixtures.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		accommodations: Fixtures.Accommodations,
		mealPlans:      Fixtures.MealPlans,
		activities:     Fixtures.Activities,
	}
}

// NewStaticRepository creates a repository over the given tables.
// Used by tests to run the booking flow against an arbitrary catalog.
func NewStaticRepository(accommodations []Accommodation, mealPlans []MealPlan, activities []Activity) Repository {
	return &memoryRepository{
		accommodations: accommodations,
		mealPlans:      mealPlans,
		activities:     activities,
	}
}

func (r *memoryRepository) ListAccommodations(ctx context.Context) ([]Accommodation, error) {
	items := make([]Accommodation, 0, len(r.accommodations))
	for _, a := range r.accommodations {
		if a.Available {
			items = append(items, a)
		}
	}
	return items, nil
}

func (r *memoryRepository) GetAccommodation(ctx context.Context, id int64) (*Accommodation, error) {
	for _, a := range r.accommodations {
		if a.ID == id {
			item := a
			return &item, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) ListMealPlans(ctx context.Context) ([]MealPlan, error) {
	items := make([]MealPlan, 0, len(r.mealPlans))
	for _, m := range r.mealPlans {
		if m.Available {
			items = append(items, m)
		}
	}
	return items, nil
}

func (r *memoryRepository) ListActivities(ctx context.Context) ([]Activity, error) {
	items := make([]Activity, 0, len(r.activities))
	for _, a := range r.activities {
		if a.Available {
			items = append(items, a)
		}
	}
	return items, nil
}

func (r *memoryRepository) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Accommodations: make(map[int64]Accommodation, len(r.accommodations)),
		MealPlans:      make(map[int64]MealPlan, len(r.mealPlans)),
		Activities:     make(map[int64]Activity, len(r.activities)),
	}
	for _, a := range r.accommodations {
		snap.Accommodations[a.ID] = a
	}
	for _, m := range r.mealPlans {
		snap.MealPlans[m.ID] = m
	}
	for _, a := range r.activities {
		snap.Activities[a.ID] = a
	}
	return snap, nil
}
