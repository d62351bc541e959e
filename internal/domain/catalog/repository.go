package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository defines catalog data access. Listing methods return only
// items marked available; Get methods resolve any id.
type Repository interface {
	ListAccommodations(ctx context.Context) ([]Accommodation, error)
	GetAccommodation(ctx context.Context, id int64) (*Accommodation, error)
	ListMealPlans(ctx context.Context) ([]MealPlan, error)
	ListActivities(ctx context.Context) ([]Activity, error)
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates a Postgres-backed catalog repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListAccommodations(ctx context.Context) ([]Accommodation, error) {
	var items []Accommodation
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, type, title, description, price, capacity, features,
		       image_url, has_ac, has_attached_bath, available_rooms, available
		FROM accommodations
		WHERE available = true
		ORDER BY id
	`)
	return items, err
}

func (r *repository) GetAccommodation(ctx context.Context, id int64) (*Accommodation, error) {
	var item Accommodation
	err := r.db.GetContext(ctx, &item, `
		SELECT id, type, title, description, price, capacity, features,
		       image_url, has_ac, has_attached_bath, available_rooms, available
		FROM accommodations
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *repository) ListMealPlans(ctx context.Context) ([]MealPlan, error) {
	var items []MealPlan
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, type, title, description, price, includes, available
		FROM meal_plans
		WHERE available = true
		ORDER BY id
	`)
	return items, err
}

func (r *repository) ListActivities(ctx context.Context) ([]Activity, error) {
	var items []Activity
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, title, description, price, image_url, duration,
		       max_participants, available
		FROM activities
		WHERE available = true
		ORDER BY id
	`)
	return items, err
}

// Snapshot loads the full catalog, including unavailable items, so the
// price calculator can resolve every id that was ever listed.
func (r *repository) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Accommodations: make(map[int64]Accommodation),
		MealPlans:      make(map[int64]MealPlan),
		Activities:     make(map[int64]Activity),
	}

	var accommodations []Accommodation
	if err := r.db.SelectContext(ctx, &accommodations, `
		SELECT id, type, title, description, price, capacity, features,
		       image_url, has_ac, has_attached_bath, available_rooms, available
		FROM accommodations
	`); err != nil {
		return nil, err
	}
	for _, a := range accommodations {
		snap.Accommodations[a.ID] = a
	}

	var mealPlans []MealPlan
	if err := r.db.SelectContext(ctx, &mealPlans, `
		SELECT id, type, title, description, price, includes, available
		FROM meal_plans
	`); err != nil {
		return nil, err
	}
	for _, m := range mealPlans {
		snap.MealPlans[m.ID] = m
	}

	var activities []Activity
	if err := r.db.SelectContext(ctx, &activities, `
		SELECT id, title, description, price, image_url, duration,
		       max_participants, available
		FROM activities
	`); err != nil {
		return nil, err
	}
	for _, a := range activities {
		snap.Activities[a.ID] = a
	}

	return snap, nil
}
