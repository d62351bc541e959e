package booking

import (
	"testing"

	"github.com/plumeria/retreat-api/internal/domain/catalog"
)

func testSnapshot() *catalog.Snapshot {
	snap := &catalog.Snapshot{
		Accommodations: make(map[int64]catalog.Accommodation),
		MealPlans:      make(map[int64]catalog.MealPlan),
		Activities:     make(map[int64]catalog.Activity),
	}
	for _, a := range catalog.Fixtures.Accommodations {
		snap.Accommodations[a.ID] = a
	}
	for _, m := range catalog.Fixtures.MealPlans {
		snap.MealPlans[m.ID] = m
	}
	for _, a := range catalog.Fixtures.Activities {
		snap.Activities[a.ID] = a
	}
	return snap
}

func TestComputeTotal(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name string
		sel  Selection
		want float64
	}{
		{
			name: "accommodation only",
			sel:  Selection{AccommodationID: 1, Rooms: 1, Adults: 2},
			want: 199,
		},
		{
			name: "accommodation scales per room",
			sel:  Selection{AccommodationID: 1, Rooms: 3, Adults: 2},
			want: 597,
		},
		{
			name: "meal plan scales per guest",
			sel:  Selection{AccommodationID: 2, Rooms: 1, MealPlanID: 1, Adults: 2, Children: 1},
			want: 149 + 35*3,
		},
		{
			name: "free meal plan adds nothing",
			sel:  Selection{AccommodationID: 2, Rooms: 1, MealPlanID: 2, Adults: 2},
			want: 149,
		},
		{
			name: "activities scale per guest",
			sel:  Selection{AccommodationID: 3, Rooms: 1, ActivityIDs: []int64{1, 3}, Adults: 2},
			want: 69 + 25*2 + 40*2,
		},
		{
			name: "full selection with discount",
			sel: Selection{
				AccommodationID: 1, Rooms: 2, MealPlanID: 1,
				ActivityIDs: []int64{1}, Adults: 2, Children: 1,
				DiscountPercent: 10,
			},
			want: 520.20, // (398 + 105 + 75) * 0.9
		},
		{
			name: "unknown accommodation prices at zero",
			sel:  Selection{AccommodationID: 999, Rooms: 2, MealPlanID: 1, Adults: 2},
			want: 70,
		},
		{
			name: "unknown meal plan prices at zero",
			sel:  Selection{AccommodationID: 3, Rooms: 1, MealPlanID: 999, Adults: 4},
			want: 69,
		},
		{
			name: "unknown activity prices at zero",
			sel:  Selection{AccommodationID: 3, Rooms: 1, ActivityIDs: []int64{999, 1}, Adults: 1},
			want: 69 + 25,
		},
		{
			name: "empty selection is zero",
			sel:  Selection{Adults: 2},
			want: 0,
		},
		{
			name: "hundred percent discount is free",
			sel:  Selection{AccommodationID: 1, Rooms: 1, Adults: 1, DiscountPercent: 100},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(snap, tt.sel)
			if got != tt.want {
				t.Fatalf("ComputeTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeTotalArithmetic(t *testing.T) {
	snap := &catalog.Snapshot{
		Accommodations: map[int64]catalog.Accommodation{
			1: {ID: 1, Price: 100, AvailableRooms: 5, Available: true},
		},
		MealPlans: map[int64]catalog.MealPlan{
			1: {ID: 1, Price: 20, Available: true},
		},
		Activities: map[int64]catalog.Activity{},
	}

	sel := Selection{AccommodationID: 1, Rooms: 2, MealPlanID: 1, Adults: 2}
	if got := ComputeTotal(snap, sel); got != 240 {
		t.Fatalf("ComputeTotal() = %v, want 240", got)
	}

	sel.DiscountPercent = 10
	if got := ComputeTotal(snap, sel); got != 216 {
		t.Fatalf("ComputeTotal() with 10%% = %v, want 216", got)
	}
}

func TestComputeTotalRoundsToCents(t *testing.T) {
	snap := &catalog.Snapshot{
		Accommodations: map[int64]catalog.Accommodation{
			1: {ID: 1, Price: 33.33, AvailableRooms: 5, Available: true},
		},
		MealPlans:  map[int64]catalog.MealPlan{},
		Activities: map[int64]catalog.Activity{},
	}

	// 33.33 * 0.85 = 28.3305, rounds to 28.33
	got := ComputeTotal(snap, Selection{AccommodationID: 1, Rooms: 1, Adults: 1, DiscountPercent: 15})
	if got != 28.33 {
		t.Fatalf("ComputeTotal() = %v, want 28.33", got)
	}
}
