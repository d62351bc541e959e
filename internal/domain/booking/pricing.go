package booking

import (
	"math"

	"github.com/plumeria/retreat-api/internal/domain/catalog"
)

// ComputeTotal prices a selection against a catalog snapshot.
//
// Accommodation is charged per room, meal plan and activities per guest.
// Ids that do not resolve contribute zero rather than failing: a stale
// selection still prices the parts that exist. The discount percent is
// applied multiplicatively to the subtotal and the result is rounded to
// the nearest cent once, after the discount.
func ComputeTotal(snap *catalog.Snapshot, sel Selection) float64 {
	var total float64

	if a, ok := snap.Accommodations[sel.AccommodationID]; ok {
		total += a.Price * float64(sel.Rooms)
	}

	guests := float64(sel.Guests())
	if m, ok := snap.MealPlans[sel.MealPlanID]; ok {
		total += m.Price * guests
	}

	for _, id := range sel.ActivityIDs {
		if act, ok := snap.Activities[id]; ok {
			total += act.Price * guests
		}
	}

	if sel.DiscountPercent > 0 {
		total *= 1 - sel.DiscountPercent/100
	}

	return roundCents(total)
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
