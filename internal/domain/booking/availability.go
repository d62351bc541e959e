package booking

import (
	"context"
	"time"

	"github.com/plumeria/retreat-api/internal/domain/catalog"
)

// CatalogSource supplies the catalog the booking flow prices against.
type CatalogSource interface {
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
}

// AvailabilityChecker decides whether an accommodation can take a booking
// for a date range. The check is vacuously true while the selection is
// incomplete (no accommodation or no full date range): that state means
// "not yet applicable", not "unavailable". Any error from a dependency
// makes the answer unavailable — fail-closed, the opposite of the coupon
// validator's behavior, to protect against overbooking.
type AvailabilityChecker struct {
	catalog CatalogSource
	repo    Repository
}

// NewAvailabilityChecker creates the checker
func NewAvailabilityChecker(catalogSrc CatalogSource, repo Repository) *AvailabilityChecker {
	return &AvailabilityChecker{catalog: catalogSrc, repo: repo}
}

// Check reports whether rooms can be booked for [checkIn, checkOut).
func (c *AvailabilityChecker) Check(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time, rooms int) (bool, error) {
	if accommodationID == 0 || checkIn.IsZero() || checkOut.IsZero() {
		return true, nil
	}
	if rooms < 1 {
		rooms = 1
	}

	snap, err := c.catalog.Snapshot(ctx)
	if err != nil {
		return false, err
	}

	acc, ok := snap.Accommodations[accommodationID]
	if !ok || !acc.Available {
		return false, nil
	}

	booked, err := c.repo.CountOverlappingRooms(ctx, accommodationID, checkIn, checkOut)
	if err != nil {
		return false, err
	}

	return rooms <= acc.AvailableRooms-booked, nil
}
