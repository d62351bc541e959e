package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/plumeria/retreat-api/internal/domain/catalog"
)

// fakeCatalog implements CatalogSource.
type fakeCatalog struct {
	snap *catalog.Snapshot
	err  error

	snapshotCalls int
}

func (f *fakeCatalog) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	f.snapshotCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

// fakeRepo implements Repository with canned answers and call counting.
type fakeRepo struct {
	booked    int
	countErr  error
	createErr error

	created     []*Booking
	countCalls  int
	createCalls int
}

func (f *fakeRepo) Create(ctx context.Context, b *Booking) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, b)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	for _, b := range f.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(ctx context.Context, limit, offset int) ([]*Booking, int, error) {
	return f.created, len(f.created), nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	for _, b := range f.created {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) CountOverlappingRooms(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (int, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.booked, nil
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestAvailabilityCheckerVacuouslyTrue(t *testing.T) {
	// Incomplete selections never hit the catalog or the repository.
	cat := &fakeCatalog{err: errors.New("must not be called")}
	repo := &fakeRepo{countErr: errors.New("must not be called")}
	c := NewAvailabilityChecker(cat, repo)

	tests := []struct {
		name     string
		accID    int64
		checkIn  time.Time
		checkOut time.Time
	}{
		{"no accommodation", 0, date("2027-06-01"), date("2027-06-03")},
		{"no check-in", 1, time.Time{}, date("2027-06-03")},
		{"no check-out", 1, date("2027-06-01"), time.Time{}},
		{"nothing set", 0, time.Time{}, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := c.Check(context.Background(), tt.accID, tt.checkIn, tt.checkOut, 1)
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if !ok {
				t.Fatal("Check() = false, want vacuously true")
			}
		})
	}

	if cat.snapshotCalls != 0 || repo.countCalls != 0 {
		t.Fatalf("incomplete selections touched dependencies: snapshot=%d count=%d",
			cat.snapshotCalls, repo.countCalls)
	}
}

func TestAvailabilityCheckerRoomArithmetic(t *testing.T) {
	snap := testSnapshot() // accommodation 1 has 10 rooms

	tests := []struct {
		name   string
		booked int
		rooms  int
		want   bool
	}{
		{"all rooms free", 0, 1, true},
		{"exactly enough left", 7, 3, true},
		{"one short", 8, 3, false},
		{"fully booked", 10, 1, false},
		{"zero rooms treated as one", 10, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAvailabilityChecker(&fakeCatalog{snap: snap}, &fakeRepo{booked: tt.booked})
			ok, err := c.Check(context.Background(), 1, date("2027-06-01"), date("2027-06-03"), tt.rooms)
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if ok != tt.want {
				t.Fatalf("Check() = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestAvailabilityCheckerUnknownAccommodation(t *testing.T) {
	c := NewAvailabilityChecker(&fakeCatalog{snap: testSnapshot()}, &fakeRepo{})
	ok, err := c.Check(context.Background(), 999, date("2027-06-01"), date("2027-06-03"), 1)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if ok {
		t.Fatal("Check() = true for unknown accommodation")
	}
}

func TestAvailabilityCheckerUnavailableAccommodation(t *testing.T) {
	snap := testSnapshot()
	acc := snap.Accommodations[1]
	acc.Available = false
	snap.Accommodations[1] = acc

	c := NewAvailabilityChecker(&fakeCatalog{snap: snap}, &fakeRepo{})
	ok, err := c.Check(context.Background(), 1, date("2027-06-01"), date("2027-06-03"), 1)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if ok {
		t.Fatal("Check() = true for unavailable accommodation")
	}
}

func TestAvailabilityCheckerFailsClosed(t *testing.T) {
	t.Run("catalog error", func(t *testing.T) {
		c := NewAvailabilityChecker(&fakeCatalog{err: errors.New("catalog down")}, &fakeRepo{})
		ok, err := c.Check(context.Background(), 1, date("2027-06-01"), date("2027-06-03"), 1)
		if err == nil {
			t.Fatal("Check() expected error")
		}
		if ok {
			t.Fatal("Check() = true on catalog error, want fail-closed")
		}
	})

	t.Run("repository error", func(t *testing.T) {
		c := NewAvailabilityChecker(&fakeCatalog{snap: testSnapshot()}, &fakeRepo{countErr: errors.New("db down")})
		ok, err := c.Check(context.Background(), 1, date("2027-06-01"), date("2027-06-03"), 1)
		if err == nil {
			t.Fatal("Check() expected error")
		}
		if ok {
			t.Fatal("Check() = true on repository error, want fail-closed")
		}
	})
}
