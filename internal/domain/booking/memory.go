package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository keeps bookings in process memory. Used when no
// database is configured; bookings do not survive a restart.
type memoryRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*Booking
}

// NewMemoryRepository creates an in-memory booking repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{bookings: make(map[uuid.UUID]*Booking)}
}

func (r *memoryRepository) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memoryRepository) List(ctx context.Context, limit, offset int) ([]*Booking, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		cp := *b
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []*Booking{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *memoryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepository) CountOverlappingRooms(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booked := 0
	for _, b := range r.bookings {
		if b.AccommodationID != accommodationID || b.Status != StatusConfirmed {
			continue
		}
		if b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn) {
			booked += b.Rooms
		}
	}
	return booked, nil
}
