package enquiry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository keeps enquiries in process memory for database-less
// local development.
type memoryRepository struct {
	mu        sync.RWMutex
	enquiries map[uuid.UUID]*Enquiry
}

// NewMemoryRepository creates an in-memory enquiry repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{enquiries: make(map[uuid.UUID]*Enquiry)}
}

func (r *memoryRepository) Create(ctx context.Context, e *Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.enquiries[e.ID] = &cp
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.enquiries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memoryRepository) List(ctx context.Context, status *Status, limit, offset int) ([]*Enquiry, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Enquiry, 0, len(r.enquiries))
	for _, e := range r.enquiries {
		if status != nil && e.Status != *status {
			continue
		}
		cp := *e
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []*Enquiry{}, total, nil
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
	e, ok := r.enquiries[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = status
	e.UpdatedAt = time.Now()
	return nil
}
