package gallery

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository serves the gallery without a database. Uploads work
// too, they just do not survive a restart.
type memoryRepository struct {
	mu     sync.RWMutex
	images map[uuid.UUID]*Image
}

// NewMemoryRepository creates an in-memory repository seeded with the
// marketing site's external images.
func NewMemoryRepository() Repository {
	r := &memoryRepository{images: make(map[uuid.UUID]*Image)}
	for i, f := range Fixtures {
		img := &Image{
			ID:           uuid.New(),
			Category:     f.Category,
			Alt:          f.Alt,
			URL:          f.URL,
			ThumbnailURL: f.URL,
			SortOrder:    i,
			CreatedAt:    time.Now(),
		}
		r.images[img.ID] = img
	}
	return r
}

func (r *memoryRepository) Create(ctx context.Context, img *Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *img
	r.images[img.ID] = &cp
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[id]
	if !ok {
		return nil, nil
	}
	cp := *img
	return &cp, nil
}

func (r *memoryRepository) List(ctx context.Context, category *Category) ([]*Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Image, 0, len(r.images))
	for _, img := range r.images {
		if category != nil && img.Category != *category {
			continue
		}
		cp := *img
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.images[id]; !ok {
		return ErrNotFound
	}
	delete(r.images, id)
	return nil
}
