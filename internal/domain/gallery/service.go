package gallery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/pkg/imaging"
	"github.com/plumeria/retreat-api/internal/pkg/storage"
)

// Service handles gallery business logic
type Service struct {
	repo      Repository
	store     storage.Storage
	processor *imaging.Processor
}

// NewService creates gallery service
func NewService(repo Repository, store storage.Storage, processor *imaging.Processor) *Service {
	return &Service{repo: repo, store: store, processor: processor}
}

// List returns gallery images, optionally filtered by category
func (s *Service) List(ctx context.Context, category *Category) ([]*Image, error) {
	if category != nil {
		if err := validCategory(*category); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, category)
}

// Upload processes and stores an uploaded image, then records it
func (s *Service) Upload(ctx context.Context, category Category, alt, filename string, size int64, file io.Reader) (*Image, error) {
	if err := validCategory(category); err != nil {
		return nil, err
	}
	if !imaging.ValidateType(filename) {
		return nil, ErrInvalidFile
	}
	if !imaging.ValidateSize(size, imaging.MaxFileSize) {
		return nil, ErrFileTooLarge
	}

	processed, err := s.processor.Process(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	id := uuid.New()
	origPath, thumbPath := imaging.GeneratePaths(string(category), id.String()+extFor(processed.ContentType))

	if err := s.store.Save(ctx, origPath, bytes.NewReader(processed.Original), processed.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	if err := s.store.Save(ctx, thumbPath, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		_ = s.store.Delete(ctx, origPath)
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}

	img := &Image{
		ID:           id,
		Category:     category,
		Alt:          alt,
		URL:          s.store.GetURL(origPath),
		ThumbnailURL: s.store.GetURL(thumbPath),
		StoragePath:  origPath,
		ThumbPath:    thumbPath,
		Width:        processed.Width,
		Height:       processed.Height,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, img); err != nil {
		_ = s.store.Delete(ctx, origPath)
		_ = s.store.Delete(ctx, thumbPath)
		return nil, err
	}

	return img, nil
}

// Delete removes an image record and its stored files
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if img.IsUploaded() {
		if err := s.store.Delete(ctx, img.StoragePath); err != nil {
			log.Warn().Err(err).Str("path", img.StoragePath).Msg("Failed to delete stored image")
		}
		if img.ThumbPath != "" {
			if err := s.store.Delete(ctx, img.ThumbPath); err != nil {
				log.Warn().Err(err).Str("path", img.ThumbPath).Msg("Failed to delete stored thumbnail")
			}
		}
	}

	return nil
}

func validCategory(c Category) error {
	switch c {
	case CategoryNature, CategoryAccommodation:
		return nil
	default:
		return ErrInvalidCategory
	}
}

func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
