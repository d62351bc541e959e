package gallery

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines gallery data access
type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*Image, error)
	List(ctx context.Context, category *Category) ([]*Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates gallery repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	query := `
		INSERT INTO gallery_images (
			id, category, alt, url, thumbnail_url,
			storage_path, thumb_path, width, height, sort_order, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		img.ID, img.Category, img.Alt, img.URL, img.ThumbnailURL,
		img.StoragePath, img.ThumbPath, img.Width, img.Height, img.SortOrder, img.CreatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Image, error) {
	query := `SELECT * FROM gallery_images WHERE id = $1`
	var img Image
	err := r.db.GetContext(ctx, &img, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *repository) List(ctx context.Context, category *Category) ([]*Image, error) {
	var images []*Image
	var err error

	if category != nil {
		query := `SELECT * FROM gallery_images WHERE category = $1 ORDER BY sort_order, created_at`
		err = r.db.SelectContext(ctx, &images, query, *category)
	} else {
		query := `SELECT * FROM gallery_images ORDER BY sort_order, created_at`
		err = r.db.SelectContext(ctx, &images, query)
	}
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
