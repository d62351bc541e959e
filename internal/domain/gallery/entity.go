package gallery

import (
	"time"

	"github.com/google/uuid"
)

// Category groups gallery images
type Category string

const (
	CategoryNature        Category = "nature"
	CategoryAccommodation Category = "accommodation"
)

// Image is one gallery entry. External images carry only URLs; uploaded
// ones also carry storage paths so they can be removed later.
type Image struct {
	ID           uuid.UUID `db:"id"`
	Category     Category  `db:"category"`
	Alt          string    `db:"alt"`
	URL          string    `db:"url"`
	ThumbnailURL string    `db:"thumbnail_url"`
	StoragePath  string    `db:"storage_path"`
	ThumbPath    string    `db:"thumb_path"`
	Width        int       `db:"width"`
	Height       int       `db:"height"`
	SortOrder    int       `db:"sort_order"`
	CreatedAt    time.Time `db:"created_at"`
}

// IsUploaded reports whether the image lives in our storage backend
func (i *Image) IsUploaded() bool {
	return i.StoragePath != ""
}
