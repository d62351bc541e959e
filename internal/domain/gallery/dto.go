package gallery

import (
	"time"

	"github.com/google/uuid"
)

// ImageResponse is the public view of a gallery image
type ImageResponse struct {
	ID           uuid.UUID `json:"id"`
	Category     Category  `json:"category"`
	Alt          string    `json:"alt"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToResponse converts entity to response DTO
func ToResponse(img *Image) *ImageResponse {
	return &ImageResponse{
		ID:           img.ID,
		Category:     img.Category,
		Alt:          img.Alt,
		URL:          img.URL,
		ThumbnailURL: img.ThumbnailURL,
		Width:        img.Width,
		Height:       img.Height,
		CreatedAt:    img.CreatedAt,
	}
}
