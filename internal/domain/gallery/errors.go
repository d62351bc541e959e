package gallery

import "errors"

var (
	ErrNotFound        = errors.New("gallery image not found")
	ErrInvalidCategory = errors.New("invalid gallery category")
	ErrInvalidFile     = errors.New("invalid image file")
	ErrFileTooLarge    = errors.New("image file too large")
)
