package booking

import "errors"

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrUnavailable      = errors.New("accommodation not available for the requested dates")
	ErrNotFound         = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)
