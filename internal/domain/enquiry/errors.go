package enquiry

import "errors"

var (
	ErrNotFound      = errors.New("enquiry not found")
	ErrInvalidStatus = errors.New("invalid enquiry status")
)
