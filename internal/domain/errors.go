package domain

import "errors"

var (
	// ErrInvalidInput indicates caller-supplied data failed validation.
	// Fatal and user-visible.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a referenced entity does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("not found")
)
