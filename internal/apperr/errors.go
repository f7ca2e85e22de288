// Package apperr defines sentinel errors shared by all service layers.
package apperr

import "errors"

var (
	// ErrUnauthorized means no identity was resolved, or the resolved
	// identity does not own the target resource.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the referenced id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation means a required field is missing or empty.
	ErrValidation = errors.New("validation error")
	// ErrAlreadyExists means a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
)
