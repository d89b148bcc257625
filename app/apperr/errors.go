package apperr

import "errors"

// Sentinel errors the HTTP boundary knows how to translate. Services and
// repositories wrap these with context; controllers match with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrBadCredential = errors.New("invalid credentials")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
)
