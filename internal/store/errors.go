package store

import "errors"

// Sentinel errors surfaced to the handlers.
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
