package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Callers wrap it with the entity name for context.
var ErrNotFound = errors.New("not found")
