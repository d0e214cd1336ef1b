package repositories

import "errors"

// ErrNotFound is returned when a record does not exist. Implementations wrap
// it with context so handlers can match with errors.Is.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint (username) is violated.
var ErrDuplicate = errors.New("record already exists")
