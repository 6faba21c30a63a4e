package storage

import "github.com/pkg/errors"

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")
