package kv

import "errors"

var (
	// ErrNotFound is returned by Get when no readable value exists under the
	// key. Corrupt stored data is reported as ErrNotFound as well, so callers
	// can treat absent and unreadable state identically.
	ErrNotFound = errors.New("kv: value not found")

	// ErrInvalidKey is returned when a key is empty or cannot be mapped to
	// the underlying medium.
	ErrInvalidKey = errors.New("kv: invalid key")

	// ErrStorageFailure wraps failures of the underlying storage medium.
	ErrStorageFailure = errors.New("kv: storage failure")
)
