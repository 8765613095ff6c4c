package kv

import "context"

// Store is a persistent key-value store for JSON-serializable values.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get unmarshals the value stored under key into dst.
	// It returns ErrNotFound when no value exists or the stored
	// data cannot be decoded.
	Get(ctx context.Context, key string, dst any) error

	// Set marshals value to JSON and stores it under key,
	// replacing any previous value.
	Set(ctx context.Context, key string, value any) error

	// Remove deletes the value stored under key. Removing a
	// missing key is not an error.
	Remove(ctx context.Context, key string) error
}
