package session

import "errors"

var (
	// ErrNilStorage is returned by New when no kv backend is provided.
	ErrNilStorage = errors.New("session: nil kv store")

	// ErrPersistFailed is returned by Dispatch when the new record could not
	// be written through to durable storage. The in-memory state is not
	// advanced in that case, so memory and durable copies stay equal.
	ErrPersistFailed = errors.New("session: failed to persist record")
)
