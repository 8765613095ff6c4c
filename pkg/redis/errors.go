package redis

import "errors"

var (
	// ErrInvalidConnectionURL is returned when the connection URL cannot
	// be parsed.
	ErrInvalidConnectionURL = errors.New("redis: invalid connection URL")

	// ErrNotReady is returned when the server does not answer a ping
	// within the configured attempts.
	ErrNotReady = errors.New("redis: server did not become ready")
)
