package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// MemoryStore implements Store using an in-memory map.
// Values survive for the lifetime of the process only; it exists for
// tests and for running the CLI without touching the filesystem.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]json.RawMessage)}
}

// Get unmarshals the value stored under key into dst.
func (s *MemoryStore) Get(ctx context.Context, key string, dst any) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return ErrNotFound
	}
	return nil
}

// Set marshals value and stores it under key.
func (s *MemoryStore) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}

	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

// Remove deletes the value stored under key.
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// SeedRaw stores raw bytes under key without JSON validation.
// It exists so tests can simulate corrupt stored data.
func (s *MemoryStore) SeedRaw(key string, raw []byte) {
	s.mu.Lock()
	s.values[key] = json.RawMessage(raw)
	s.mu.Unlock()
}
