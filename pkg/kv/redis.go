package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a Redis connection, for setups
// where client state should be shared between hosts. Keys are namespaced
// with a prefix so unrelated data in the same database is not touched.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a RedisStore using the provided client.
// The prefix is prepended to every key; pass "" for no namespacing.
func NewRedisStore(client *redis.Client, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("kv: nil redis client")
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

// Get unmarshals the value stored under key into dst.
func (s *RedisStore) Get(ctx context.Context, key string, dst any) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return errors.Join(ErrStorageFailure, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return ErrNotFound
	}
	return nil
}

// Set marshals value and stores it under key with no expiration.
func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}

	if err := s.client.Set(ctx, s.prefix+key, raw, 0).Err(); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

// Remove deletes the value stored under key.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}
