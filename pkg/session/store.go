package session

import (
	"context"
	"errors"
	"sync"

	"github.com/innovativeGem/userkit/pkg/kv"
)

// Listener receives each new record after a dispatch completes.
// Listeners must not call Dispatch from within the callback.
type Listener func(Record)

// Store is the single source of truth for the session Record. Every
// Dispatch runs the reducer, writes the result through to durable storage,
// then notifies subscribers in registration order. Dispatch is synchronous
// and serialized, so subscribers observe states in exact dispatch order.
type Store struct {
	kv  kv.Store
	key string

	mu     sync.Mutex
	state  Record
	subs   []subscription
	nextID uint64
}

type subscription struct {
	id uint64
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithStorageKey overrides the durable storage key. The default is
// StorageKey.
func WithStorageKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates a Store backed by the given kv store and rehydrates the
// current record from it. Rehydration is local-only: a missing, corrupt or
// too-new stored record yields the logged-out default, and no network call
// is ever made.
func New(ctx context.Context, storage kv.Store, opts ...Option) (*Store, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}

	s := &Store{
		kv:    storage,
		key:   StorageKey,
		state: LoggedOut(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var rec Record
	switch err := storage.Get(ctx, s.key, &rec); {
	case err == nil:
		if rec.Version <= SchemaVersion {
			s.state = rec
		}
	case errors.Is(err, kv.ErrNotFound):
		// first run, keep the default
	default:
		return nil, err
	}

	return s, nil
}

// State returns the current record.
func (s *Store) State() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AuthHeader returns the authorization header to attach to an outgoing
// request and whether one should be attached at all. It is intended as the
// API client's header provider.
func (s *Store) AuthHeader() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsLoggedIn {
		return "", false
	}
	return s.state.Header, true
}

// Dispatch computes the next record via Reduce, persists it write-through
// under the storage key, then synchronously notifies every subscriber with
// the new record. If persisting fails the state is not advanced and
// ErrPersistFailed is returned, keeping the in-memory and durable copies
// equal.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(s.state, action)
	if err := s.kv.Set(ctx, s.key, next); err != nil {
		return errors.Join(ErrPersistFailed, err)
	}
	s.state = next

	for _, sub := range s.subs {
		sub.fn(next)
	}
	return nil
}

// Subscribe registers a listener invoked on every future dispatch and
// returns a function that removes it. Listeners are called in registration
// order.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
