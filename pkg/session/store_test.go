package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovativeGem/userkit/pkg/kv"
	"github.com/innovativeGem/userkit/pkg/session"
)

func newStore(t *testing.T) (*session.Store, *kv.MemoryStore) {
	t.Helper()

	storage := kv.NewMemoryStore()
	store, err := session.New(context.Background(), storage)
	require.NoError(t, err)
	return store, storage
}

func TestNew_DefaultsToLoggedOut(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	assert.Equal(t, session.LoggedOut(), store.State())
}

func TestNew_RehydratesFromStorage(t *testing.T) {
	t.Parallel()

	storage := kv.NewMemoryStore()
	seeded := session.Record{
		Version:    session.SchemaVersion,
		IsLoggedIn: true,
		ID:         5,
		Username:   "user5",
		Header:     "H",
	}
	require.NoError(t, storage.Set(context.Background(), session.StorageKey, seeded))

	store, err := session.New(context.Background(), storage)
	require.NoError(t, err)

	assert.Equal(t, seeded, store.State(), "persisted record is trusted verbatim")
}

func TestNew_CorruptStorageYieldsDefault(t *testing.T) {
	t.Parallel()

	storage := kv.NewMemoryStore()
	storage.SeedRaw(session.StorageKey, []byte("{not json"))

	store, err := session.New(context.Background(), storage)
	require.NoError(t, err)
	assert.Equal(t, session.LoggedOut(), store.State())
}

func TestNew_TooNewSchemaTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	storage := kv.NewMemoryStore()
	future := session.Record{
		Version:    session.SchemaVersion + 1,
		IsLoggedIn: true,
		ID:         5,
		Header:     "H",
	}
	require.NoError(t, storage.Set(context.Background(), session.StorageKey, future))

	store, err := session.New(context.Background(), storage)
	require.NoError(t, err)
	assert.Equal(t, session.LoggedOut(), store.State())
}

func TestNew_NilStorage(t *testing.T) {
	t.Parallel()

	_, err := session.New(context.Background(), nil)
	assert.ErrorIs(t, err, session.ErrNilStorage)
}

func TestDispatch_WriteThrough(t *testing.T) {
	t.Parallel()

	store, storage := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess{
		ID:       5,
		Username: "user5",
		Header:   "Bearer abc",
	}))

	var persisted session.Record
	require.NoError(t, storage.Get(ctx, session.StorageKey, &persisted))
	assert.Equal(t, store.State(), persisted, "durable copy must equal memory after dispatch")
}

func TestDispatch_NotifiesSubscribersInOrder(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	ctx := context.Background()

	var order []string
	var firstSeen, secondSeen []session.Record

	store.Subscribe(func(r session.Record) {
		order = append(order, "first")
		firstSeen = append(firstSeen, r)
	})
	store.Subscribe(func(r session.Record) {
		order = append(order, "second")
		secondSeen = append(secondSeen, r)
	})

	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess{ID: 5, Username: "user5", Header: "H"}))
	require.NoError(t, store.Dispatch(ctx, session.UserUpdateSuccess{Username: "renamed"}))
	require.NoError(t, store.Dispatch(ctx, session.LogoutSuccess{}))

	assert.Equal(t, []string{"first", "second", "first", "second", "first", "second"}, order)
	assert.Equal(t, firstSeen, secondSeen, "all subscribers observe the same ordered sequence")
	require.Len(t, firstSeen, 3)
	assert.Equal(t, "user5", firstSeen[0].Username)
	assert.Equal(t, "renamed", firstSeen[1].Username)
	assert.Equal(t, session.LoggedOut(), firstSeen[2])
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	ctx := context.Background()

	var calls int
	unsubscribe := store.Subscribe(func(session.Record) { calls++ })

	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess{ID: 1, Username: "u", Header: "H"}))
	unsubscribe()
	require.NoError(t, store.Dispatch(ctx, session.LogoutSuccess{}))

	assert.Equal(t, 1, calls)

	// Unsubscribing twice is harmless.
	assert.NotPanics(t, unsubscribe)
}

func TestDispatch_PersistFailureKeepsState(t *testing.T) {
	t.Parallel()

	storage := &failingStore{MemoryStore: kv.NewMemoryStore()}
	store, err := session.New(context.Background(), storage)
	require.NoError(t, err)

	var notified bool
	store.Subscribe(func(session.Record) { notified = true })

	storage.fail = true
	err = store.Dispatch(context.Background(), session.LoginSuccess{ID: 5, Username: "u", Header: "H"})

	assert.ErrorIs(t, err, session.ErrPersistFailed)
	assert.Equal(t, session.LoggedOut(), store.State(), "state must not advance when the write-through fails")
	assert.False(t, notified, "subscribers must not see a state that was never persisted")
}

func TestAuthHeader(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	ctx := context.Background()

	header, ok := store.AuthHeader()
	assert.False(t, ok)
	assert.Empty(t, header)

	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess{ID: 5, Username: "user5", Header: "Bearer abc"}))

	header, ok = store.AuthHeader()
	assert.True(t, ok)
	assert.Equal(t, "Bearer abc", header)

	require.NoError(t, store.Dispatch(ctx, session.LogoutSuccess{}))

	_, ok = store.AuthHeader()
	assert.False(t, ok)
}

func TestStore_CustomStorageKey(t *testing.T) {
	t.Parallel()

	storage := kv.NewMemoryStore()
	store, err := session.New(context.Background(), storage, session.WithStorageKey("session"))
	require.NoError(t, err)

	require.NoError(t, store.Dispatch(context.Background(), session.LoginSuccess{ID: 1, Username: "u", Header: "H"}))

	var rec session.Record
	require.NoError(t, storage.Get(context.Background(), "session", &rec))
	assert.True(t, rec.IsLoggedIn)
}

// failingStore wraps a MemoryStore and fails writes on demand.
type failingStore struct {
	*kv.MemoryStore
	fail bool
}

func (f *failingStore) Set(ctx context.Context, key string, value any) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(ctx, key, value)
}
