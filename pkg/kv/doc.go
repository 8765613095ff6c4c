// Package kv provides a small persistent key-value store for JSON-serializable
// records, used to keep client state (such as the auth session) across runs.
//
// The core abstraction is the Store interface with three operations: Get, Set
// and Remove. Values are marshaled to JSON on write and unmarshaled on read,
// so callers never handle raw bytes. A missing value and a corrupt value are
// deliberately indistinguishable: both surface as ErrNotFound, because a
// caller restoring prior state must treat "no prior state" and "unreadable
// prior state" the same way.
//
// Three implementations are provided:
//
//   - FileStore persists each key as a JSON document in a directory. This is
//     the default durable store for the CLI.
//   - MemoryStore keeps values in a map and is intended for tests.
//   - RedisStore persists values in Redis for setups where client state
//     should be shared between hosts.
//
// # Usage
//
//	store, err := kv.NewFileStore(dir)
//	if err != nil { ... }
//
//	if err := store.Set(ctx, "auth", record); err != nil { ... }
//
//	var rec session.Record
//	switch err := store.Get(ctx, "auth", &rec); {
//	case errors.Is(err, kv.ErrNotFound):
//		// start from the zero value
//	case err != nil:
//		// storage medium failure
//	}
package kv
