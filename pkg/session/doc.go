// Package session holds the client-side authentication session: who is
// logged in, under which display name, and which authorization header to
// replay on authenticated requests.
//
// The package is built from three small pieces:
//
//   - Record is the flat session state. Its JSON shape is also the durable
//     shape stored under the "auth" key.
//   - Reduce is a pure transition function mapping (Record, Action) to the
//     next Record. It never performs I/O and never faults; unrecognized
//     actions return the state unchanged. All network effects are resolved
//     to success before an action is ever dispatched, so a failed call can
//     never corrupt session state.
//   - Store owns the current Record, persists every change write-through to
//     a kv.Store, and notifies subscribers in registration order after each
//     dispatch.
//
// On construction the Store rehydrates from durable storage without any
// network call, trusting the persisted record until a later API call proves
// it invalid.
//
// # Usage
//
//	store, err := session.New(ctx, fileStore)
//	if err != nil { ... }
//
//	unsubscribe := store.Subscribe(func(r session.Record) {
//		render(r)
//	})
//	defer unsubscribe()
//
//	// after a successful login call:
//	err = store.Dispatch(ctx, session.LoginSuccess{
//		ID:       resp.ID,
//		Username: resp.Username,
//		Header:   "Bearer " + resp.Token,
//		Image:    resp.Image,
//	})
package session
