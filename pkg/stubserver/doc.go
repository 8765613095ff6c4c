// Package stubserver provides an in-memory backend implementing the user
// account REST surface: signup with field validation, email activation
// tokens, bearer-token login, paged user listing, and owner-only profile
// updates and deletion.
//
// It exists for local development and end-to-end tests; nothing survives a
// restart. State lives in a mutex-guarded map, passwords are hashed with
// bcrypt, and sessions are stateless HS256 JWTs.
//
// # Usage
//
//	srv := stubserver.New(stubserver.WithLogger(log))
//	http.ListenAndServe(":8080", srv.Router())
package stubserver
