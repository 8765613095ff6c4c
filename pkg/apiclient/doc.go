// Package apiclient is the HTTP client for the user-account REST backend:
// signup, account activation, login/logout, paged user listing, and profile
// fetch/update/delete.
//
// Headers are injected at call time, not at construction: every request asks
// the configured providers for the current authorization header and locale
// just before it is sent, so a login or logout between two calls is always
// reflected in the next request. While logged out no Authorization header is
// attached at all.
//
// # Error taxonomy
//
// Callers branch on three failure shapes with errors.As / errors.Is:
//
//   - transport failures (no response obtained) wrap ErrRequestFailed;
//   - *ValidationError carries the field-keyed messages of an HTTP 400
//     response, for per-field feedback;
//   - *APIError carries the status and server message of any other non-2xx
//     response, for generic feedback.
//
// A 401 on a call that carried an authorization header additionally invokes
// the optional WithUnauthorizedHook callback. The default behavior keeps the
// now-stale session untouched; wiring the hook to a logout dispatch makes
// the reaction a caller policy instead.
//
// # Usage
//
//	client, err := apiclient.New("https://api.example.com",
//		apiclient.WithAuthHeaderProvider(sessionStore.AuthHeader),
//		apiclient.WithLocaleProvider(locale.Language),
//	)
//	if err != nil { ... }
//
//	err = client.SignUp(ctx, apiclient.SignUpRequest{
//		Username: "user1",
//		Email:    "user1@mail.com",
//		Password: "P4ssword",
//	})
//	var verr *apiclient.ValidationError
//	if errors.As(err, &verr) {
//		fmt.Println(verr.Field("username"))
//	}
package apiclient
