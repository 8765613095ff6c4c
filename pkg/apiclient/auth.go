package apiclient

import (
	"context"
	"net/http"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login. Token is the
// raw bearer token; callers prepend the scheme when building the session
// authorization header.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
	Token    string `json:"token"`
}

// Login authenticates with email and password. Bad credentials surface as
// *APIError with status 401 and the server's message.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth", creds, &resp); err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}

// Logout ends the session server-side. The client-side session record is
// the caller's to reset via a logout dispatch.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}
