package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// User is a user record as returned by the backend.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Image    string `json:"image,omitempty"`
}

// UserPage is one page of the user listing.
type UserPage struct {
	Content    []User `json:"content"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	TotalPages int    `json:"totalPages"`
}

// SignUpRequest is the account creation body.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the profile edit body.
type UpdateUserRequest struct {
	Username string `json:"username"`
}

// SignUp creates a new, inactive account. Invalid input surfaces as
// *ValidationError with field-keyed messages.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	return c.do(ctx, http.MethodPost, "/users", req, nil)
}

// Activate redeems an email activation token. An invalid or expired token
// surfaces as *APIError.
func (c *Client) Activate(ctx context.Context, token string) error {
	if token == "" {
		return &APIError{Status: http.StatusBadRequest, Message: "activation token is required"}
	}
	return c.do(ctx, http.MethodPost, "/users/token/"+url.PathEscape(token), nil, nil)
}

// ListUsers fetches one page of users.
func (c *Client) ListUsers(ctx context.Context, page, size int) (UserPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	var resp UserPage
	path := fmt.Sprintf("/users?page=%d&size=%d", page, size)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return UserPage{}, err
	}
	return resp, nil
}

// GetUser fetches a single user by id. A missing user surfaces as
// *APIError with status 404.
func (c *Client) GetUser(ctx context.Context, id int64) (User, error) {
	var resp User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &resp); err != nil {
		return User{}, err
	}
	return resp, nil
}

// UpdateUser renames a user. The backend requires the authorization header
// of the owning session.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (User, error) {
	var resp User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), req, &resp); err != nil {
		return User{}, err
	}
	return resp, nil
}

// DeleteUser removes an account. The backend requires the authorization
// header of the owning session.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
