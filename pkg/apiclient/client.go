package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBody caps how much of a response body is read when decoding
// error payloads, guarding against a misbehaving server.
const maxResponseBody = 1 << 20

// AuthHeaderProvider returns the authorization header for the next request
// and whether one should be attached. It is consulted at call time, never
// cached.
type AuthHeaderProvider func() (header string, ok bool)

// LocaleProvider returns the language code to send as Accept-Language.
// An empty return omits the header.
type LocaleProvider func() string

// UnauthorizedHook is invoked when a request that carried an authorization
// header is rejected with 401, after the error has been built. Typical use
// is forcing a logout dispatch; the default is to do nothing and leave the
// stale session in place.
type UnauthorizedHook func(ctx context.Context)

// Client issues requests against the user-account backend.
// Use New to create instances; the zero value is not usable.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	authHeader     AuthHeaderProvider
	locale         LocaleProvider
	onUnauthorized UnauthorizedHook
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Nil clients are ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithAuthHeaderProvider wires the source of the authorization header,
// typically session.Store.AuthHeader.
func WithAuthHeaderProvider(p AuthHeaderProvider) Option {
	return func(cl *Client) { cl.authHeader = p }
}

// WithLocaleProvider wires the source of the Accept-Language header.
func WithLocaleProvider(p LocaleProvider) Option {
	return func(cl *Client) { cl.locale = p }
}

// WithUnauthorizedHook installs the 401 reaction policy.
func WithUnauthorizedHook(h UnauthorizedHook) Option {
	return func(cl *Client) { cl.onUnauthorized = h }
}

// New creates a Client for the given base URL.
//
// The default HTTP client pools connections but sets no request timeout:
// cancellation is the caller's job via context, and a deliberately absent
// timeout keeps a slow backend from surfacing as a spurious failure.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrInvalidBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do sends a single JSON request and decodes a 2xx response body into out
// when out is non-nil. Non-2xx responses are mapped to the package error
// taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.locale != nil {
		if lang := c.locale(); lang != "" {
			req.Header.Set("Accept-Language", lang)
		}
	}

	authenticated := false
	if c.authHeader != nil {
		if header, ok := c.authHeader(); ok && header != "" {
			req.Header.Set("Authorization", header)
			authenticated = true
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("apiclient: decode response: %w", err)
		}
		return nil
	}

	apiErr := c.errorFromResponse(resp.StatusCode, data)
	if resp.StatusCode == http.StatusUnauthorized && authenticated && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
	return apiErr
}

// errorFromResponse maps a non-2xx status and body to *ValidationError or
// *APIError. Undecodable bodies degrade to a bare APIError.
func (c *Client) errorFromResponse(status int, data []byte) error {
	var payload struct {
		Message          string            `json:"message"`
		ValidationErrors map[string]string `json:"validationErrors"`
	}
	_ = json.Unmarshal(data, &payload)

	if status == http.StatusBadRequest && len(payload.ValidationErrors) > 0 {
		return &ValidationError{Fields: payload.ValidationErrors}
	}
	return &APIError{Status: status, Message: payload.Message}
}
