package userlist

import (
	"context"
	"errors"
	"sync"

	"github.com/innovativeGem/userkit/pkg/apiclient"
)

// ErrStaleResponse reports that a Load completed after a newer Load had
// already started; its response was dropped. Callers normally ignore it.
var ErrStaleResponse = errors.New("userlist: response superseded by a newer load")

// Lister is the slice of the API client the pager needs.
type Lister interface {
	ListUsers(ctx context.Context, page, size int) (apiclient.UserPage, error)
}

// State is a snapshot of the pager.
type State struct {
	Content    []apiclient.User
	Page       int
	TotalPages int
	Loading    bool
}

// HasNext reports whether a later page exists.
func (s State) HasNext() bool { return s.Page+1 < s.TotalPages }

// HasPrev reports whether an earlier page exists.
func (s State) HasPrev() bool { return s.Page > 0 }

// Pager fetches and holds one page of the user listing at a time.
// All methods are safe for concurrent use.
type Pager struct {
	client Lister
	size   int

	mu    sync.Mutex
	gen   uint64
	state State
}

// Option configures a Pager.
type Option func(*Pager)

// WithPageSize overrides the default page size of 10.
func WithPageSize(size int) Option {
	return func(p *Pager) {
		if size > 0 {
			p.size = size
		}
	}
}

// NewPager creates a Pager over the given client.
func NewPager(client Lister, opts ...Option) *Pager {
	p := &Pager{client: client, size: 10}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current snapshot.
func (p *Pager) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Load fetches the given page and, if no newer Load has started since,
// replaces the pager state with the response. A superseded response is
// dropped and reported as ErrStaleResponse; a superseded failure is
// likewise dropped.
func (p *Pager) Load(ctx context.Context, page int) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.state.Loading = true
	p.mu.Unlock()

	resp, err := p.client.ListUsers(ctx, page, p.size)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		return ErrStaleResponse
	}
	p.state.Loading = false

	if err != nil {
		return err
	}

	p.state.Content = resp.Content
	p.state.Page = resp.Page
	p.state.TotalPages = resp.TotalPages
	return nil
}

// Next loads the page after the current one.
func (p *Pager) Next(ctx context.Context) error {
	return p.Load(ctx, p.State().Page+1)
}

// Prev loads the page before the current one.
func (p *Pager) Prev(ctx context.Context) error {
	return p.Load(ctx, p.State().Page-1)
}
