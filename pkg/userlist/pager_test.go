package userlist_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovativeGem/userkit/pkg/apiclient"
	"github.com/innovativeGem/userkit/pkg/userlist"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

// scriptedLister returns queued responses, optionally blocking until
// released so tests can interleave overlapping loads.
type scriptedLister struct {
	mu      sync.Mutex
	pages   map[int]apiclient.UserPage
	err     error
	release chan struct{}
	calls   []int
}

func (s *scriptedLister) ListUsers(ctx context.Context, page, size int) (apiclient.UserPage, error) {
	s.mu.Lock()
	s.calls = append(s.calls, page)
	release := s.release
	s.mu.Unlock()

	if release != nil {
		<-release
	}
	if s.err != nil {
		return apiclient.UserPage{}, s.err
	}
	return s.pages[page], nil
}

func threePages() map[int]apiclient.UserPage {
	return map[int]apiclient.UserPage{
		0: {Content: []apiclient.User{{ID: 1, Username: "user1"}}, Page: 0, Size: 1, TotalPages: 3},
		1: {Content: []apiclient.User{{ID: 2, Username: "user2"}}, Page: 1, Size: 1, TotalPages: 3},
		2: {Content: []apiclient.User{{ID: 3, Username: "user3"}}, Page: 2, Size: 1, TotalPages: 3},
	}
}

func TestPager_LoadFirstPage(t *testing.T) {
	t.Parallel()

	pager := userlist.NewPager(&scriptedLister{pages: threePages()})
	require.NoError(t, pager.Load(context.Background(), 0))

	state := pager.State()
	assert.Equal(t, 0, state.Page)
	assert.Equal(t, 3, state.TotalPages)
	require.Len(t, state.Content, 1)
	assert.Equal(t, "user1", state.Content[0].Username)
	assert.False(t, state.Loading)
	assert.True(t, state.HasNext())
	assert.False(t, state.HasPrev())
}

func TestPager_NextPrev(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{pages: threePages()}
	pager := userlist.NewPager(lister)
	ctx := context.Background()

	require.NoError(t, pager.Load(ctx, 0))
	require.NoError(t, pager.Next(ctx))
	assert.Equal(t, 1, pager.State().Page)
	assert.True(t, pager.State().HasPrev())

	require.NoError(t, pager.Next(ctx))
	assert.Equal(t, 2, pager.State().Page)
	assert.False(t, pager.State().HasNext())

	require.NoError(t, pager.Prev(ctx))
	assert.Equal(t, 1, pager.State().Page)
	assert.Equal(t, []int{0, 1, 2, 1}, lister.calls)
}

func TestPager_StaleResponseDropped(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{pages: threePages(), release: make(chan struct{})}
	pager := userlist.NewPager(lister)
	ctx := context.Background()

	// First load blocks inside the client.
	firstDone := make(chan error, 1)
	go func() { firstDone <- pager.Load(ctx, 0) }()

	// Wait until the first request is in flight, then let a second load win.
	require.Eventually(t, func() bool {
		lister.mu.Lock()
		defer lister.mu.Unlock()
		return len(lister.calls) == 1
	}, testWait, testTick)

	firstRelease := lister.release
	lister.mu.Lock()
	lister.release = nil
	lister.mu.Unlock()
	require.NoError(t, pager.Load(ctx, 2))

	// Release the first request; its late response must be dropped.
	close(firstRelease)
	assert.ErrorIs(t, <-firstDone, userlist.ErrStaleResponse)

	state := pager.State()
	assert.Equal(t, 2, state.Page, "late response must not overwrite fresher state")
	assert.Equal(t, "user3", state.Content[0].Username)
}

func TestPager_ErrorKeepsPreviousContent(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{pages: threePages()}
	pager := userlist.NewPager(lister)
	ctx := context.Background()

	require.NoError(t, pager.Load(ctx, 0))

	lister.err = context.DeadlineExceeded
	err := pager.Load(ctx, 1)
	require.Error(t, err)

	state := pager.State()
	assert.Equal(t, 0, state.Page, "failed load leaves the previous page visible")
	assert.False(t, state.Loading)
}

func TestPager_LoadingFlag(t *testing.T) {
	t.Parallel()

	lister := &scriptedLister{pages: threePages(), release: make(chan struct{})}
	pager := userlist.NewPager(lister)

	done := make(chan error, 1)
	go func() { done <- pager.Load(context.Background(), 0) }()

	require.Eventually(t, func() bool {
		return pager.State().Loading
	}, testWait, testTick)

	close(lister.release)
	require.NoError(t, <-done)
	assert.False(t, pager.State().Loading)
}
