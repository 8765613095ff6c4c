package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innovativeGem/userkit/pkg/session"
)

func TestReduce_LoginFromLoggedOut(t *testing.T) {
	t.Parallel()

	next := session.Reduce(session.LoggedOut(), session.LoginSuccess{
		ID:       5,
		Username: "user5",
		Header:   "Bearer abc",
	})

	assert.True(t, next.IsLoggedIn)
	assert.EqualValues(t, 5, next.ID)
	assert.Equal(t, "user5", next.Username)
	assert.Equal(t, "Bearer abc", next.Header)
	assert.True(t, next.Authenticated())
}

func TestReduce_ReLoginOverwritesAllFields(t *testing.T) {
	t.Parallel()

	current := session.Record{
		Version:    session.SchemaVersion,
		IsLoggedIn: true,
		ID:         5,
		Username:   "user5",
		Header:     "Bearer old",
		Image:      "old.png",
	}

	next := session.Reduce(current, session.LoginSuccess{
		ID:       9,
		Username: "user9",
		Header:   "Bearer new",
	})

	assert.True(t, next.IsLoggedIn)
	assert.EqualValues(t, 9, next.ID)
	assert.Equal(t, "user9", next.Username)
	assert.Equal(t, "Bearer new", next.Header)
	assert.Empty(t, next.Image, "stale fields from the previous login must not survive")
}

func TestReduce_UpdatePreservesIdentityFields(t *testing.T) {
	t.Parallel()

	current := session.Record{
		Version:    session.SchemaVersion,
		IsLoggedIn: true,
		ID:         5,
		Username:   "old",
		Header:     "H",
	}

	next := session.Reduce(current, session.UserUpdateSuccess{Username: "new"})

	assert.Equal(t, session.Record{
		Version:    session.SchemaVersion,
		IsLoggedIn: true,
		ID:         5,
		Username:   "new",
		Header:     "H",
	}, next)
}

func TestReduce_LogoutResetsFully(t *testing.T) {
	t.Parallel()

	current := session.Record{
		Version:    session.SchemaVersion,
		IsLoggedIn: true,
		ID:         5,
		Username:   "user5",
		Header:     "Bearer abc",
		Image:      "avatar.png",
	}

	next := session.Reduce(current, session.LogoutSuccess{})

	assert.Equal(t, session.LoggedOut(), next)
	assert.False(t, next.IsLoggedIn)
	assert.Zero(t, next.ID)
	assert.Empty(t, next.Username)
	assert.Empty(t, next.Header)
}

func TestReduce_NoOpsWhileLoggedOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action session.Action
	}{
		{name: "user update", action: session.UserUpdateSuccess{Username: "x"}},
		{name: "logout", action: session.LogoutSuccess{}},
		{name: "nil action", action: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			current := session.LoggedOut()
			next := session.Reduce(current, tt.action)
			assert.Equal(t, current, next)
		})
	}
}

func TestReduce_TotalOverArbitraryState(t *testing.T) {
	t.Parallel()

	// A malformed current record (flag set, fields missing) must not fault
	// for any action kind.
	weird := session.Record{IsLoggedIn: true}

	assert.NotPanics(t, func() {
		_ = session.Reduce(weird, session.LoginSuccess{ID: 1, Username: "u", Header: "H"})
		_ = session.Reduce(weird, session.UserUpdateSuccess{Username: "u"})
		_ = session.Reduce(weird, session.LogoutSuccess{})
		_ = session.Reduce(weird, nil)
	})
}

func TestReduce_Deterministic(t *testing.T) {
	t.Parallel()

	current := session.LoggedOut()
	action := session.LoginSuccess{ID: 5, Username: "user5", Header: "Bearer abc"}

	first := session.Reduce(current, action)
	second := session.Reduce(current, action)

	assert.Equal(t, first, second)
	assert.Equal(t, session.LoggedOut(), current, "input state must not be mutated")
}
