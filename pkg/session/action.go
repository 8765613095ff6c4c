package session

// Action describes a session state transition. Actions carry only
// already-confirmed outcomes: the network call that produced them has
// succeeded before the action exists.
//
// The interface is sealed; the three implementations below are the complete
// set of transitions.
type Action interface {
	isAction()
}

// LoginSuccess replaces the session with a fresh logged-in record. It is
// also valid while already logged in (re-login), in which case all fields
// are overwritten.
type LoginSuccess struct {
	ID       int64
	Username string
	Header   string
	Image    string
}

// UserUpdateSuccess replaces the display name after a confirmed profile
// edit. Identity fields and the authorization header are untouched.
type UserUpdateSuccess struct {
	Username string
}

// LogoutSuccess resets the session to the logged-out default.
type LogoutSuccess struct{}

func (LoginSuccess) isAction()      {}
func (UserUpdateSuccess) isAction() {}
func (LogoutSuccess) isAction()     {}
