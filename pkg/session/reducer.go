package session

// Reduce maps the current record and an action to the next record. It is a
// pure, total function: no I/O, deterministic, and it never faults. A nil or
// unrecognized action returns the current record unchanged, as do
// UserUpdateSuccess and LogoutSuccess while logged out.
func Reduce(current Record, action Action) Record {
	switch a := action.(type) {
	case LoginSuccess:
		return Record{
			Version:    SchemaVersion,
			IsLoggedIn: true,
			ID:         a.ID,
			Username:   a.Username,
			Header:     a.Header,
			Image:      a.Image,
		}
	case UserUpdateSuccess:
		if !current.IsLoggedIn {
			return current
		}
		next := current
		next.Username = a.Username
		return next
	case LogoutSuccess:
		if !current.IsLoggedIn {
			return current
		}
		return LoggedOut()
	default:
		return current
	}
}
