package session

// StorageKey is the key the session record is persisted under.
const StorageKey = "auth"

// SchemaVersion tags the persisted record shape. A stored record carrying a
// higher version than this build understands is treated as absent rather
// than loaded with unknown semantics.
const SchemaVersion = 1

// Record is the flat session state. The zero value is the logged-out state.
// Record is mutated only through Reduce, never by direct field assignment
// from callers.
type Record struct {
	Version    int    `json:"v,omitempty"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	ID         int64  `json:"id,omitempty"`
	Username   string `json:"username,omitempty"`
	Header     string `json:"header,omitempty"`
	Image      string `json:"image,omitempty"`
}

// LoggedOut returns the default logged-out record.
func LoggedOut() Record {
	return Record{Version: SchemaVersion}
}

// Authenticated reports whether the record represents a usable logged-in
// session: the flag is set and both the identity and the header are present.
func (r Record) Authenticated() bool {
	return r.IsLoggedIn && r.ID != 0 && r.Header != ""
}
