package models

import "time"

// Session is a server-side session record. The UUID column is the opaque
// bearer token handed to the browser; it maps back to the owning user on
// every authenticated request. Sessions carry no expiry at this layer;
// they live until explicitly destroyed on logout or revocation.
type Session struct {
	// SessionID is the internal unique identifier of the session row.
	SessionID int64 `json:"-"`

	// UUID is the opaque bearer token. Unique across all sessions.
	UUID string `json:"-"`

	// UserID is the identifier of the user owning this session.
	UserID int64 `json:"user_id"`

	// UserAgent is the User-Agent header captured at login time.
	UserAgent string `json:"user_agent"`

	// IP is the remote address captured at login time.
	IP string `json:"ip"`

	// CreatedAt is the timestamp when the session was created.
	CreatedAt time.Time `json:"created_at"`
}

// SessionUser is the result of resolving a bearer token: the owning user's
// identity, joined from the sessions and users tables. An absent result
// means "unauthenticated", which callers must not treat as a server error.
type SessionUser struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
