package models

import "time"

// User represents an account entity used for authentication.
// Accounts are created out-of-band (there is no self-registration flow);
// the persistence layer only ever looks accounts up by username.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// PasswordHash is the stored bcrypt hash of the user's password.
	// It is never exposed via JSON; comparison against a supplied password
	// happens in the auth service, not in the repository.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login request payload. The password travels in plain
// text inside the request body and is compared against the stored bcrypt
// hash; it is never persisted or logged.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
