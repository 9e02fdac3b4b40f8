// SPDX-License-Identifier: Apache-2.0

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// request metadata extraction and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// UsernameCtxKey is the key used to store the authenticated username in the
// context, alongside the user ID resolved from the session token.
var UsernameCtxKey = contextKey("username")

// LoggedInCtxKey is the key used to store the authentication state in the
// context. Public read paths consult it to decide whether private entries
// are visible; its absence means "anonymous".
var LoggedInCtxKey = contextKey("loggedIn")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUsernameFromContext retrieves the authenticated username from the
// context. The ok flag follows the same convention as GetUserIDFromContext.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// IsLoggedIn reports whether the context carries an authenticated session.
// A missing or mistyped value counts as anonymous.
func IsLoggedIn(ctx context.Context) bool {
	loggedIn, ok := ctx.Value(LoggedInCtxKey).(bool)
	return ok && loggedIn
}
