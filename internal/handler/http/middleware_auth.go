// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, request logging and panic recovery are
// all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/utils"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "session"

// sessionToken extracts the session token from the request cookie.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] — if the cookie is absent entirely.
//   - [ErrEmptySessionToken] — if the cookie exists but its value is empty.
func sessionToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}

	if cookie.Value == "" {
		return "", ErrEmptySessionToken
	}

	return cookie.Value, nil
}

// requireAuth is an HTTP middleware that enforces session authentication.
//
// It extracts the session cookie, resolves it via
// [service.AuthService.Authenticate], and on success stores the user's
// identity in the request context under [utils.UserIDCtxKey],
// [utils.UsernameCtxKey] and [utils.LoggedInCtxKey] before delegating to
// the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// cookie is absent, empty, or does not resolve to a session.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := sessionToken(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		sessionUser, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrSessionNotFound):
				log.Err(err).Msg("unknown session token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during session resolution")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		ctx = withIdentity(ctx, sessionUser.UserID, sessionUser.Username, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth is the public-route counterpart of requireAuth. A resolvable
// session annotates the context exactly like requireAuth does; anything
// else degrades to the anonymous identity: the configured site owner's user
// id with loggedIn = false, so public reads serve the owner's non-private
// entries.
//
// Only a backend failure during session resolution is an error; a missing
// or unknown token is the normal anonymous case.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		token, err := sessionToken(r)
		if err == nil {
			sessionUser, authErr := h.services.AuthService.Authenticate(ctx, token)
			switch {
			case authErr == nil:
				ctx = withIdentity(ctx, sessionUser.UserID, sessionUser.Username, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			case !errors.Is(authErr, store.ErrSessionNotFound):
				log.Err(authErr).Msg("error occurred during session resolution")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		ctx = withIdentity(ctx, h.cfg.OwnerID, "", false)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withIdentity stores the resolved request identity in the context so that
// downstream handlers can retrieve it without re-resolving the token.
func withIdentity(ctx context.Context, userID int64, username string, loggedIn bool) context.Context {
	ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
	if username != "" {
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, username)
	}
	return context.WithValue(ctx, utils.LoggedInCtxKey, loggedIn)
}
