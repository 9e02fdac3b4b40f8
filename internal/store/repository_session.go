package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. It manages rows of the "sessions" table and resolves
// bearer tokens to their owning user.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row. The creation timestamp is
// always server-assigned at insert time.
//
// Error handling:
//   - Unique-constraint violation on uuid → [ErrSessionAlreadyExists].
//     This propagates to the caller: a token collision must not be treated
//     as a successful login.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, createSession, session.UUID, session.UserID, session.UserAgent, session.IP)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Msg("error executing session insert")

		if isUniqueViolation(err) {
			return models.ExecResult{}, ErrSessionAlreadyExists
		}
		return models.ExecResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return execResult(res), nil
}

// DestroySession deletes the session matching uuid. Destroying a session
// that does not exist is a successful no-op: the result simply reports zero
// rows affected.
func (r *sessionRepository) DestroySession(ctx context.Context, uuid string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, destroySession, uuid)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.DestroySession").
			Msg("error executing session delete")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return execResult(res), nil
}

// GetSessionUser resolves a bearer token to the owning user's identity via
// a join of sessions and users.
//
// An unknown token yields [ErrSessionNotFound], which callers must treat as
// "unauthenticated" rather than as a server failure.
func (r *sessionRepository) GetSessionUser(ctx context.Context, uuid string) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	var sessionUser models.SessionUser
	row := r.db.QueryRowContext(ctx, getSessionUser, uuid)

	if err := row.Scan(&sessionUser.Username, &sessionUser.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionUser{}, ErrSessionNotFound
		}

		log.Err(err).
			Str("func", "*sessionRepository.GetSessionUser").
			Msg("error scanning session user row")
		return models.SessionUser{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sessionUser, nil
}
