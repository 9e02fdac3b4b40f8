package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against stored bcrypt hashes and manages
// server-side session records; the bearer token handed to clients is a
// random uuid, carrying no claims of its own.
type authService struct {
	// userRepository resolves usernames to stored credentials.
	userRepository store.UserRepository

	// sessionRepository persists and resolves session tokens.
	sessionRepository store.SessionRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

// Login authenticates a user and opens a session.
//
// It validates that both Username and Password are non-empty, looks the
// account up, compares the supplied password against the stored bcrypt
// hash, and persists a new session row whose uuid becomes the bearer
// token.
//
// Returns the created session or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrWrongPassword if the account does not exist or the password does
//     not match. The two cases are deliberately indistinguishable.
func (a *authService) Login(ctx context.Context, credentials models.Credentials, userAgent, ip string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// unknown account answers exactly like a wrong password
			return models.Session{}, ErrWrongPassword
		}

		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.Session{}, ErrWrongPassword
	}

	session := models.Session{
		UUID:      uuid.NewString(),
		UserID:    foundUser.UserID,
		UserAgent: userAgent,
		IP:        ip,
	}

	if _, err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// Logout destroys the session matching token. Logging out with an unknown
// token succeeds: the session is equally gone either way.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := a.sessionRepository.DestroySession(ctx, token); err != nil {
		log.Err(err).Msg("session destruction ended with error")
		return fmt.Errorf("session destruction ended with error: %w", err)
	}

	return nil
}

// Authenticate resolves a bearer token to the owning user's identity.
// An unknown token surfaces as [store.ErrSessionNotFound]; callers treat
// that as "anonymous", not as a failure.
func (a *authService) Authenticate(ctx context.Context, token string) (models.SessionUser, error) {
	if token == "" {
		return models.SessionUser{}, store.ErrSessionNotFound
	}

	return a.sessionRepository.GetSessionUser(ctx, token)
}
