package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionAlreadyExists is returned when a session insert fails because
	// the generated bearer token collides with an existing session's uuid.
	ErrSessionAlreadyExists = errors.New("session already exists")

	// ErrSessionNotFound is returned when a bearer token does not resolve to
	// any session. Callers must treat it as "unauthenticated", not as a
	// server failure.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrUserNotFound is returned when a username lookup produces an empty
	// result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEntryNotFound is returned when an entry lookup matches no row. The
	// same value covers "does not exist", "owned by a different user" and
	// "private and the caller is anonymous": the store never reveals which.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrImageNotFound is returned when an image lookup scoped by
	// (user_id, id) matches no row.
	ErrImageNotFound = errors.New("image was not found")

	// ErrInvalidOrderColumn is returned when a listing requests ordering by
	// a column outside the allow-list.
	ErrInvalidOrderColumn = errors.New("invalid order column")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an invalid ordering column).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
