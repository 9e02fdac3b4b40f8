package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// entryRepository is the SQLite-backed implementation of [EntryRepository].
//
// Every read is structurally scoped: the owning user id and the visibility
// predicate are part of the WHERE clause, so there is no separate
// authorization check that could be bypassed or leak information. A miss
// always surfaces as [ErrEntryNotFound], whatever its actual cause.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry inserts a single entry row. created_at and updated_at are
// always server-assigned; a non-zero ManualDate is normalized to the fixed
// textual format before storage, a zero one is stored as NULL.
func (r *entryRepository) CreateEntry(ctx context.Context, data models.CreateEntryData) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, createEntry,
		data.UserID,
		string(data.Type),
		data.Title,
		data.Content,
		data.Comment,
		data.Private,
		data.Pinned,
		manualDateValue(data.ManualDate),
	)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntry").
			Int64("user_id", data.UserID).
			Str("type", string(data.Type)).
			Msg("failed to execute entry insert")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return execResult(res), nil
}

// CreateEntryWithTags inserts an entry together with its tag associations
// as one atomic unit: the entry insert, the idempotent creation of each
// named tag, and the idempotent linking of every tag to the new entry all
// run inside a single transaction. A failure at any point rolls back the
// whole sequence, so a half-tagged entry can never be observed.
//
// Empty tag names are skipped. Returns the insert result of the entry row.
func (r *entryRepository) CreateEntryWithTags(ctx context.Context, data models.CreateEntryData, tagNames []string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntryWithTags").
			Int64("user_id", data.UserID).
			Msg("error during opening transaction")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, createEntry,
		data.UserID,
		string(data.Type),
		data.Title,
		data.Content,
		data.Comment,
		data.Private,
		data.Pinned,
		manualDateValue(data.ManualDate),
	)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntryWithTags").
			Int64("user_id", data.UserID).
			Msg("failed to execute entry insert")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	entryID, err := res.LastInsertId()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, name := range tagNames {
		if name == "" {
			continue
		}

		if _, err := tx.ExecContext(ctx, createTag, data.UserID, name); err != nil {
			log.Err(err).
				Str("func", "*entryRepository.CreateEntryWithTags").
				Int64("user_id", data.UserID).
				Str("tag", name).
				Msg("failed to create tag")
			return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		var tag models.Tag
		row := tx.QueryRowContext(ctx, findTagByName, data.UserID, name)
		if err := row.Scan(&tag.TagID, &tag.UserID, &tag.Name, &tag.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "*entryRepository.CreateEntryWithTags").
				Int64("user_id", data.UserID).
				Str("tag", name).
				Msg("failed to resolve tag id")
			return models.ExecResult{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if _, err := tx.ExecContext(ctx, linkEntryToTag, entryID, tag.TagID); err != nil {
			log.Err(err).
				Str("func", "*entryRepository.CreateEntryWithTags").
				Int64("entry_id", entryID).
				Int64("tag_id", tag.TagID).
				Msg("failed to link entry to tag")
			return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntryWithTags").
			Int64("user_id", data.UserID).
			Msg("failed to commit transaction")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return execResult(res), nil
}

// GetEntry retrieves a single entry scoped by (userID, entryID) and, for
// anonymous callers, by private = 0. On a hit the entry is returned with
// its full current tag and image lists attached.
//
// A miss is always [ErrEntryNotFound]; the caller cannot tell a missing
// entry from a foreign or private one.
func (r *entryRepository) GetEntry(ctx context.Context, userID, entryID int64, loggedIn bool) (models.EntryDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(userID, entryID, loggedIn)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.GetEntry").
			Int64("user_id", userID).
			Msg("failed to build query")
		return models.EntryDetails{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EntryDetails{}, ErrEntryNotFound
		}

		log.Err(err).
			Str("func", "*entryRepository.GetEntry").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to scan entry row")
		return models.EntryDetails{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return r.attachAssociations(ctx, entry)
}

// GetEntries retrieves the filtered, ordered and paginated listing
// described by filter. Each returned row is enriched with its tag and
// image lists exactly as in GetEntry. An empty result set is not an error.
func (r *entryRepository) GetEntries(ctx context.Context, filter models.EntryFilter) ([]models.EntryDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntriesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.GetEntries").
			Int64("user_id", filter.UserID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.GetEntries").
			Int64("user_id", filter.UserID).
			Str("type", string(filter.Type)).
			Msg("failed to execute entry listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, 50)

	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*entryRepository.GetEntries").
				Int64("user_id", filter.UserID).
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*entryRepository.GetEntries").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	// enrichment happens after iteration so the listing result set is not
	// held open across the per-entry association queries
	results := make([]models.EntryDetails, 0, len(entries))
	for _, entry := range entries {
		details, attachErr := r.attachAssociations(ctx, entry)
		if attachErr != nil {
			return nil, attachErr
		}

		results = append(results, details)
	}

	return results, nil
}

// UpdateEntry updates the row matching (UserID, EntryID) and bumps
// updated_at. A zero RowsAffected in the result means "not found or not
// owner"; surfacing that as an error is the caller's decision.
func (r *entryRepository) UpdateEntry(ctx context.Context, data models.UpdateEntryData) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateEntry,
		data.Title,
		data.Content,
		data.Comment,
		data.Private,
		data.Pinned,
		manualDateValue(data.ManualDate),
		data.UserID,
		data.EntryID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.UpdateEntry").
			Int64("user_id", data.UserID).
			Int64("entry_id", data.EntryID).
			Msg("failed to execute entry update")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return execResult(res), nil
}

// DeleteEntry removes the entry scoped by (entryID, userID) together with
// its entry_to_tag links and image rows, all inside one transaction. The
// child deletes are scoped through an ownership subquery, so a non-owner
// cannot strip another user's associations either.
//
// Deleting a non-existent or foreign entry is a successful no-op with zero
// rows affected.
func (r *entryRepository) DeleteEntry(ctx context.Context, entryID, userID int64) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Int64("user_id", userID).
			Msg("error during opening transaction")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteEntryLinks, entryID, userID); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Int64("entry_id", entryID).
			Msg("failed to delete entry tag links")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, deleteEntryImages, entryID, userID); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Int64("entry_id", entryID).
			Msg("failed to delete entry images")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	res, err := tx.ExecContext(ctx, deleteEntry, entryID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Int64("entry_id", entryID).
			Msg("failed to delete entry")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Int64("entry_id", entryID).
			Msg("failed to commit transaction")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return execResult(res), nil
}

// attachAssociations builds the enriched [models.EntryDetails] for a bare
// entry row: the full current tag list and image list, fetched fresh on
// every call. The slices are allocated empty so a bare entry still carries
// arrays, not nulls.
func (r *entryRepository) attachAssociations(ctx context.Context, entry models.Entry) (models.EntryDetails, error) {
	log := logger.FromContext(ctx)

	details := models.EntryDetails{
		Entry:  entry,
		Tags:   make([]models.Tag, 0, 4),
		Images: make([]models.Image, 0, 4),
	}

	tagRows, err := r.db.QueryContext(ctx, getTagsForEntry, entry.EntryID)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.attachAssociations").
			Int64("entry_id", entry.EntryID).
			Msg("failed to query entry tags")
		return models.EntryDetails{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var tag models.Tag
		if err := tagRows.Scan(&tag.TagID, &tag.UserID, &tag.Name, &tag.CreatedAt); err != nil {
			return models.EntryDetails{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		details.Tags = append(details.Tags, tag)
	}
	if err := tagRows.Err(); err != nil {
		return models.EntryDetails{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	imageRows, err := r.db.QueryContext(ctx, getImagesForEntry, entry.EntryID)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.attachAssociations").
			Int64("entry_id", entry.EntryID).
			Msg("failed to query entry images")
		return models.EntryDetails{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer imageRows.Close()

	for imageRows.Next() {
		var image models.Image
		if err := imageRows.Scan(&image.ImageID, &image.EntryID, &image.UserID, &image.Path, &image.Comment, &image.PreviewData, &image.ExifData, &image.CreatedAt); err != nil {
			return models.EntryDetails{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		details.Images = append(details.Images, image)
	}
	if err := imageRows.Err(); err != nil {
		return models.EntryDetails{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return details, nil
}

// rowScanner is the subset of sql.Row / sql.Rows used by scanEntry.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry reads one row in entryColumns order into a [models.Entry],
// translating the nullable manual_date column into an empty string.
func scanEntry(row rowScanner) (models.Entry, error) {
	var entry models.Entry
	var manualDate sql.NullString

	err := row.Scan(
		&entry.EntryID,
		&entry.UserID,
		&entry.Type,
		&entry.Title,
		&entry.Content,
		&entry.Comment,
		&entry.Private,
		&entry.Pinned,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&manualDate,
	)
	if err != nil {
		return models.Entry{}, err
	}

	if manualDate.Valid {
		entry.ManualDate = manualDate.String
	}

	return entry, nil
}

// manualDateValue converts an optional manual date into its stored form:
// NULL for the zero time, the fixed textual format otherwise.
func manualDateValue(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}

	return sql.NullString{String: t.Format(manualDateFormat), Valid: true}
}
