package store

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// tagRepository is the SQLite-backed implementation of [TagRepository].
// Creation and linking both use INSERT OR IGNORE, which makes every write
// here idempotent under the table's unique constraints.
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTag inserts a tag for the user unless one with the same name already
// exists. The duplicate case is a silent no-op reporting zero rows affected.
func (r *tagRepository) CreateTag(ctx context.Context, userID int64, name string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, createTag, userID, name)
	if err != nil {
		log.Err(err).
			Str("func", "*tagRepository.CreateTag").
			Int64("user_id", userID).
			Str("tag", name).
			Msg("error executing tag insert")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return execResult(res), nil
}

// GetTags lists every tag belonging to the user. A user without tags gets an
// empty slice, not nil.
func (r *tagRepository) GetTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getTags, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*tagRepository.GetTags").
			Int64("user_id", userID).
			Msg("error executing tag listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0, 16)

	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.TagID, &tag.UserID, &tag.Name, &tag.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "*tagRepository.GetTags").
				Int64("user_id", userID).
				Msg("error scanning tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*tagRepository.GetTags").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

// LinkEntryToTag associates an entry with a tag. Linking an already-linked
// pair is a silent no-op reporting zero rows affected.
func (r *tagRepository) LinkEntryToTag(ctx context.Context, entryID, tagID int64) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, linkEntryToTag, entryID, tagID)
	if err != nil {
		log.Err(err).
			Str("func", "*tagRepository.LinkEntryToTag").
			Int64("entry_id", entryID).
			Int64("tag_id", tagID).
			Msg("error executing entry to tag link insert")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return execResult(res), nil
}
