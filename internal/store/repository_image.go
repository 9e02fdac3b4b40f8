package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// imageRepository is the SQLite-backed implementation of [ImageRepository].
type imageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewImageRepository constructs an [ImageRepository] backed by the provided
// database connection and logger.
func NewImageRepository(db *DB, logger *logger.Logger) ImageRepository {
	logger.Debug().Msg("creating image repository")
	return &imageRepository{
		db:     db,
		logger: logger,
	}
}

// InsertImages persists a batch of image rows for one entry inside a single
// transaction: either every image in the batch is stored or none is. The
// statement is prepared once and executed per image.
func (r *imageRepository) InsertImages(ctx context.Context, images []models.CreateImageData, entryID, userID int64) error {
	log := logger.FromContext(ctx)

	if len(images) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*imageRepository.InsertImages").
			Int64("entry_id", entryID).
			Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertImage)
	if err != nil {
		log.Err(err).
			Str("func", "*imageRepository.InsertImages").
			Int64("entry_id", entryID).
			Msg("error preparing image insert statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, image := range images {
		if _, err := stmt.ExecContext(ctx, entryID, userID, image.Path, image.Comment, image.PreviewData, image.ExifData); err != nil {
			log.Err(err).
				Str("func", "*imageRepository.InsertImages").
				Int64("entry_id", entryID).
				Str("path", image.Path).
				Msg("error executing image insert, rolling back batch")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*imageRepository.InsertImages").
			Int64("entry_id", entryID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetImage retrieves a single image scoped by (userID, imageID). A foreign
// or missing image is [ErrImageNotFound] either way.
func (r *imageRepository) GetImage(ctx context.Context, imageID, userID int64) (models.Image, error) {
	log := logger.FromContext(ctx)

	var image models.Image
	row := r.db.QueryRowContext(ctx, getImage, userID, imageID)

	err := row.Scan(&image.ImageID, &image.EntryID, &image.UserID, &image.Path, &image.Comment, &image.PreviewData, &image.ExifData, &image.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Image{}, ErrImageNotFound
		}

		log.Err(err).
			Str("func", "*imageRepository.GetImage").
			Int64("image_id", imageID).
			Msg("error scanning image row")
		return models.Image{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return image, nil
}

// DeleteImage deletes the image scoped by (userID, imageID). A zero
// RowsAffected means not found or not owner.
func (r *imageRepository) DeleteImage(ctx context.Context, imageID, userID int64) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteImage, userID, imageID)
	if err != nil {
		log.Err(err).
			Str("func", "*imageRepository.DeleteImage").
			Int64("image_id", imageID).
			Msg("error executing image delete")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return execResult(res), nil
}

// UpdateImageComment replaces the comment of the image scoped by
// (userID, imageID).
func (r *imageRepository) UpdateImageComment(ctx context.Context, imageID, userID int64, comment string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateImageComment, comment, userID, imageID)
	if err != nil {
		log.Err(err).
			Str("func", "*imageRepository.UpdateImageComment").
			Int64("image_id", imageID).
			Msg("error executing image comment update")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return execResult(res), nil
}
