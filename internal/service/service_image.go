package service

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

// imageService is the concrete implementation of ImageService.
type imageService struct {
	imageRepository store.ImageRepository
	logger          *logger.Logger
}

// NewImageService constructs an ImageService wired to the given repository.
func NewImageService(imageRepository store.ImageRepository, logger *logger.Logger) ImageService {
	return &imageService{
		imageRepository: imageRepository,
		logger:          logger,
	}
}

// AttachImages persists a batch of images for one entry. Every image must
// carry a non-empty path; the repository stores the batch atomically.
func (s *imageService) AttachImages(ctx context.Context, images []models.CreateImageData, entryID, userID int64) error {
	log := logger.FromContext(ctx)

	if len(images) == 0 {
		log.Error().Int64("entry_id", entryID).Msg("no images provided")
		return ErrInvalidDataProvided
	}

	for _, image := range images {
		if image.Path == "" {
			log.Error().Int64("entry_id", entryID).Msg("image without path in batch")
			return ErrInvalidDataProvided
		}
	}

	if err := s.imageRepository.InsertImages(ctx, images, entryID, userID); err != nil {
		log.Err(err).Int64("entry_id", entryID).Msg("image batch insert ended with error")
		return fmt.Errorf("image batch insert ended with error: %w", err)
	}

	return nil
}

func (s *imageService) GetImage(ctx context.Context, imageID, userID int64) (models.Image, error) {
	return s.imageRepository.GetImage(ctx, imageID, userID)
}

func (s *imageService) DeleteImage(ctx context.Context, imageID, userID int64) (models.ExecResult, error) {
	return s.imageRepository.DeleteImage(ctx, imageID, userID)
}

func (s *imageService) UpdateImageComment(ctx context.Context, imageID, userID int64, comment string) (models.ExecResult, error) {
	return s.imageRepository.UpdateImageComment(ctx, imageID, userID, comment)
}
