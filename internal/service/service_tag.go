package service

import (
	"context"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

// tagService is the concrete implementation of TagService.
type tagService struct {
	tagRepository store.TagRepository
	logger        *logger.Logger
}

// NewTagService constructs a TagService wired to the given repository.
func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		logger:        logger,
	}
}

// CreateTag validates the name and delegates. A duplicate name is a silent
// no-op at the repository level.
func (s *tagService) CreateTag(ctx context.Context, userID int64, name string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Int64("user_id", userID).Msg("tag creation with empty name")
		return models.ExecResult{}, ErrInvalidDataProvided
	}

	return s.tagRepository.CreateTag(ctx, userID, name)
}

func (s *tagService) GetTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	return s.tagRepository.GetTags(ctx, userID)
}

func (s *tagService) LinkEntryToTag(ctx context.Context, entryID, tagID int64) (models.ExecResult, error) {
	return s.tagRepository.LinkEntryToTag(ctx, entryID, tagID)
}
