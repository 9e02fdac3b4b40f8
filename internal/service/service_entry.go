package service

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

// entryService is the concrete implementation of EntryService. Validation
// lives here; everything touching SQL lives in the repository.
type entryService struct {
	entryRepository store.EntryRepository
	logger          *logger.Logger
}

// NewEntryService constructs an EntryService wired to the given repository.
func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		logger:          logger,
	}
}

// CreateEntry validates the payload and persists the entry together with
// its tags in one atomic repository call.
//
// Returns the insert result or:
//   - ErrInvalidEntryType if Type is not one of the four known kinds.
//   - ErrInvalidDataProvided if UserID is missing.
func (s *entryService) CreateEntry(ctx context.Context, data models.CreateEntryData, tagNames []string) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	if data.UserID == 0 {
		log.Error().Msg("entry creation without user id")
		return models.ExecResult{}, ErrInvalidDataProvided
	}
	if !data.Type.Valid() {
		log.Error().Str("type", string(data.Type)).Msg("unknown entry type")
		return models.ExecResult{}, ErrInvalidEntryType
	}

	res, err := s.entryRepository.CreateEntryWithTags(ctx, data, tagNames)
	if err != nil {
		log.Err(err).Int64("user_id", data.UserID).Msg("entry creation ended with error")
		return models.ExecResult{}, fmt.Errorf("entry creation ended with error: %w", err)
	}

	return res, nil
}

func (s *entryService) GetEntry(ctx context.Context, userID, entryID int64, loggedIn bool) (models.EntryDetails, error) {
	return s.entryRepository.GetEntry(ctx, userID, entryID, loggedIn)
}

// GetEntries validates the filter type and delegates the listing.
func (s *entryService) GetEntries(ctx context.Context, filter models.EntryFilter) ([]models.EntryDetails, error) {
	log := logger.FromContext(ctx)

	if !filter.Type.Valid() {
		log.Error().Str("type", string(filter.Type)).Msg("unknown entry type in listing filter")
		return nil, ErrInvalidEntryType
	}

	return s.entryRepository.GetEntries(ctx, filter)
}

func (s *entryService) UpdateEntry(ctx context.Context, data models.UpdateEntryData) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	if data.UserID == 0 || data.EntryID == 0 {
		log.Error().Msg("entry update without user id or entry id")
		return models.ExecResult{}, ErrInvalidDataProvided
	}

	return s.entryRepository.UpdateEntry(ctx, data)
}

func (s *entryService) DeleteEntry(ctx context.Context, entryID, userID int64) (models.ExecResult, error) {
	return s.entryRepository.DeleteEntry(ctx, entryID, userID)
}
