package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

type fakeEntryRepo struct {
	createdWithTags []string
	lastData        models.CreateEntryData
}

func (f *fakeEntryRepo) CreateEntry(_ context.Context, data models.CreateEntryData) (models.ExecResult, error) {
	f.lastData = data
	return models.ExecResult{LastInsertID: 1, RowsAffected: 1}, nil
}

func (f *fakeEntryRepo) CreateEntryWithTags(_ context.Context, data models.CreateEntryData, tagNames []string) (models.ExecResult, error) {
	f.lastData = data
	f.createdWithTags = tagNames
	return models.ExecResult{LastInsertID: 1, RowsAffected: 1}, nil
}

func (f *fakeEntryRepo) GetEntry(context.Context, int64, int64, bool) (models.EntryDetails, error) {
	return models.EntryDetails{}, nil
}

func (f *fakeEntryRepo) GetEntries(context.Context, models.EntryFilter) ([]models.EntryDetails, error) {
	return []models.EntryDetails{}, nil
}

func (f *fakeEntryRepo) UpdateEntry(context.Context, models.UpdateEntryData) (models.ExecResult, error) {
	return models.ExecResult{RowsAffected: 1}, nil
}

func (f *fakeEntryRepo) DeleteEntry(context.Context, int64, int64) (models.ExecResult, error) {
	return models.ExecResult{RowsAffected: 1}, nil
}

func newTestEntryService() (EntryService, *fakeEntryRepo) {
	repo := &fakeEntryRepo{}
	return NewEntryService(repo, logger.NewLogger("test")), repo
}

func TestCreateEntry_DelegatesWithTags(t *testing.T) {
	svc, repo := newTestEntryService()

	res, err := svc.CreateEntry(context.Background(), models.CreateEntryData{
		UserID: 1,
		Type:   models.EntryTypeNote,
		Title:  "hello",
	}, []string{"travel"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.LastInsertID)
	assert.Equal(t, []string{"travel"}, repo.createdWithTags)
}

func TestCreateEntry_RejectsUnknownType(t *testing.T) {
	svc, _ := newTestEntryService()

	_, err := svc.CreateEntry(context.Background(), models.CreateEntryData{
		UserID: 1,
		Type:   "diary",
	}, nil)
	require.ErrorIs(t, err, ErrInvalidEntryType)
}

func TestCreateEntry_RejectsMissingUserID(t *testing.T) {
	svc, _ := newTestEntryService()

	_, err := svc.CreateEntry(context.Background(), models.CreateEntryData{Type: models.EntryTypeNote}, nil)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetEntries_RejectsUnknownType(t *testing.T) {
	svc, _ := newTestEntryService()

	_, err := svc.GetEntries(context.Background(), models.EntryFilter{UserID: 1, Type: "diary"})
	require.ErrorIs(t, err, ErrInvalidEntryType)
}

func TestUpdateEntry_RejectsMissingIDs(t *testing.T) {
	svc, _ := newTestEntryService()

	_, err := svc.UpdateEntry(context.Background(), models.UpdateEntryData{UserID: 1})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UpdateEntry(context.Background(), models.UpdateEntryData{EntryID: 1})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
