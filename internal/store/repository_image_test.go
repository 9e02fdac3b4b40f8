package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/models"
)

func TestInsertImages_EmptyBatchIsNoop(t *testing.T) {
	repos, db := newTestRepositories(t)

	aliceID := seedUser(t, db, "alice")
	entryID := mustCreateEntry(t, repos.Entries, models.CreateEntryData{UserID: aliceID, Type: models.EntryTypeNote, Title: "no images"})

	err := repos.Images.InsertImages(context.Background(), nil, entryID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, 0, countRows(t, db, "images"))
}

func TestInsertImages_GetImage_RoundTrip(t *testing.T) {
	repos, db := newTestRepositories(t)
	ctx := context.Background()

	aliceID := seedUser(t, db, "alice")
	entryID := mustCreateEntry(t, repos.Entries, models.CreateEntryData{UserID: aliceID, Type: models.EntryTypeEvent, Title: "trip"})

	err := repos.Images.InsertImages(ctx, []models.CreateImageData{
		{Path: "2024/07/one.jpg", Comment: "first", PreviewData: []byte{0xff, 0xd8}, ExifData: []byte(`{"Model":"X100"}`)},
		{Path: "2024/07/two.jpg"},
	}, entryID, aliceID)
	require.NoError(t, err)
	require.Equal(t, 2, countRows(t, db, "images"))

	details, err := repos.Entries.GetEntry(ctx, aliceID, entryID, true)
	require.NoError(t, err)
	require.Len(t, details.Images, 2)

	image, err := repos.Images.GetImage(ctx, details.Images[0].ImageID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, entryID, image.EntryID)
	assert.Equal(t, aliceID, image.UserID)
	assert.Equal(t, "2024/07/one.jpg", image.Path)
	assert.Equal(t, "first", image.Comment)
	assert.Equal(t, []byte{0xff, 0xd8}, image.PreviewData)
	assert.Equal(t, []byte(`{"Model":"X100"}`), image.ExifData)
	assert.False(t, image.CreatedAt.IsZero())
}

func TestInsertImages_BatchIsAtomic(t *testing.T) {
	repos, db := newTestRepositories(t)
	ctx := context.Background()

	aliceID := seedUser(t, db, "alice")
	entryID := mustCreateEntry(t, repos.Entries, models.CreateEntryData{UserID: aliceID, Type: models.EntryTypeEvent, Title: "trip"})

	// the second image violates the non-empty path constraint; the whole
	// batch must roll back, including the first image
	err := repos.Images.InsertImages(ctx, []models.CreateImageData{
		{Path: "2024/07/ok.jpg"},
		{Path: ""},
	}, entryID, aliceID)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrExecutingStatement)

	assert.Equal(t, 0, countRows(t, db, "images"), "a failed batch must leave no image rows behind")
}

func TestGetImage_ForeignUserInvisible(t *testing.T) {
	repos, db := newTestRepositories(t)
	ctx := context.Background()

	aliceID := seedUser(t, db, "alice")
	bobID := seedUser(t, db, "bob")
	entryID := mustCreateEntry(t, repos.Entries, models.CreateEntryData{UserID: aliceID, Type: models.EntryTypeNote, Title: "with image"})

	err := repos.Images.InsertImages(ctx, []models.CreateImageData{{Path: "2024/08/p.jpg"}}, entryID, aliceID)
	require.NoError(t, err)

	details, err := repos.Entries.GetEntry(ctx, aliceID, entryID, true)
	require.NoError(t, err)
	imageID := details.Images[0].ImageID

	_, err = repos.Images.GetImage(ctx, imageID, bobID)
	require.ErrorIs(t, err, ErrImageNotFound)

	_, err = repos.Images.GetImage(ctx, 9999, aliceID)
	require.ErrorIs(t, err, ErrImageNotFound)
}

func TestDeleteImage_ScopedByOwner(t *testing.T) {
	repos, db := newTestRepositories(t)
	ctx := context.Background()

	aliceID := seedUser(t, db, "alice")
	bobID := seedUser(t, db, "bob")
	entryID := mustCreateEntry(t, repos.Entries, models.CreateEntryData{UserID: aliceID, Type: models.EntryTypeNote, Title: "with image"})

	err := repos.Images.InsertImages(ctx, []models.CreateImageData{{Path: "2024/08/p.jpg"}}, entryID, aliceID)
	require.NoError(t, err)

	details, err := repos.Entries.GetEntry(ctx, aliceID, entryID, true)
	require.NoError(t, err)
	imageID := details.Images[0].ImageID

	res, err := repos.Images.DeleteImage(ctx, imageID, bobID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.RowsAffected)

	res, err = repos.Images.DeleteImage(ctx, imageID, aliceID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.RowsAffected)
	assert.Equal(t, 0, countRows(t, db, "images"))
}

func TestUpdateImageComment(t *testing.T) {
	repos, db := newTestRepositories(t)
	ctx := context.Background()

	aliceID := seedUser(t, db, "alice")
	bobID := seedUser(t, db, "bob")
	entryID := mustCreateEntry(t, repos.Entries, models.CreateEntryData{UserID: aliceID, Type: models.EntryTypeNote, Title: "with image"})

	err := repos.Images.InsertImages(ctx, []models.CreateImageData{{Path: "2024/08/p.jpg", Comment: "old"}}, entryID, aliceID)
	require.NoError(t, err)

	details, err := repos.Entries.GetEntry(ctx, aliceID, entryID, true)
	require.NoError(t, err)
	imageID := details.Images[0].ImageID

	res, err := repos.Images.UpdateImageComment(ctx, imageID, bobID, "hijacked")
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.RowsAffected)

	res, err = repos.Images.UpdateImageComment(ctx, imageID, aliceID, "new")
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.RowsAffected)

	image, err := repos.Images.GetImage(ctx, imageID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, "new", image.Comment)
}
