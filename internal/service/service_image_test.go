package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

type fakeImageRepo struct {
	inserted []models.CreateImageData
}

func (f *fakeImageRepo) InsertImages(_ context.Context, images []models.CreateImageData, _, _ int64) error {
	f.inserted = append(f.inserted, images...)
	return nil
}

func (f *fakeImageRepo) GetImage(context.Context, int64, int64) (models.Image, error) {
	return models.Image{}, nil
}

func (f *fakeImageRepo) DeleteImage(context.Context, int64, int64) (models.ExecResult, error) {
	return models.ExecResult{RowsAffected: 1}, nil
}

func (f *fakeImageRepo) UpdateImageComment(context.Context, int64, int64, string) (models.ExecResult, error) {
	return models.ExecResult{RowsAffected: 1}, nil
}

func TestAttachImages_Validation(t *testing.T) {
	repo := &fakeImageRepo{}
	svc := NewImageService(repo, logger.NewLogger("test"))
	ctx := context.Background()

	err := svc.AttachImages(ctx, nil, 1, 1)
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.AttachImages(ctx, []models.CreateImageData{{Path: "ok.jpg"}, {Path: ""}}, 1, 1)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Empty(t, repo.inserted, "an invalid batch must never reach the repository")

	err = svc.AttachImages(ctx, []models.CreateImageData{{Path: "ok.jpg"}}, 1, 1)
	require.NoError(t, err)
	assert.Len(t, repo.inserted, 1)
}
