package service

import (
	"context"

	"github.com/daybook-app/daybook/models"
)

// AuthService covers the session lifecycle: credential verification at
// login, token resolution on every authenticated request, and session
// destruction at logout.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials, userAgent, ip string) (models.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (models.SessionUser, error)
}

// EntryService is the application-level entry API consumed by the HTTP
// handlers. It validates input and delegates persistence to the entry
// repository.
type EntryService interface {
	CreateEntry(ctx context.Context, data models.CreateEntryData, tagNames []string) (models.ExecResult, error)
	GetEntry(ctx context.Context, userID, entryID int64, loggedIn bool) (models.EntryDetails, error)
	GetEntries(ctx context.Context, filter models.EntryFilter) ([]models.EntryDetails, error)
	UpdateEntry(ctx context.Context, data models.UpdateEntryData) (models.ExecResult, error)
	DeleteEntry(ctx context.Context, entryID, userID int64) (models.ExecResult, error)
}

// ImageService manages the image rows attached to entries.
type ImageService interface {
	AttachImages(ctx context.Context, images []models.CreateImageData, entryID, userID int64) error
	GetImage(ctx context.Context, imageID, userID int64) (models.Image, error)
	DeleteImage(ctx context.Context, imageID, userID int64) (models.ExecResult, error)
	UpdateImageComment(ctx context.Context, imageID, userID int64, comment string) (models.ExecResult, error)
}

// TagService manages per-user tags and entry links.
type TagService interface {
	CreateTag(ctx context.Context, userID int64, name string) (models.ExecResult, error)
	GetTags(ctx context.Context, userID int64) ([]models.Tag, error)
	LinkEntryToTag(ctx context.Context, entryID, tagID int64) (models.ExecResult, error)
}
