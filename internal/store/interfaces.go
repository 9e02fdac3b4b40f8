package store

import (
	"context"

	"github.com/daybook-app/daybook/models"
)

// SessionRepository manages server-side session records: the persistence
// half of request authentication. Tokens arrive as opaque strings; their
// generation is the service layer's concern.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.ExecResult, error)
	DestroySession(ctx context.Context, uuid string) (models.ExecResult, error)
	GetSessionUser(ctx context.Context, uuid string) (models.SessionUser, error)
}

// UserRepository resolves usernames to stored credentials. Credential
// verification itself happens in the auth service.
type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// EntryRepository covers the full entry lifecycle. Every operation is
// scoped by the owning user id; reads additionally honour the privacy flag
// through the loggedIn switch.
type EntryRepository interface {
	CreateEntry(ctx context.Context, data models.CreateEntryData) (models.ExecResult, error)
	CreateEntryWithTags(ctx context.Context, data models.CreateEntryData, tagNames []string) (models.ExecResult, error)
	GetEntry(ctx context.Context, userID, entryID int64, loggedIn bool) (models.EntryDetails, error)
	GetEntries(ctx context.Context, filter models.EntryFilter) ([]models.EntryDetails, error)
	UpdateEntry(ctx context.Context, data models.UpdateEntryData) (models.ExecResult, error)
	DeleteEntry(ctx context.Context, entryID, userID int64) (models.ExecResult, error)
}

// ImageRepository manages image rows attached to entries, all scoped by
// (user_id, id).
type ImageRepository interface {
	InsertImages(ctx context.Context, images []models.CreateImageData, entryID, userID int64) error
	GetImage(ctx context.Context, imageID, userID int64) (models.Image, error)
	DeleteImage(ctx context.Context, imageID, userID int64) (models.ExecResult, error)
	UpdateImageComment(ctx context.Context, imageID, userID int64, comment string) (models.ExecResult, error)
}

// TagRepository manages per-user tags and their links to entries. Creating
// an existing tag and linking an already-linked pair are both silent no-ops.
type TagRepository interface {
	CreateTag(ctx context.Context, userID int64, name string) (models.ExecResult, error)
	GetTags(ctx context.Context, userID int64) ([]models.Tag, error)
	LinkEntryToTag(ctx context.Context, entryID, tagID int64) (models.ExecResult, error)
}
