package models

import "time"

// Image is a file attached to an entry. The row stores only the path and
// extracted metadata; the file bytes themselves live outside the database.
// UserID duplicates the owning entry's user id so that image lookups can be
// authorization-scoped without joining through entries.
type Image struct {
	ImageID int64 `json:"id"`
	EntryID int64 `json:"entry_id"`
	UserID  int64 `json:"-"`

	// Path locates the stored image file.
	Path string `json:"path"`

	Comment string `json:"comment"`

	// PreviewData and ExifData are opaque blobs produced by the upload
	// pipeline; the store does not interpret them.
	PreviewData []byte `json:"-"`
	ExifData    []byte `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// CreateImageData is the per-image payload of a batch insert.
type CreateImageData struct {
	Path        string
	Comment     string
	PreviewData []byte
	ExifData    []byte
}

// TableName returns the name of the database table
// associated with the Image model.
func (i Image) TableName() string {
	return "images"
}
