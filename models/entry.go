package models

import "time"

// EntryType enumerates the four kinds of journal entries.
type EntryType string

const (
	EntryTypeEvent EntryType = "event"
	EntryTypeNote  EntryType = "note"
	EntryTypeTask  EntryType = "task"
	EntryTypeLink  EntryType = "link"
)

// Valid reports whether t is one of the four known entry types.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeEvent, EntryTypeNote, EntryTypeTask, EntryTypeLink:
		return true
	}
	return false
}

// Entry is the bare persisted row of the entries table.
// It deliberately carries no associations; the enriched view with tags and
// images attached is EntryDetails, built by composition at read time rather
// than by mutating a fetched row in place.
type Entry struct {
	// EntryID is the internal unique identifier of the entry.
	EntryID int64 `json:"id"`

	// UserID is the identifier of the owning user. Every read and mutation
	// of an entry is scoped by this value, never by EntryID alone.
	UserID int64 `json:"user_id"`

	// Type is one of event, note, task, link.
	Type EntryType `json:"type"`

	Title   string `json:"title"`
	Content string `json:"content"`
	Comment string `json:"comment"`

	// Private controls visibility: false means readable by anonymous
	// visitors, true means owner-only.
	Private bool `json:"private"`

	// Pinned marks the entry for prioritised display.
	Pinned bool `json:"pinned"`

	// CreatedAt and UpdatedAt are always server-assigned.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ManualDate is an optional caller-supplied display timestamp stored in
	// the textual "2006-01-02 15:04:05" format. Empty means the column is
	// NULL and created_at governs display ordering.
	ManualDate string `json:"manual_date,omitempty"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "entries"
}

// EntryDetails is an entry together with the full current set of its tag
// and image associations, fetched transitively at read time. The slices are
// never nil: an entry without tags or images carries empty slices so that
// JSON output always contains arrays.
type EntryDetails struct {
	Entry
	Tags   []Tag   `json:"tags"`
	Images []Image `json:"images"`
}

// CreateEntryData is the payload for creating a new entry. ManualDate is
// optional; zero means "no manual date". All other fields are stored as-is.
type CreateEntryData struct {
	UserID     int64
	Type       EntryType
	Title      string
	Content    string
	Comment    string
	Private    bool
	Pinned     bool
	ManualDate time.Time
}

// UpdateEntryData is the payload for updating an existing entry. The update
// is scoped by (UserID, EntryID); a zero rows-affected result means the
// entry does not exist or belongs to a different user, and the two cases
// are intentionally indistinguishable.
type UpdateEntryData struct {
	UserID     int64
	EntryID    int64
	Title      string
	Content    string
	Comment    string
	Private    bool
	Pinned     bool
	ManualDate time.Time
}

// EntryFilter narrows an entry listing. Type is matched exactly; LoggedIn
// switches the visibility predicate; OrderBy must name an allow-listed
// column (empty means created_at); Limit == 0 means "no limit".
type EntryFilter struct {
	UserID   int64
	Type     EntryType
	LoggedIn bool
	Limit    uint64
	Offset   uint64
	OrderBy  string
}
