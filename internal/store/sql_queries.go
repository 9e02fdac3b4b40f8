// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/daybook-app/daybook/models"
)

// manualDateFormat is the fixed textual layout of the entries.manual_date
// column. Caller-supplied manual dates are normalized to this format before
// storage so that lexicographic ordering matches chronological ordering.
const manualDateFormat = "2006-01-02 15:04:05"

const (
	createSession = `
		INSERT INTO sessions (uuid, user_id, user_agent, ip, created_at)
		VALUES (?, ?, ?, ?, datetime('now'));`

	destroySession = `
		DELETE FROM sessions WHERE uuid = ?;`

	getSessionUser = `
		SELECT users.username, sessions.user_id
		FROM sessions
		JOIN users ON sessions.user_id = users.id
		WHERE sessions.uuid = ?;`

	findUserByUsername = `
		SELECT id, username, pwhash, created_at, updated_at
		FROM users
		WHERE username = ?;`

	createEntry = `
		INSERT INTO entries (user_id, type, title, content, comment, private, pinned, created_at, updated_at, manual_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'), datetime('now'), ?);`

	updateEntry = `
		UPDATE entries
		SET title       = ?,
		    content     = ?,
		    comment     = ?,
		    private     = ?,
		    pinned      = ?,
		    updated_at  = datetime('now'),
		    manual_date = ?
		WHERE user_id = ? AND id = ?;`

	// The three delete statements run inside one transaction so that an
	// entry never leaves orphaned association or image rows behind. The
	// child deletes are ownership-scoped through the subquery: a wrong
	// user_id matches nothing.
	deleteEntryLinks = `
		DELETE FROM entry_to_tag
		WHERE entry_id IN (SELECT id FROM entries WHERE id = ? AND user_id = ?);`

	deleteEntryImages = `
		DELETE FROM images
		WHERE entry_id IN (SELECT id FROM entries WHERE id = ? AND user_id = ?);`

	deleteEntry = `
		DELETE FROM entries WHERE id = ? AND user_id = ?;`

	getTagsForEntry = `
		SELECT tags.id, tags.user_id, tags.name, tags.created_at
		FROM tags
		JOIN entry_to_tag ON tags.id = entry_to_tag.tag_id
		WHERE entry_to_tag.entry_id = ?;`

	getImagesForEntry = `
		SELECT id, entry_id, user_id, path, comment, preview_data, exif_data, created_at
		FROM images
		WHERE entry_id = ?;`

	insertImage = `
		INSERT INTO images (entry_id, user_id, path, comment, preview_data, exif_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'));`

	getImage = `
		SELECT id, entry_id, user_id, path, comment, preview_data, exif_data, created_at
		FROM images
		WHERE user_id = ? AND id = ?;`

	deleteImage = `
		DELETE FROM images WHERE user_id = ? AND id = ?;`

	updateImageComment = `
		UPDATE images SET comment = ? WHERE user_id = ? AND id = ?;`

	createTag = `
		INSERT OR IGNORE INTO tags (user_id, name, created_at)
		VALUES (?, ?, datetime('now'));`

	getTags = `
		SELECT id, user_id, name, created_at
		FROM tags
		WHERE user_id = ?;`

	findTagByName = `
		SELECT id, user_id, name, created_at
		FROM tags
		WHERE user_id = ? AND name = ?;`

	linkEntryToTag = `
		INSERT OR IGNORE INTO entry_to_tag (entry_id, tag_id)
		VALUES (?, ?);`
)

// entryColumns is the canonical column order of the entries table, shared
// by the squirrel builders and the scan helpers.
var entryColumns = []string{
	"id", "user_id", "type", "title", "content", "comment",
	"private", "pinned", "created_at", "updated_at", "manual_date",
}

// entryOrderColumns is the allow-list of columns a listing may be ordered
// by. The column name is interpolated into the ORDER BY clause, so it must
// never come from user input without passing through orderColumn.
var entryOrderColumns = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"manual_date": true,
	"title":       true,
	"pinned":      true,
	"id":          true,
}

// orderColumn validates a requested ordering column against the allow-list.
// Empty input falls back to created_at; an unknown column is an error.
func orderColumn(requested string) (string, error) {
	if requested == "" {
		return "created_at", nil
	}

	if !entryOrderColumns[requested] {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderColumn, requested)
	}

	return requested, nil
}

// buildSelectEntryQuery builds the single-entry lookup. The query is always
// scoped by (user_id, id); when the caller is not authenticated as the
// owner, the visibility predicate additionally requires private = 0, which
// makes a private entry indistinguishable from a missing one.
func buildSelectEntryQuery(userID, entryID int64, loggedIn bool) (string, []any, error) {
	builder := sq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"user_id": userID, "id": entryID})

	if !loggedIn {
		builder = builder.Where(sq.Eq{"private": 0})
	}

	return builder.ToSql()
}

// buildSelectEntriesQuery builds the filtered listing query from an
// [models.EntryFilter]: exact type match, the same visibility predicate as
// buildSelectEntryQuery, descending order by an allow-listed column, and
// optional limit/offset pagination (Limit == 0 means everything).
func buildSelectEntriesQuery(filter models.EntryFilter) (string, []any, error) {
	column, err := orderColumn(filter.OrderBy)
	if err != nil {
		return "", nil, err
	}

	builder := sq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"user_id": filter.UserID, "type": string(filter.Type)})

	if !filter.LoggedIn {
		builder = builder.Where(sq.Eq{"private": 0})
	}

	builder = builder.OrderBy(column + " DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	return builder.ToSql()
}
