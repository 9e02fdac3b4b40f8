// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/models"
)

func Test_buildSelectEntryQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectEntryQuery(42, 7, true)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	require.Contains(t, args, int64(42))
	require.Contains(t, args, int64(7))

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from entries")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	// columns presence (subset / key columns)
	require.Contains(t, q, "id")
	require.Contains(t, q, "type")
	require.Contains(t, q, "private")
	require.Contains(t, q, "pinned")
	require.Contains(t, q, "manual_date")
}

func Test_buildSelectEntryQuery_VisibilityPredicate(t *testing.T) {
	loggedInQuery, _, err := buildSelectEntryQuery(1, 1, true)
	require.NoError(t, err)

	anonymousQuery, anonymousArgs, err := buildSelectEntryQuery(1, 1, false)
	require.NoError(t, err)

	// the owner sees private rows, an anonymous caller does not
	assert.NotContains(t, strings.ToLower(loggedInQuery), "private =")
	assert.Contains(t, strings.ToLower(anonymousQuery), "private")
	assert.Len(t, anonymousArgs, 3)
}

func Test_buildSelectEntriesQuery_SQLContainsParts(t *testing.T) {
	filter := models.EntryFilter{
		UserID:   42,
		Type:     models.EntryTypeNote,
		LoggedIn: true,
		Limit:    20,
		Offset:   40,
	}

	query, args, err := buildSelectEntriesQuery(filter)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "from entries")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "type")
	require.Contains(t, q, "order by created_at desc")
	require.Contains(t, q, "limit 20")
	require.Contains(t, q, "offset 40")

	require.Contains(t, args, int64(42))
	require.Contains(t, args, "note")
}

func Test_buildSelectEntriesQuery_NoPaginationWhenLimitZero(t *testing.T) {
	query, _, err := buildSelectEntriesQuery(models.EntryFilter{UserID: 1, Type: models.EntryTypeTask, LoggedIn: true})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.NotContains(t, q, "limit")
	assert.NotContains(t, q, "offset")
}

func Test_buildSelectEntriesQuery_OrderColumnAllowList(t *testing.T) {
	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{name: "empty falls back to created_at", orderBy: "", want: "order by created_at desc"},
		{name: "manual_date allowed", orderBy: "manual_date", want: "order by manual_date desc"},
		{name: "pinned allowed", orderBy: "pinned", want: "order by pinned desc"},
		{name: "arbitrary column rejected", orderBy: "pwhash", wantErr: true},
		{name: "injection attempt rejected", orderBy: "id; DROP TABLE entries", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := buildSelectEntriesQuery(models.EntryFilter{
				UserID:  1,
				Type:    models.EntryTypeEvent,
				OrderBy: tt.orderBy,
			})

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidOrderColumn)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, strings.ToLower(query), tt.want)
		})
	}
}
