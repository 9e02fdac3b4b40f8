package models

import "time"

// Tag is a per-user label. Tags are namespaced by their owner: the same
// name may exist independently for different users, and (user_id, name)
// is unique within the table. Tags attach to entries through the
// entry_to_tag association table.
type Tag struct {
	TagID     int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tags"
}
