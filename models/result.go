package models

// ExecResult reports the outcome of a single mutation: how many rows the
// statement touched and, for inserts, the id the engine assigned. A zero
// RowsAffected is not an error at the store layer; callers decide whether
// it means "not found or not owner" in their context.
type ExecResult struct {
	LastInsertID int64 `json:"last_insert_id"`
	RowsAffected int64 `json:"rows_affected"`
}
