package store

import (
	"database/sql"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/migrations"
	"github.com/daybook-app/daybook/models"
)

// DB wraps the single shared database connection used by every repository.
// The embedded *sql.DB provides the engine's own write serialization; no
// additional locking happens at this layer.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execResult converts a driver result into the transport-friendly
// [models.ExecResult]. SQLite always knows both values for DML statements,
// so conversion errors are not expected; they are swallowed into zeroes to
// keep mutation call sites simple.
func execResult(res sql.Result) models.ExecResult {
	lastID, _ := res.LastInsertId()
	affected, _ := res.RowsAffected()

	return models.ExecResult{
		LastInsertID: lastID,
		RowsAffected: affected,
	}
}
