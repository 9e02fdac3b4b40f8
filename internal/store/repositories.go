package store

import (
	"github.com/daybook-app/daybook/internal/logger"
)

// Repositories bundles every repository implementation behind its interface,
// built over the single shared database connection. It is the unit injected
// into the service layer.
type Repositories struct {
	Sessions SessionRepository
	Users    UserRepository
	Entries  EntryRepository
	Images   ImageRepository
	Tags     TagRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Sessions: NewSessionRepository(db, logger),
		Users:    NewUserRepository(db, logger),
		Entries:  NewEntryRepository(db, logger),
		Images:   NewImageRepository(db, logger),
		Tags:     NewTagRepository(db, logger),
	}
}
