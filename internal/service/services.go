package service

import (
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
)

type Services struct {
	AuthService  AuthService
	EntryService EntryService
	ImageService ImageService
	TagService   TagService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repositories.Users, repositories.Sessions, logger),
		EntryService: NewEntryService(repositories.Entries, logger),
		ImageService: NewImageService(repositories.Images, logger),
		TagService:   NewTagService(repositories.Tags, logger),
	}
}
