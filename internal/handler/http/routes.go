package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	// public routes: reads fall back to the site owner's public entries
	// when no valid session is presented
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)

		r.Post("/api/login", h.login)
		r.Get("/api/entries", h.listEntries)
		r.Get("/api/entries/{entryID}", h.getEntry)
		r.Get("/api/images/{imageID}", h.getImage)
		r.Get("/api/tags", h.listTags)
	})

	// mutations require a valid session
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Post("/api/logout", h.logout)

		r.Post("/api/entries", h.createEntry)
		r.Put("/api/entries/{entryID}", h.updateEntry)
		r.Delete("/api/entries/{entryID}", h.deleteEntry)

		r.Post("/api/entries/{entryID}/images", h.attachImages)
		r.Patch("/api/images/{imageID}", h.updateImageComment)
		r.Delete("/api/images/{imageID}", h.deleteImage)

		r.Post("/api/tags", h.createTag)
		r.Post("/api/entries/{entryID}/tags/{tagID}", h.linkEntryToTag)
	})

	return router
}
