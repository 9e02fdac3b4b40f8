package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/service"
)

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	res, err := h.services.TagService.CreateTag(ctx, userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid tag data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during tag creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// a duplicate name is not an error, just zero rows affected
	status := http.StatusCreated
	if res.RowsAffected == 0 {
		status = http.StatusOK
	}

	writeJSON(w, r, status, map[string]int64{"id": res.LastInsertID})
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tags, err := h.services.TagService.GetTags(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during tag listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, tags)
}

func (h *Handler) linkEntryToTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, _, ok := requestIdentity(r); !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	tagID, err := pathID(r, "tagID")
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}

	if _, err := h.services.TagService.LinkEntryToTag(ctx, entryID, tagID); err != nil {
		log.Err(err).Msg("unexpected error occurred during entry to tag link")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
