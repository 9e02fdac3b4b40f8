package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/utils"
	"github.com/daybook-app/daybook/models"
)

// manualDateLayouts are the accepted formats of the manual_date request
// field, in matching order. A bare date means midnight.
var manualDateLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

// entryRequest is the JSON payload of entry create and update requests.
type entryRequest struct {
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Comment    string   `json:"comment"`
	Private    bool     `json:"private"`
	Pinned     bool     `json:"pinned"`
	ManualDate string   `json:"manual_date"`
	Tags       []string `json:"tags"`
}

func parseManualDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	var err error
	for _, layout := range manualDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

// requestIdentity pulls the resolved user identity out of the request
// context. The auth middleware always sets it; a missing value means the
// route is wired without middleware.
func requestIdentity(r *http.Request) (int64, bool, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	return userID, utils.IsLoggedIn(r.Context()), ok
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	manualDate, err := parseManualDate(req.ManualDate)
	if err != nil {
		log.Err(err).Str("manual_date", req.ManualDate).Msg("invalid manual date")
		http.Error(w, "invalid manual_date", http.StatusBadRequest)
		return
	}

	res, err := h.services.EntryService.CreateEntry(ctx, models.CreateEntryData{
		UserID:     userID,
		Type:       models.EntryType(req.Type),
		Title:      req.Title,
		Content:    req.Content,
		Comment:    req.Comment,
		Private:    req.Private,
		Pinned:     req.Pinned,
		ManualDate: manualDate,
	}, req.Tags)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEntryType), errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid entry data provided")
			http.Error(w, "invalid entry data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during entry creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, r, http.StatusCreated, map[string]int64{"id": res.LastInsertID})
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, loggedIn, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	details, err := h.services.EntryService.GetEntry(ctx, userID, entryID, loggedIn)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEntryNotFound):
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during entry lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, r, http.StatusOK, details)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, loggedIn, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.ParseUint(query.Get("limit"), 10, 64)
	offset, _ := strconv.ParseUint(query.Get("offset"), 10, 64)

	entries, err := h.services.EntryService.GetEntries(ctx, models.EntryFilter{
		UserID:   userID,
		Type:     models.EntryType(query.Get("type")),
		LoggedIn: loggedIn,
		Limit:    limit,
		Offset:   offset,
		OrderBy:  query.Get("order_by"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEntryType):
			http.Error(w, "invalid entry type", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrInvalidOrderColumn):
			http.Error(w, "invalid order column", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during entry listing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, r, http.StatusOK, entries)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	manualDate, err := parseManualDate(req.ManualDate)
	if err != nil {
		log.Err(err).Str("manual_date", req.ManualDate).Msg("invalid manual date")
		http.Error(w, "invalid manual_date", http.StatusBadRequest)
		return
	}

	res, err := h.services.EntryService.UpdateEntry(ctx, models.UpdateEntryData{
		UserID:     userID,
		EntryID:    entryID,
		Title:      req.Title,
		Content:    req.Content,
		Comment:    req.Comment,
		Private:    req.Private,
		Pinned:     req.Pinned,
		ManualDate: manualDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid entry data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during entry update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if res.RowsAffected == 0 {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	res, err := h.services.EntryService.DeleteEntry(ctx, entryID, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during entry deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if res.RowsAffected == 0 {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
