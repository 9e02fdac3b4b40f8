package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/models"
)

// imageRequest is the per-image payload of the batch attach request.
// PreviewData and ExifData arrive base64-encoded per encoding/json's []byte
// convention.
type imageRequest struct {
	Path        string `json:"path"`
	Comment     string `json:"comment"`
	PreviewData []byte `json:"preview_data"`
	ExifData    []byte `json:"exif_data"`
}

func (h *Handler) attachImages(w http.ResponseWriter, r *http.Request) {
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

	var req []imageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	images := make([]models.CreateImageData, 0, len(req))
	for _, image := range req {
		images = append(images, models.CreateImageData{
			Path:        image.Path,
			Comment:     image.Comment,
			PreviewData: image.PreviewData,
			ExifData:    image.ExifData,
		})
	}

	if err := h.services.ImageService.AttachImages(ctx, images, entryID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid image data provided")
			http.Error(w, "invalid image data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during image attach")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	imageID, err := pathID(r, "imageID")
	if err != nil {
		http.Error(w, "invalid image id", http.StatusBadRequest)
		return
	}

	image, err := h.services.ImageService.GetImage(ctx, imageID, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrImageNotFound):
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during image lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, r, http.StatusOK, image)
}

func (h *Handler) updateImageComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	imageID, err := pathID(r, "imageID")
	if err != nil {
		http.Error(w, "invalid image id", http.StatusBadRequest)
		return
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	res, err := h.services.ImageService.UpdateImageComment(ctx, imageID, userID, req.Comment)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during image comment update")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if res.RowsAffected == 0 {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	imageID, err := pathID(r, "imageID")
	if err != nil {
		http.Error(w, "invalid image id", http.StatusBadRequest)
		return
	}

	res, err := h.services.ImageService.DeleteImage(ctx, imageID, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during image deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if res.RowsAffected == 0 {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
