package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/material-tracker/internal/config"
	"github.com/heartmarshall/material-tracker/internal/domain"
	"github.com/heartmarshall/material-tracker/internal/service/image"
)

// imageService defines the minimal interface needed by UploadHandler.
type imageService interface {
	Ingest(ctx context.Context, in image.IngestInput) (string, error)
}

// UploadHandler serves the image upload endpoint.
type UploadHandler struct {
	svc       imageService
	bodyLimit int64
	log       *slog.Logger
}

// NewUploadHandler creates an UploadHandler. The image arrives
// base64-encoded, which inflates it by a third; the JSON envelope adds a
// little more, so the body limit sits above the configured image size.
func NewUploadHandler(svc imageService, cfg config.UploadConfig, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		svc:       svc,
		bodyLimit: cfg.MaxBytes + cfg.MaxBytes/3 + 1024,
		log:       logger.With("handler", "upload"),
	}
}

type uploadImageRequest struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

// UploadImage handles POST /upload-image. The body is capped before decoding
// so an oversized payload is cut off mid-read instead of being buffered in
// full only to fail the size check later.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.bodyLimit)

	var req uploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	url, err := h.svc.Ingest(r.Context(), image.IngestInput{
		Image:    req.Image,
		Filename: req.Filename,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *UploadHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
