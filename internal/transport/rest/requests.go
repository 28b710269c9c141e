package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/material-tracker/internal/domain"
	"github.com/heartmarshall/material-tracker/internal/service/request"
	"github.com/heartmarshall/material-tracker/pkg/ctxutil"
)

// requestService defines the minimal interface needed by RequestHandler.
type requestService interface {
	List(ctx context.Context, in request.ListInput) ([]domain.Request, error)
	Create(ctx context.Context, in request.CreateInput) (domain.Request, error)
	UpdateStatus(ctx context.Context, in request.UpdateStatusInput) (domain.Request, error)
}

// RequestHandler serves the material request endpoints.
type RequestHandler struct {
	svc requestService
	log *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc requestService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "requests")}
}

type listRequestsRequest struct {
	Status    string `json:"status"`
	UserEmail string `json:"userEmail"`
}

type createRequestRequest struct {
	PartName    string `json:"partName"`
	Size        string `json:"size"`
	Description string `json:"description"`
	RequestDate string `json:"requestDate"`
	RequestedBy string `json:"requestedBy"`
	ImageURL    string `json:"imageUrl"`
	UserEmail   string `json:"userEmail"`
}

type updateStatusRequest struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	UserEmail string `json:"userEmail"`
}

// ListRequests handles POST /list-requests. An empty body lists everything.
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	var req listRequestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	requests, err := h.svc.List(r.Context(), request.ListInput{
		Status:      req.Status,
		ViewerEmail: req.UserEmail,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponses(requests, h.viewerEmail(r, req.UserEmail)))
}

// CreateRequest handles POST /create-request.
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	requestedBy := req.RequestedBy
	if requestedBy == "" {
		requestedBy = req.UserEmail
	}

	created, err := h.svc.Create(r.Context(), request.CreateInput{
		PartName:    req.PartName,
		Size:        req.Size,
		Description: req.Description,
		RequestDate: req.RequestDate,
		RequestedBy: requestedBy,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      created.ID,
	})
}

// UpdateStatus handles POST /update-status.
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), request.UpdateStatusInput{
		ID:     req.ID,
		Status: req.Status,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"record":  toRequestResponse(updated, h.viewerEmail(r, req.UserEmail)),
	})
}

// viewerEmail resolves the email used for presentation hints: the verified
// identity when present, otherwise whatever the client claimed.
func (h *RequestHandler) viewerEmail(r *http.Request, claimed string) string {
	if email, ok := ctxutil.ViewerEmailFromCtx(r.Context()); ok {
		return email
	}
	return claimed
}

func (h *RequestHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.As(err, &upstream):
		h.log.ErrorContext(r.Context(), "record store error",
			slog.Int("upstream_status", upstream.StatusCode),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, upstream.Message)
	case errors.Is(err, domain.ErrNotFound):
		h.log.ErrorContext(r.Context(), "record not found", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "record not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
