package enquiry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/pkg/response"
	"github.com/plumeria/retreat-api/internal/pkg/validator"
)

// Handler handles enquiry HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates enquiry handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /enquiries (public)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	e, err := h.svc.Submit(r.Context(), &req, clientIP(r), r.UserAgent())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create enquiry")
		response.InternalError(w)
		return
	}

	response.Created(w, map[string]string{"id": e.ID.String()})
}

// List handles GET /admin/enquiries
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		status = &st
	}

	enquiries, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list enquiries")
		response.InternalError(w)
		return
	}

	items := make([]*EnquiryResponse, len(enquiries))
	for i, e := range enquiries {
		items[i] = ToResponse(e)
	}

	response.WithMeta(w, items, response.Meta{Total: total, Limit: limit, Offset: offset})
}

// GetByID handles GET /admin/enquiries/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid enquiry ID")
		return
	}

	e, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Enquiry not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get enquiry")
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(e))
}

// UpdateStatus handles PATCH /admin/enquiries/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid enquiry ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, Status(req.Status)); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Enquiry not found")
		case errors.Is(err, ErrInvalidStatus):
			response.BadRequest(w, "Invalid status")
		default:
			log.Error().Err(err).Msg("Failed to update enquiry status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"status": req.Status})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}
