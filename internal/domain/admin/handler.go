package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/pkg/response"
	"github.com/plumeria/retreat-api/internal/pkg/validator"
)

// Handler handles admin auth HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates admin handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Login handles POST /admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resp, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("Admin login failed")
		response.InternalError(w)
		return
	}

	response.OK(w, resp)
}

// Me handles GET /admin/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	a, err := h.svc.GetByID(r.Context(), claims.AdminID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Unauthorized(w, "Admin no longer exists")
			return
		}
		log.Error().Err(err).Msg("Failed to load admin profile")
		response.InternalError(w)
		return
	}

	response.OK(w, &ProfileResponse{ID: a.ID, Email: a.Email, Name: a.Name})
}
