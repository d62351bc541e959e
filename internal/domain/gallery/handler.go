package gallery

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/pkg/imaging"
	"github.com/plumeria/retreat-api/internal/pkg/response"
	"github.com/plumeria/retreat-api/internal/pkg/validator"
)

// Handler handles gallery HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates gallery handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /gallery (public). Optional ?category=nature|accommodation.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var category *Category
	if c := r.URL.Query().Get("category"); c != "" {
		if err := validator.ValidateVar(c, "imgcategory"); err != nil {
			response.BadRequest(w, "Invalid category")
			return
		}
		cat := Category(c)
		category = &cat
	}

	images, err := h.svc.List(r.Context(), category)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list gallery images")
		response.InternalError(w)
		return
	}

	items := make([]*ImageResponse, len(images))
	for i, img := range images {
		items[i] = ToResponse(img)
	}

	response.OK(w, items)
}

// Upload handles POST /admin/gallery (multipart form: file, category, alt)
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(imaging.MaxFileSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file")
		return
	}
	defer file.Close()

	category := r.FormValue("category")
	if err := validator.ValidateVar(category, "required,imgcategory"); err != nil {
		response.BadRequest(w, "Invalid category")
		return
	}

	alt := r.FormValue("alt")

	img, err := h.svc.Upload(r.Context(), Category(category), alt, header.Filename, header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFile):
			response.BadRequest(w, "File is not a supported image")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Image exceeds the 10MB limit")
		case errors.Is(err, ErrInvalidCategory):
			response.BadRequest(w, "Invalid category")
		default:
			log.Error().Err(err).Msg("Failed to upload gallery image")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ToResponse(img))
}

// Delete handles DELETE /admin/gallery/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "Gallery image not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete gallery image")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
