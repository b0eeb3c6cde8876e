package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"supplierhub/internal/catalog/models"
	"supplierhub/pkg/platform/httputil"
)

// Service defines the interface for catalog reads.
type Service interface {
	List(ctx context.Context) ([]models.Category, error)
}

// Handler serves the category catalog to the onboarding UI.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a catalog handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts catalog endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/catalog/categories", h.HandleList)
}

// ListResponse is the HTTP response body for the catalog listing.
type ListResponse struct {
	Categories []models.Category `json:"categories"`
}

// HandleList handles GET /catalog/categories.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ListResponse{Categories: categories})
}
