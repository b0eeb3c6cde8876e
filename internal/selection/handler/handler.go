package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"supplierhub/internal/platform/middleware"
	"supplierhub/internal/selection"
	"supplierhub/internal/selection/service"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/httputil"
	"supplierhub/pkg/requestcontext"
)

// Service defines the interface for selection operations.
type Service interface {
	SelectCategory(ctx context.Context, supplierID id.SupplierID, categoryID id.CategoryID) (*service.View, error)
	ToggleSubcategory(ctx context.Context, supplierID id.SupplierID, label string) (*service.View, error)
	Get(ctx context.Context, supplierID id.SupplierID) (*service.View, error)
	Confirm(ctx context.Context, supplierID id.SupplierID) (*selection.Snapshot, error)
	Abandon(ctx context.Context, supplierID id.SupplierID) error
}

// Handler wires category selection endpoints to the selection service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a selection handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts selection endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/onboarding/{supplierID}/selection", func(r chi.Router) {
		r.Use(middleware.SupplierContext)
		r.Get("/", h.HandleGet)
		r.Delete("/", h.HandleAbandon)
		r.Put("/category", h.HandleSelectCategory)
		r.Put("/subcategory", h.HandleToggleSubcategory)
		r.Post("/confirm", h.HandleConfirm)
	})
}

// HandleSelectCategory handles PUT /onboarding/{supplierID}/selection/category.
func (h *Handler) HandleSelectCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	supplierID := requestcontext.SupplierID(ctx)
	req, ok := httputil.DecodeAndPrepare[SelectCategoryRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	view, err := h.service.SelectCategory(ctx, supplierID, req.ParsedCategoryID())
	if err != nil {
		h.logger.ErrorContext(ctx, "category selection failed",
			"request_id", requestID,
			"supplier_id", supplierID,
			"category_id", req.CategoryID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "category selected",
		"request_id", requestID,
		"supplier_id", supplierID,
		"category", view.CategoryName,
	)
	httputil.WriteJSON(w, http.StatusOK, view)
}

// HandleToggleSubcategory handles PUT /onboarding/{supplierID}/selection/subcategory.
func (h *Handler) HandleToggleSubcategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	supplierID := requestcontext.SupplierID(ctx)
	req, ok := httputil.DecodeAndPrepare[ToggleSubcategoryRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	view, err := h.service.ToggleSubcategory(ctx, supplierID, req.Label)
	if err != nil {
		h.logger.WarnContext(ctx, "subcategory toggle rejected",
			"request_id", requestID,
			"supplier_id", supplierID,
			"label", req.Label,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, view)
}

// HandleGet handles GET /onboarding/{supplierID}/selection.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)

	view, err := h.service.Get(ctx, supplierID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

// HandleConfirm handles POST /onboarding/{supplierID}/selection/confirm.
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	supplierID := requestcontext.SupplierID(ctx)

	snapshot, err := h.service.Confirm(ctx, supplierID)
	if err != nil {
		h.logger.WarnContext(ctx, "selection confirm failed",
			"request_id", requestID,
			"supplier_id", supplierID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "selection confirmed",
		"request_id", requestID,
		"supplier_id", supplierID,
		"category", snapshot.CategoryName,
		"subcategories", len(snapshot.Subcategories),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromSnapshot(snapshot))
}

// HandleAbandon handles DELETE /onboarding/{supplierID}/selection.
func (h *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)

	if err := h.service.Abandon(ctx, supplierID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
