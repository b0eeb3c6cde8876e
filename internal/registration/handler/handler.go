package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"supplierhub/internal/platform/middleware"
	"supplierhub/internal/registration/models"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/httputil"
	"supplierhub/pkg/requestcontext"
)

// Service defines the interface for registration operations.
type Service interface {
	Start(ctx context.Context, supplierID id.SupplierID) (*models.Registration, error)
	Get(ctx context.Context, supplierID id.SupplierID) (*models.Registration, error)
	SavePricing(ctx context.Context, supplierID id.SupplierID, amount int64, currency string) (*models.Registration, error)
	SetAvailability(ctx context.Context, supplierID id.SupplierID, days []models.Weekday) (*models.Registration, error)
	AddPhoto(ctx context.Context, supplierID id.SupplierID, url string) (*models.Registration, error)
	RemovePhoto(ctx context.Context, supplierID id.SupplierID, photoID string) (*models.Registration, error)
	Submit(ctx context.Context, supplierID id.SupplierID) (*models.Registration, error)
}

// Handler wires registration endpoints to the registration service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registration handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts registration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/onboarding/{supplierID}/registration", func(r chi.Router) {
		r.Use(middleware.SupplierContext)
		r.Post("/", h.HandleStart)
		r.Get("/", h.HandleGet)
		r.Put("/pricing", h.HandleSavePricing)
		r.Put("/availability", h.HandleSetAvailability)
		r.Post("/photos", h.HandleAddPhoto)
		r.Delete("/photos/{photoID}", h.HandleRemovePhoto)
		r.Post("/submit", h.HandleSubmit)
	})
}

// HandleStart handles POST /onboarding/{supplierID}/registration.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	supplierID := requestcontext.SupplierID(ctx)

	registration, err := h.service.Start(ctx, supplierID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to start registration",
			"request_id", requestID,
			"supplier_id", supplierID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration started",
		"request_id", requestID,
		"supplier_id", supplierID,
		"registration_id", registration.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromRegistration(registration))
}

// HandleGet handles GET /onboarding/{supplierID}/registration.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)

	registration, err := h.service.Get(ctx, supplierID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(registration))
}

// HandleSavePricing handles PUT /onboarding/{supplierID}/registration/pricing.
func (h *Handler) HandleSavePricing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	supplierID := requestcontext.SupplierID(ctx)
	req, ok := httputil.DecodeAndPrepare[SavePricingRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	registration, err := h.service.SavePricing(ctx, supplierID, req.Amount, req.Currency)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(registration))
}

// HandleSetAvailability handles PUT /onboarding/{supplierID}/registration/availability.
func (h *Handler) HandleSetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	supplierID := requestcontext.SupplierID(ctx)
	req, ok := httputil.DecodeAndPrepare[SetAvailabilityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	registration, err := h.service.SetAvailability(ctx, supplierID, req.ParsedDays())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(registration))
}

// HandleAddPhoto handles POST /onboarding/{supplierID}/registration/photos.
func (h *Handler) HandleAddPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	supplierID := requestcontext.SupplierID(ctx)
	req, ok := httputil.DecodeAndPrepare[AddPhotoRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	registration, err := h.service.AddPhoto(ctx, supplierID, req.URL)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromRegistration(registration))
}

// HandleRemovePhoto handles DELETE /onboarding/{supplierID}/registration/photos/{photoID}.
func (h *Handler) HandleRemovePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)

	registration, err := h.service.RemovePhoto(ctx, supplierID, chi.URLParam(r, "photoID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(registration))
}

// HandleSubmit handles POST /onboarding/{supplierID}/registration/submit.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	supplierID := requestcontext.SupplierID(ctx)

	registration, err := h.service.Submit(ctx, supplierID)
	if err != nil {
		h.logger.WarnContext(ctx, "registration submit failed",
			"request_id", requestID,
			"supplier_id", supplierID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration submitted",
		"request_id", requestID,
		"supplier_id", supplierID,
		"category", registration.CategoryName,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(registration))
}
