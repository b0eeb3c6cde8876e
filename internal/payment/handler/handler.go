package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"supplierhub/internal/payment/models"
	"supplierhub/internal/platform/middleware"
	"supplierhub/internal/payment/service"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/httputil"
	"supplierhub/pkg/requestcontext"
)

// Service defines the interface for payment-method operations.
type Service interface {
	Add(ctx context.Context, supplierID id.SupplierID, params service.AddParams) (*models.PaymentMethod, error)
	Remove(ctx context.Context, supplierID id.SupplierID, methodID id.PaymentMethodID) error
	SetDefault(ctx context.Context, supplierID id.SupplierID, methodID id.PaymentMethodID) error
	List(ctx context.Context, supplierID id.SupplierID) ([]models.PaymentMethod, error)
}

// Handler wires payment-method endpoints to the payment service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a payment handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts payment-method endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/suppliers/{supplierID}/payment-methods", func(r chi.Router) {
		r.Use(middleware.SupplierContext)
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleAdd)
		r.Delete("/{methodID}", h.HandleRemove)
		r.Put("/{methodID}/default", h.HandleSetDefault)
	})
}

// HandleAdd handles POST /suppliers/{supplierID}/payment-methods.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	supplierID := requestcontext.SupplierID(ctx)
	req, ok := httputil.DecodeAndPrepare[AddMethodRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	method, err := h.service.Add(ctx, supplierID, service.AddParams{
		Brand:    req.Brand,
		Last4:    req.Last4,
		ExpMonth: req.ExpMonth,
		ExpYear:  req.ExpYear,
		Default:  req.Default,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "failed to add payment method",
			"request_id", requestID,
			"supplier_id", supplierID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "payment method added",
		"request_id", requestID,
		"supplier_id", supplierID,
		"method_id", method.ID,
		"brand", method.Brand,
	)
	httputil.WriteJSON(w, http.StatusCreated, method)
}

// HandleList handles GET /suppliers/{supplierID}/payment-methods.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)

	methods, err := h.service.List(ctx, supplierID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ListResponse{Methods: methods})
}

// HandleRemove handles DELETE /suppliers/{supplierID}/payment-methods/{methodID}.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)
	methodID, ok := methodIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(ctx, supplierID, methodID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetDefault handles PUT /suppliers/{supplierID}/payment-methods/{methodID}/default.
func (h *Handler) HandleSetDefault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)
	methodID, ok := methodIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.SetDefault(ctx, supplierID, methodID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func methodIDParam(w http.ResponseWriter, r *http.Request) (id.PaymentMethodID, bool) {
	methodID, err := id.ParsePaymentMethodID(chi.URLParam(r, "methodID"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.PaymentMethodID{}, false
	}
	return methodID, true
}
