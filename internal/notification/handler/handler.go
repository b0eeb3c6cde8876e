package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"supplierhub/internal/notification/models"
	"supplierhub/internal/platform/middleware"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/httputil"
	"supplierhub/pkg/requestcontext"
)

// Service defines the interface for notification inbox operations.
type Service interface {
	List(ctx context.Context, supplierID id.SupplierID) ([]models.Notification, error)
	MarkRead(ctx context.Context, supplierID id.SupplierID, notificationID id.NotificationID) error
	MarkAllRead(ctx context.Context, supplierID id.SupplierID) (int, error)
}

// Handler wires notification inbox endpoints to the notification service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a notification handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts notification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/suppliers/{supplierID}/notifications", func(r chi.Router) {
		r.Use(middleware.SupplierContext)
		r.Get("/", h.HandleList)
		r.Put("/{notificationID}/read", h.HandleMarkRead)
		r.Put("/read", h.HandleMarkAllRead)
	})
}

// ListResponse is the HTTP response body for the inbox listing.
type ListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// HandleList handles GET /suppliers/{supplierID}/notifications.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)

	inbox, err := h.service.List(ctx, supplierID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	unread := 0
	for _, notification := range inbox {
		if !notification.IsRead() {
			unread++
		}
	}
	httputil.WriteJSON(w, http.StatusOK, ListResponse{Notifications: inbox, Unread: unread})
}

// HandleMarkRead handles PUT /suppliers/{supplierID}/notifications/{notificationID}/read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)
	notificationID, err := id.ParseNotificationID(chi.URLParam(r, "notificationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.MarkRead(ctx, supplierID, notificationID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkAllRead handles PUT /suppliers/{supplierID}/notifications/read.
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplierID := requestcontext.SupplierID(ctx)

	marked, err := h.service.MarkAllRead(ctx, supplierID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"marked": marked})
}
