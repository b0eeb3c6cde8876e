package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"supplierhub/internal/events"
	"supplierhub/internal/notification/models"
	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
	"supplierhub/pkg/platform/sentinel"
	"supplierhub/pkg/requestcontext"
)

// Store owns the per-supplier inboxes.
type Store interface {
	Append(ctx context.Context, notification *models.Notification) error
	ListBySupplier(ctx context.Context, supplierID id.SupplierID) ([]models.Notification, error)
	MarkRead(ctx context.Context, supplierID id.SupplierID, notificationID id.NotificationID, now time.Time) error
	MarkAllRead(ctx context.Context, supplierID id.SupplierID, now time.Time) (int, error)
}

// Service manages the supplier notification inbox. It also implements
// events.Sink so the bus worker can turn domain events into inbox
// entries.
type Service struct {
	store  Store
	logger *slog.Logger
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the supplier's inbox, unread first.
func (s *Service) List(ctx context.Context, supplierID id.SupplierID) ([]models.Notification, error) {
	inbox, err := s.store.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list notifications")
	}
	return inbox, nil
}

// MarkRead stamps one notification as read.
func (s *Service) MarkRead(ctx context.Context, supplierID id.SupplierID, notificationID id.NotificationID) error {
	if err := s.store.MarkRead(ctx, supplierID, notificationID, requestcontext.Now(ctx)); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeNotFound, "notification not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to mark notification read")
	}
	return nil
}

// MarkAllRead stamps every unread notification and returns the count.
func (s *Service) MarkAllRead(ctx context.Context, supplierID id.SupplierID) (int, error) {
	marked, err := s.store.MarkAllRead(ctx, supplierID, requestcontext.Now(ctx))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to mark notifications read")
	}
	return marked, nil
}

// Handle implements events.Sink: domain events become inbox entries.
// Events with no inbox rendering are ignored.
func (s *Service) Handle(ctx context.Context, event events.Event) error {
	kind, title, body, ok := render(event)
	if !ok {
		return nil
	}
	notification, err := models.NewNotification(
		id.NewNotificationID(), event.SupplierID, kind, title, body, event.At,
	)
	if err != nil {
		return err
	}
	if err := s.store.Append(ctx, notification); err != nil {
		return fmt.Errorf("append notification: %w", err)
	}
	if s.logger != nil {
		s.logger.DebugContext(ctx, "notification created",
			"supplier_id", event.SupplierID.String(),
			"kind", kind,
		)
	}
	return nil
}

func render(event events.Event) (models.Kind, string, string, bool) {
	switch event.Kind {
	case events.KindRegistrationSubmitted:
		return models.KindRegistrationSubmitted,
			"Your registration is in review",
			fmt.Sprintf("We received your %s listing and will get back to you shortly.", event.Subject),
			true
	case events.KindSelectionConfirmed:
		return models.KindSelectionConfirmed,
			"Category confirmed",
			fmt.Sprintf("You are now listed under %s.", event.Subject),
			true
	case events.KindPaymentMethodAdded:
		return models.KindPaymentMethodChanged,
			"Payment method added",
			fmt.Sprintf("A %s card ending in %s was added to your account.", event.Payload["brand"], event.Payload["last4"]),
			true
	case events.KindPaymentMethodRemoved:
		return models.KindPaymentMethodChanged,
			"Payment method removed",
			"A payment method was removed from your account.",
			true
	default:
		return "", "", "", false
	}
}
