package service

import (
	"context"
	"errors"
	"log/slog"

	"supplierhub/internal/events"
	"supplierhub/internal/payment/models"
	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
	"supplierhub/pkg/platform/sentinel"
	"supplierhub/pkg/requestcontext"
)

// Store owns the supplier wallets. Whole-wallet operations run inside
// the store lock so the single-default invariant holds.
type Store interface {
	Add(ctx context.Context, method *models.PaymentMethod) error
	Remove(ctx context.Context, supplierID id.SupplierID, methodID id.PaymentMethodID) error
	SetDefault(ctx context.Context, supplierID id.SupplierID, methodID id.PaymentMethodID) error
	ListBySupplier(ctx context.Context, supplierID id.SupplierID) ([]models.PaymentMethod, error)
}

// AddParams carries the card metadata for a new payment method.
type AddParams struct {
	Brand    string
	Last4    string
	ExpMonth int
	ExpYear  int
	Default  bool
}

// Service manages supplier payment-method metadata.
type Service struct {
	store     Store
	publisher events.Publisher
	logger    *slog.Logger
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

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

// Add stores a new payment method. The first method a supplier adds
// becomes the default regardless of the flag; later the app must ask.
func (s *Service) Add(ctx context.Context, supplierID id.SupplierID, params AddParams) (*models.PaymentMethod, error) {
	now := requestcontext.Now(ctx)
	method, err := models.NewPaymentMethod(
		id.NewPaymentMethodID(), supplierID,
		params.Brand, params.Last4, params.ExpMonth, params.ExpYear, now,
	)
	if err != nil {
		return nil, err
	}
	if method.IsExpired(now) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "card is expired")
	}

	existing, err := s.store.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payment methods")
	}
	method.Default = params.Default || len(existing) == 0

	if err := s.store.Add(ctx, method); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store payment method")
	}

	s.emit(ctx, events.Event{
		Kind:       events.KindPaymentMethodAdded,
		SupplierID: supplierID,
		Subject:    method.ID.String(),
		Payload:    map[string]string{"brand": method.Brand, "last4": method.Last4},
		At:         now,
	})
	return method, nil
}

// Remove deletes a payment method. Removing the default leaves the
// wallet without one until the supplier picks a new default.
func (s *Service) Remove(ctx context.Context, supplierID id.SupplierID, methodID id.PaymentMethodID) error {
	if err := s.store.Remove(ctx, supplierID, methodID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeNotFound, "payment method not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove payment method")
	}

	s.emit(ctx, events.Event{
		Kind:       events.KindPaymentMethodRemoved,
		SupplierID: supplierID,
		Subject:    methodID.String(),
		At:         requestcontext.Now(ctx),
	})
	return nil
}

// SetDefault marks one method as the supplier's default.
func (s *Service) SetDefault(ctx context.Context, supplierID id.SupplierID, methodID id.PaymentMethodID) error {
	if err := s.store.SetDefault(ctx, supplierID, methodID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeNotFound, "payment method not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set default payment method")
	}
	return nil
}

// List returns the supplier's wallet, default first.
func (s *Service) List(ctx context.Context, supplierID id.SupplierID) ([]models.PaymentMethod, error) {
	methods, err := s.store.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list payment methods")
	}
	return methods, nil
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to publish event", "kind", event.Kind, "error", err)
	}
}
