package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"supplierhub/internal/events"
	registrationmetrics "supplierhub/internal/registration/metrics"
	"supplierhub/internal/registration/models"
	"supplierhub/internal/selection"
	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
	"supplierhub/pkg/platform/sentinel"
	"supplierhub/pkg/requestcontext"
)

var tracer = otel.Tracer("supplierhub/internal/registration")

// Store persists registrations. Execute holds the record lock (mutex or
// FOR UPDATE) across validation and mutation.
type Store interface {
	Create(ctx context.Context, registration *models.Registration) error
	FindBySupplier(ctx context.Context, supplierID id.SupplierID) (*models.Registration, error)
	Execute(ctx context.Context, supplierID id.SupplierID, fn func(r *models.Registration) error) (*models.Registration, error)
}

// Service orchestrates the multi-step onboarding registration record.
type Service struct {
	store     Store
	publisher events.Publisher
	metrics   *registrationmetrics.Metrics
	logger    *slog.Logger
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m *registrationmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
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

// Start opens a draft registration for the supplier. Idempotent: an
// existing registration is returned as-is so a re-entered onboarding
// flow resumes where it left off.
func (s *Service) Start(ctx context.Context, supplierID id.SupplierID) (*models.Registration, error) {
	ctx, span := tracer.Start(ctx, "registration.Start")
	defer span.End()

	if supplierID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "supplier id is required")
	}
	span.SetAttributes(attribute.String("supplier_id", supplierID.String()))

	if existing, err := s.store.FindBySupplier(ctx, supplierID); err == nil {
		return existing, nil
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load registration")
	}

	registration, err := models.NewRegistration(id.NewRegistrationID(), supplierID, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, registration); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			// Lost a race with another Start; the winner's record is the truth.
			return s.store.FindBySupplier(ctx, supplierID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create registration")
	}

	if s.metrics != nil {
		s.metrics.Started.Inc()
	}
	s.emit(ctx, events.Event{
		Kind:       events.KindRegistrationStarted,
		SupplierID: supplierID,
		Subject:    registration.ID.String(),
		At:         requestcontext.Now(ctx),
	})
	return registration, nil
}

// SaveCategorySelection stores a confirmed selection snapshot. This is
// the registration-data sink the selection module hands off to.
func (s *Service) SaveCategorySelection(ctx context.Context, supplierID id.SupplierID, snapshot selection.Snapshot) error {
	ctx, span := tracer.Start(ctx, "registration.SaveCategorySelection")
	defer span.End()

	now := requestcontext.Now(ctx)
	_, err := s.store.Execute(ctx, supplierID, func(r *models.Registration) error {
		return r.ApplyCategorySelection(snapshot.CategoryName, snapshot.Subcategories, now)
	})
	return s.wrapStoreErr(err)
}

// SavePricing stores the supplier's base price.
func (s *Service) SavePricing(ctx context.Context, supplierID id.SupplierID, amount int64, currency string) (*models.Registration, error) {
	now := requestcontext.Now(ctx)
	registration, err := s.store.Execute(ctx, supplierID, func(r *models.Registration) error {
		return r.SetPricing(amount, currency, now)
	})
	return registration, s.wrapStoreErr(err)
}

// SetAvailability replaces the available weekday set.
func (s *Service) SetAvailability(ctx context.Context, supplierID id.SupplierID, days []models.Weekday) (*models.Registration, error) {
	now := requestcontext.Now(ctx)
	registration, err := s.store.Execute(ctx, supplierID, func(r *models.Registration) error {
		return r.SetAvailability(days, now)
	})
	return registration, s.wrapStoreErr(err)
}

// AddPhoto appends portfolio photo metadata.
func (s *Service) AddPhoto(ctx context.Context, supplierID id.SupplierID, url string) (*models.Registration, error) {
	now := requestcontext.Now(ctx)
	photoID := uuid.NewString()
	registration, err := s.store.Execute(ctx, supplierID, func(r *models.Registration) error {
		return r.AddPhoto(photoID, url, now)
	})
	return registration, s.wrapStoreErr(err)
}

// RemovePhoto deletes one portfolio photo.
func (s *Service) RemovePhoto(ctx context.Context, supplierID id.SupplierID, photoID string) (*models.Registration, error) {
	now := requestcontext.Now(ctx)
	registration, err := s.store.Execute(ctx, supplierID, func(r *models.Registration) error {
		return r.RemovePhoto(photoID, now)
	})
	return registration, s.wrapStoreErr(err)
}

// Get returns the supplier's registration.
func (s *Service) Get(ctx context.Context, supplierID id.SupplierID) (*models.Registration, error) {
	registration, err := s.store.FindBySupplier(ctx, supplierID)
	return registration, s.wrapStoreErr(err)
}

// Submit finalizes the draft after all steps are complete.
func (s *Service) Submit(ctx context.Context, supplierID id.SupplierID) (*models.Registration, error) {
	ctx, span := tracer.Start(ctx, "registration.Submit")
	defer span.End()
	span.SetAttributes(attribute.String("supplier_id", supplierID.String()))

	start := time.Now()
	now := requestcontext.Now(ctx)
	registration, err := s.store.Execute(ctx, supplierID, func(r *models.Registration) error {
		if err := r.CanSubmit(); err != nil {
			return err
		}
		r.ApplySubmit(now)
		return nil
	})
	if err != nil {
		return nil, s.wrapStoreErr(err)
	}

	if s.metrics != nil {
		s.metrics.Submitted.Inc()
		s.metrics.ObserveSubmit(start)
	}
	s.emit(ctx, events.Event{
		Kind:       events.KindRegistrationSubmitted,
		SupplierID: supplierID,
		Subject:    registration.CategoryName,
		At:         now,
	})
	return registration, nil
}

func (s *Service) wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, "registration not found; start onboarding first")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "registration store failure")
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to publish event", "kind", event.Kind, "error", err)
	}
}
