package service

import (
	"context"
	"log/slog"
	"time"

	catalogmetrics "supplierhub/internal/catalog/metrics"
	"supplierhub/internal/catalog/models"
	"supplierhub/internal/catalog/store"
	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
	"supplierhub/pkg/requestcontext"
)

// Store is the durable catalog source.
type Store interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
}

// Cache fronts the store; misses are signalled with sentinel.ErrNotFound.
type Cache interface {
	Get(ctx context.Context) ([]models.Category, error)
	Set(ctx context.Context, categories []models.Category) error
}

// Service serves the category catalog with a cache in front and the
// built-in default catalog behind, so onboarding never sees an empty
// category list. The fallback policy lives here, on the caller side;
// stores stay ignorant of it.
type Service struct {
	store    Store
	cache    Cache
	metrics  *catalogmetrics.Metrics
	logger   *slog.Logger
	fallback []models.Category
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithCache(cache Cache) Option {
	return func(s *Service) { s.cache = cache }
}

func WithMetrics(m *catalogmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(st Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		fallback: store.DefaultCatalog(time.Now()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the catalog: cache, then store (repopulating the cache),
// then the default catalog when the store is unreachable.
func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	start := time.Now()
	defer s.observeList(start)

	if s.cache != nil {
		if categories, err := s.cache.Get(ctx); err == nil {
			s.incr(func(m *catalogmetrics.Metrics) { m.CacheHits.Inc() })
			return categories, nil
		}
		s.incr(func(m *catalogmetrics.Metrics) { m.CacheMisses.Inc() })
	}

	categories, err := s.store.List(ctx)
	if err != nil {
		s.incr(func(m *catalogmetrics.Metrics) { m.Fallbacks.Inc() })
		if s.logger != nil {
			s.logger.WarnContext(ctx, "catalog store unavailable, serving default catalog",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		return append([]models.Category(nil), s.fallback...), nil
	}
	if len(categories) == 0 {
		// An empty catalog would dead-end onboarding; treat like an outage.
		s.incr(func(m *catalogmetrics.Metrics) { m.Fallbacks.Inc() })
		return append([]models.Category(nil), s.fallback...), nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "failed to repopulate catalog cache", "error", err)
		}
	}
	return categories, nil
}

// Get resolves one category by ID, consulting the fallback catalog when
// the store cannot serve it. Selections made against the default catalog
// must stay resolvable during a store outage.
func (s *Service) Get(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	category, err := s.store.FindByID(ctx, categoryID)
	if err == nil {
		return category, nil
	}
	for i := range s.fallback {
		if s.fallback[i].ID == categoryID {
			cp := s.fallback[i]
			cp.Subcategories = append([]string(nil), s.fallback[i].Subcategories...)
			return &cp, nil
		}
	}
	return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "category not found")
}

func (s *Service) incr(fn func(*catalogmetrics.Metrics)) {
	if s.metrics != nil {
		fn(s.metrics)
	}
}

func (s *Service) observeList(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveList(start)
	}
}
