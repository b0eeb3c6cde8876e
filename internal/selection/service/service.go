package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	catalogmodels "supplierhub/internal/catalog/models"
	"supplierhub/internal/events"
	"supplierhub/internal/selection"
	selectionmetrics "supplierhub/internal/selection/metrics"
	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
	"supplierhub/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks CategoryResolver,RegistrationSink

// SessionStore owns the per-supplier selection sessions. Execute holds
// the session lock for the whole callback so each session keeps the
// single-writer discipline the selection state assumes.
type SessionStore interface {
	Execute(ctx context.Context, supplierID id.SupplierID, fn func(sel *selection.Selection) error) error
	Drop(ctx context.Context, supplierID id.SupplierID)
}

// CategoryResolver resolves catalog categories for selection commands.
type CategoryResolver interface {
	Get(ctx context.Context, categoryID id.CategoryID) (*catalogmodels.Category, error)
}

// RegistrationSink receives the confirmed selection snapshot. It owns
// persistence and any workflow-wide state; the selection module only
// hands off the export.
type RegistrationSink interface {
	SaveCategorySelection(ctx context.Context, supplierID id.SupplierID, snapshot selection.Snapshot) error
}

// View is the read model the handler renders back to the app.
type View struct {
	CategoryID    string   `json:"category_id,omitempty"`
	CategoryName  string   `json:"category_name,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
	Chosen        []string `json:"chosen"`
	CanConfirm    bool     `json:"can_confirm"`
}

// Service orchestrates selection sessions around the pure selection core.
type Service struct {
	sessions  SessionStore
	catalog   CategoryResolver
	sink      RegistrationSink
	publisher events.Publisher
	metrics   *selectionmetrics.Metrics
	logger    *slog.Logger
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m *selectionmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(sessions SessionStore, catalog CategoryResolver, sink RegistrationSink, opts ...Option) *Service {
	s := &Service{sessions: sessions, catalog: catalog, sink: sink}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectCategory locks, unlocks, or switches the supplier's category.
func (s *Service) SelectCategory(ctx context.Context, supplierID id.SupplierID, categoryID id.CategoryID) (*View, error) {
	if err := requireSupplierID(supplierID); err != nil {
		return nil, err
	}
	category, err := s.catalog.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	var view *View
	err = s.sessions.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		prior := sel.Locked()
		sel.Select(category)
		if prior != nil && prior.ID != category.ID {
			s.incr(func(m *selectionmetrics.Metrics) { m.CategorySwitches.Inc() })
		}
		view = viewOf(sel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ToggleSubcategory flips one label in the supplier's chosen set.
func (s *Service) ToggleSubcategory(ctx context.Context, supplierID id.SupplierID, label string) (*View, error) {
	if err := requireSupplierID(supplierID); err != nil {
		return nil, err
	}
	if label == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "subcategory label is required")
	}

	var view *View
	err := s.sessions.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		if err := sel.ToggleSubcategory(label); err != nil {
			if errors.Is(err, selection.ErrUnknownSubcategory) {
				s.incr(func(m *selectionmetrics.Metrics) { m.RejectedToggles.Inc() })
				return dErrors.Wrap(err, dErrors.CodeInvalidInput, "subcategory does not belong to the selected category")
			}
			return err
		}
		view = viewOf(sel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Get returns the current selection view.
func (s *Service) Get(ctx context.Context, supplierID id.SupplierID) (*View, error) {
	if err := requireSupplierID(supplierID); err != nil {
		return nil, err
	}
	var view *View
	err := s.sessions.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		view = viewOf(sel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Confirm exports the selection snapshot and hands it to the
// registration sink. The session itself is left intact; the
// registration flow decides when the picker state is done.
func (s *Service) Confirm(ctx context.Context, supplierID id.SupplierID) (*selection.Snapshot, error) {
	if err := requireSupplierID(supplierID); err != nil {
		return nil, err
	}

	var snapshot selection.Snapshot
	err := s.sessions.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		snap, err := sel.Confirm()
		if err != nil {
			if errors.Is(err, selection.ErrNotConfirmable) {
				return dErrors.Wrap(err, dErrors.CodeInvalidState, "select a category and at least one subcategory first")
			}
			return err
		}
		snapshot = snap
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sink.SaveCategorySelection(ctx, supplierID, snapshot); err != nil {
		return nil, err
	}

	s.incr(func(m *selectionmetrics.Metrics) { m.Confirmed.Inc() })
	s.emit(ctx, events.Event{
		Kind:       events.KindSelectionConfirmed,
		SupplierID: supplierID,
		Subject:    snapshot.CategoryName,
		Payload:    map[string]string{"subcategories": strings.Join(snapshot.Subcategories, ",")},
		At:         requestcontext.Now(ctx),
	})
	return &snapshot, nil
}

// Abandon drops the supplier's session when the flow is cancelled.
func (s *Service) Abandon(ctx context.Context, supplierID id.SupplierID) error {
	if err := requireSupplierID(supplierID); err != nil {
		return err
	}
	s.sessions.Drop(ctx, supplierID)
	return nil
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to publish event", "kind", event.Kind, "error", err)
	}
}

func (s *Service) incr(fn func(*selectionmetrics.Metrics)) {
	if s.metrics != nil {
		fn(s.metrics)
	}
}

func requireSupplierID(supplierID id.SupplierID) error {
	if supplierID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "supplier id is required")
	}
	return nil
}

func viewOf(sel *selection.Selection) *View {
	view := &View{
		Chosen:     sel.Chosen(),
		CanConfirm: sel.CanConfirm(),
	}
	if locked := sel.Locked(); locked != nil {
		view.CategoryID = locked.ID.String()
		view.CategoryName = locked.Name
		view.Subcategories = append([]string(nil), locked.Subcategories...)
	}
	return view
}
