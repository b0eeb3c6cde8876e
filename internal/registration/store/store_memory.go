package store

import (
	"context"
	"sync"

	"supplierhub/internal/registration/models"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/sentinel"
)

// InMemory keeps one registration per supplier in process memory.
type InMemory struct {
	mu            sync.RWMutex
	registrations map[id.SupplierID]*models.Registration
}

func NewInMemory() *InMemory {
	return &InMemory{registrations: make(map[id.SupplierID]*models.Registration)}
}

func clone(r *models.Registration) *models.Registration {
	cp := *r
	cp.Subcategories = append([]string(nil), r.Subcategories...)
	cp.AvailableDays = append([]models.Weekday(nil), r.AvailableDays...)
	cp.Photos = append([]models.Photo(nil), r.Photos...)
	return &cp
}

// Create inserts a registration; a supplier holds at most one.
func (s *InMemory) Create(_ context.Context, registration *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.registrations[registration.SupplierID]; exists {
		return sentinel.ErrConflict
	}
	s.registrations[registration.SupplierID] = clone(registration)
	return nil
}

// FindBySupplier returns the supplier's registration or sentinel.ErrNotFound.
func (s *InMemory) FindBySupplier(_ context.Context, supplierID id.SupplierID) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registration, ok := s.registrations[supplierID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(registration), nil
}

// Execute runs fn against the supplier's registration under the store
// lock. fn mutates a copy; the copy replaces the stored record only
// when fn succeeds, so a failed validation leaves the record untouched.
func (s *InMemory) Execute(_ context.Context, supplierID id.SupplierID, fn func(r *models.Registration) error) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.registrations[supplierID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	working := clone(current)
	if err := fn(working); err != nil {
		return nil, err
	}
	s.registrations[supplierID] = working
	return clone(working), nil
}
