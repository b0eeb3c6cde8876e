package store

import (
	"context"
	"sort"
	"sync"

	"supplierhub/internal/payment/models"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/sentinel"
)

// InMemory keeps each supplier's payment methods in process memory.
// The store lock covers whole-wallet operations so the single-default
// invariant cannot be raced apart.
type InMemory struct {
	mu      sync.RWMutex
	methods map[id.SupplierID][]models.PaymentMethod
}

func NewInMemory() *InMemory {
	return &InMemory{methods: make(map[id.SupplierID][]models.PaymentMethod)}
}

// Add inserts a method. When the method is flagged default, any prior
// default for the supplier is cleared in the same critical section.
func (s *InMemory) Add(_ context.Context, method *models.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet := s.methods[method.SupplierID]
	for _, existing := range wallet {
		if existing.ID == method.ID {
			return sentinel.ErrConflict
		}
	}
	if method.Default {
		for i := range wallet {
			wallet[i].Default = false
		}
	}
	s.methods[method.SupplierID] = append(wallet, *method)
	return nil
}

// Remove deletes a method. The default flag does not move; the app
// asks for an explicit SetDefault afterwards.
func (s *InMemory) Remove(_ context.Context, supplierID id.SupplierID, methodID id.PaymentMethodID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet := s.methods[supplierID]
	for i, method := range wallet {
		if method.ID == methodID {
			s.methods[supplierID] = append(wallet[:i], wallet[i+1:]...)
			return nil
		}
	}
	return sentinel.ErrNotFound
}

// SetDefault marks one method as the default and clears the rest.
func (s *InMemory) SetDefault(_ context.Context, supplierID id.SupplierID, methodID id.PaymentMethodID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet := s.methods[supplierID]
	found := false
	for i := range wallet {
		if wallet[i].ID == methodID {
			found = true
		}
	}
	if !found {
		return sentinel.ErrNotFound
	}
	for i := range wallet {
		wallet[i].Default = wallet[i].ID == methodID
	}
	return nil
}

// ListBySupplier returns the wallet with the default first, then
// newest first, as the app renders it.
func (s *InMemory) ListBySupplier(_ context.Context, supplierID id.SupplierID) ([]models.PaymentMethod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wallet := append([]models.PaymentMethod(nil), s.methods[supplierID]...)
	sort.SliceStable(wallet, func(i, j int) bool {
		if wallet[i].Default != wallet[j].Default {
			return wallet[i].Default
		}
		return wallet[i].CreatedAt.After(wallet[j].CreatedAt)
	})
	return wallet, nil
}
