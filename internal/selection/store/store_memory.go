package store

import (
	"context"
	"sync"

	"supplierhub/internal/selection"
	id "supplierhub/pkg/domain"
)

// InMemory keeps one ephemeral selection session per supplier. Sessions
// live for the duration of the onboarding screen and are never
// persisted; losing them on restart only re-shows an empty picker.
type InMemory struct {
	mu       sync.Mutex
	sessions map[id.SupplierID]*selection.Selection
}

func NewInMemory() *InMemory {
	return &InMemory{sessions: make(map[id.SupplierID]*selection.Selection)}
}

// Execute runs fn against the supplier's session, creating it on first
// use. The store's lock is held for the whole callback, which gives the
// session the single-writer discipline the selection state assumes.
func (s *InMemory) Execute(_ context.Context, supplierID id.SupplierID, fn func(sel *selection.Selection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.sessions[supplierID]
	if !ok {
		sel = selection.New()
		s.sessions[supplierID] = sel
	}
	return fn(sel)
}

// Drop discards the supplier's session, e.g. when the onboarding flow
// is abandoned.
func (s *InMemory) Drop(_ context.Context, supplierID id.SupplierID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, supplierID)
}
