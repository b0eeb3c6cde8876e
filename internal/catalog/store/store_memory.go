package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"supplierhub/internal/catalog/models"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/sentinel"
)

// InMemory keeps the category catalog in process memory. Used in tests
// and when Postgres is not configured.
type InMemory struct {
	mu         sync.RWMutex
	categories map[id.CategoryID]*models.Category
}

func NewInMemory() *InMemory {
	return &InMemory{categories: make(map[id.CategoryID]*models.Category)}
}

// Create inserts a category, rejecting duplicate names case-insensitively.
func (s *InMemory) Create(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, category.Name) {
			return sentinel.ErrConflict
		}
	}
	cp := *category
	cp.Subcategories = append([]string(nil), category.Subcategories...)
	s.categories[category.ID] = &cp
	return nil
}

// FindByID returns the category or sentinel.ErrNotFound.
func (s *InMemory) FindByID(_ context.Context, categoryID id.CategoryID) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[categoryID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *category
	cp.Subcategories = append([]string(nil), category.Subcategories...)
	return &cp, nil
}

// List returns all categories ordered by position, then name.
func (s *InMemory) List(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		cp := *category
		cp.Subcategories = append([]string(nil), category.Subcategories...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
