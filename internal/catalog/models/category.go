package models

import (
	"strings"
	"time"

	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
)

// Category is a top-level service classification in the marketplace
// catalog (Photography, Catering, ...).
//
// Invariants:
//   - Name is non-empty and at most 64 characters
//   - Subcategories is non-empty, each label non-empty, unique within
//     the category (case-insensitive), order is display order
//
// Categories are reference data: consumers treat them as read-only and
// only the catalog admin path mutates them.
type Category struct {
	ID            id.CategoryID `json:"id"`
	Name          string        `json:"name"`
	Subcategories []string      `json:"subcategories"`
	Position      int           `json:"position"`
	CreatedAt     time.Time     `json:"created_at"`
}

// HasSubcategory reports whether label is one of the category's
// subcategories. Matching is exact: labels are category-scoped display
// strings, not user input.
func (c *Category) HasSubcategory(label string) bool {
	for _, s := range c.Subcategories {
		if s == label {
			return true
		}
	}
	return false
}

func NewCategory(categoryID id.CategoryID, name string, subcategories []string, position int, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category name cannot be empty")
	}
	if len(name) > 64 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category name must be 64 characters or less")
	}
	if len(subcategories) == 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category needs at least one subcategory")
	}
	seen := make(map[string]struct{}, len(subcategories))
	cleaned := make([]string, 0, len(subcategories))
	for _, label := range subcategories {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "subcategory label cannot be empty")
		}
		key := strings.ToLower(label)
		if _, dup := seen[key]; dup {
			return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "duplicate subcategory %q", label)
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, label)
	}
	return &Category{
		ID:            categoryID,
		Name:          name,
		Subcategories: cleaned,
		Position:      position,
		CreatedAt:     now,
	}, nil
}
