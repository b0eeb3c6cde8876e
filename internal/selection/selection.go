// Package selection implements the industry-locked category selection
// rule used during supplier onboarding.
//
// A supplier picks exactly one top-level category (the "lock") and any
// number of that category's subcategories. Selecting a different
// category discards prior subcategory choices; re-selecting the locked
// category unlocks it. The type is a plain value with synchronous
// transition functions so it unit-tests without any transport or
// storage wiring.
package selection

import (
	"errors"

	"supplierhub/internal/catalog/models"
)

// Sentinel errors for transition failures. The service layer translates
// these into coded domain errors; the core stays dependency-light.
var (
	// ErrUnknownSubcategory is returned when a toggled label does not
	// belong to the locked category. Validation is strict: unknown
	// labels are rejected rather than ignored.
	ErrUnknownSubcategory = errors.New("subcategory does not belong to the selected category")
	// ErrNotConfirmable is returned by Confirm while CanConfirm is false.
	ErrNotConfirmable = errors.New("selection is not confirmable")
)

// Snapshot is the immutable export handed to the registration sink on
// confirmation. Subcategories preserve insertion order.
type Snapshot struct {
	CategoryID    string
	CategoryName  string
	Subcategories []string
}

// Selection holds the lock and the chosen subcategory labels.
//
// Invariants:
//   - chosen is non-empty only while a category is locked
//   - every chosen label belongs to the locked category's subcategories
//   - chosen never mixes labels from more than one category
//
// The zero value is not usable; construct with New.
type Selection struct {
	locked *models.Category
	chosen []string
}

// New returns an empty, unlocked selection.
func New() *Selection {
	return &Selection{}
}

// Select locks category, unlocks it when it is already the lock, or
// switches to it. Switching and unlocking both clear chosen labels:
// subcategory labels are category-scoped, so none survive a change of
// lock. Never fails.
func (s *Selection) Select(category *models.Category) {
	if s.locked != nil && s.locked.ID == category.ID {
		s.locked = nil
		s.chosen = nil
		return
	}
	cp := *category
	cp.Subcategories = append([]string(nil), category.Subcategories...)
	s.locked = &cp
	s.chosen = nil
}

// ToggleSubcategory adds label to the chosen set, or removes it when
// already chosen. Without a lock it is a no-op so a stale tap cannot
// break the invariants. Labels outside the locked category are rejected
// with ErrUnknownSubcategory.
func (s *Selection) ToggleSubcategory(label string) error {
	if s.locked == nil {
		return nil
	}
	if !s.locked.HasSubcategory(label) {
		return ErrUnknownSubcategory
	}
	for i, chosen := range s.chosen {
		if chosen == label {
			s.chosen = append(s.chosen[:i], s.chosen[i+1:]...)
			return nil
		}
	}
	s.chosen = append(s.chosen, label)
	return nil
}

// CanConfirm reports whether the selection is complete: a locked
// category with at least one chosen subcategory.
func (s *Selection) CanConfirm() bool {
	return s.locked != nil && len(s.chosen) > 0
}

// Confirm exports the selection without mutating it. The caller hands
// the snapshot to the registration record; any workflow reset is the
// caller's concern.
func (s *Selection) Confirm() (Snapshot, error) {
	if !s.CanConfirm() {
		return Snapshot{}, ErrNotConfirmable
	}
	return Snapshot{
		CategoryID:    s.locked.ID.String(),
		CategoryName:  s.locked.Name,
		Subcategories: append([]string(nil), s.chosen...),
	}, nil
}

// Locked returns the locked category, or nil while unlocked.
func (s *Selection) Locked() *models.Category {
	return s.locked
}

// Chosen returns the chosen labels in insertion order.
func (s *Selection) Chosen() []string {
	return append([]string(nil), s.chosen...)
}

// IsChosen reports whether label is currently chosen.
func (s *Selection) IsChosen(label string) bool {
	for _, chosen := range s.chosen {
		if chosen == label {
			return true
		}
	}
	return false
}
