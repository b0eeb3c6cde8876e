//go:build go1.18

package selection

import (
	"testing"
	"time"

	"supplierhub/internal/catalog/models"
	id "supplierhub/pkg/domain"
)

// FuzzSelectionInvariants drives a Selection through an arbitrary
// sequence of Select/ToggleSubcategory calls and checks the structural
// invariants after every step:
//   - labels are chosen only while a category is locked
//   - every chosen label belongs to the locked category
//   - no label is chosen twice
func FuzzSelectionInvariants(f *testing.F) {
	f.Add([]byte{0, 2, 3, 1, 2, 2, 0, 4})
	f.Add([]byte{})
	f.Add([]byte{2, 2, 2})
	f.Add([]byte{0, 1, 0, 1, 0, 1})

	f.Fuzz(func(t *testing.T, ops []byte) {
		now := time.Now()
		photography, err := models.NewCategory(id.NewCategoryID(), "Photography", []string{"Weddings", "Portraits"}, 0, now)
		if err != nil {
			t.Fatal(err)
		}
		catering, err := models.NewCategory(id.NewCategoryID(), "Catering", []string{"Buffet", "Plated Dinner"}, 1, now)
		if err != nil {
			t.Fatal(err)
		}
		labels := []string{"Weddings", "Portraits", "Buffet", "Plated Dinner", "Bogus"}

		s := New()
		for _, op := range ops {
			switch op % 7 {
			case 0:
				s.Select(photography)
			case 1:
				s.Select(catering)
			default:
				label := labels[int(op)%len(labels)]
				if err := s.ToggleSubcategory(label); err != nil && err != ErrUnknownSubcategory {
					t.Fatalf("unexpected toggle error: %v", err)
				}
			}
			checkInvariants(t, s)
		}
	})
}

func checkInvariants(t *testing.T, s *Selection) {
	t.Helper()

	locked := s.Locked()
	chosen := s.Chosen()

	if locked == nil && len(chosen) > 0 {
		t.Fatalf("labels chosen without a lock: %v", chosen)
	}

	seen := make(map[string]struct{}, len(chosen))
	for _, label := range chosen {
		if locked != nil && !locked.HasSubcategory(label) {
			t.Fatalf("chosen label %q does not belong to locked category %q", label, locked.Name)
		}
		if _, dup := seen[label]; dup {
			t.Fatalf("label %q chosen twice", label)
		}
		seen[label] = struct{}{}
	}

	if s.CanConfirm() != (locked != nil && len(chosen) > 0) {
		t.Fatal("CanConfirm disagrees with lock/chosen state")
	}
}
