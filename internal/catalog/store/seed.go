package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"supplierhub/internal/catalog/models"
	id "supplierhub/pkg/domain"
)

// DefaultCatalog is the fixed catalog served when the store cannot be
// reached. It is also the bootstrap seed for empty stores. IDs are
// name-derived (UUIDv5) so the fallback stays stable across processes
// and selections made against it remain resolvable.
func DefaultCatalog(now time.Time) []models.Category {
	entries := []struct {
		name          string
		subcategories []string
	}{
		{"Photography", []string{"Weddings", "Portraits", "Corporate Events", "Product Shoots"}},
		{"Catering", []string{"Buffet", "Plated Dinner", "Cocktail Reception", "Food Trucks"}},
		{"Music & Entertainment", []string{"Live Bands", "DJs", "Solo Artists", "MC Services"}},
		{"Decoration", []string{"Floral Design", "Balloon Styling", "Table Settings", "Lighting"}},
		{"Venues", []string{"Banquet Halls", "Outdoor Spaces", "Rooftops", "Conference Rooms"}},
	}

	out := make([]models.Category, 0, len(entries))
	for pos, e := range entries {
		categoryID := id.CategoryID(uuid.NewSHA1(uuid.NameSpaceOID, []byte("supplierhub/category/"+e.name)))
		category, err := models.NewCategory(categoryID, e.name, e.subcategories, pos, now)
		if err != nil {
			// Static data; a failure here is a programming error.
			panic(err)
		}
		out = append(out, *category)
	}
	return out
}

// Seed populates an empty store with the default catalog. Existing
// categories (by name) are left untouched.
func Seed(ctx context.Context, s *InMemory, now time.Time) []models.Category {
	catalog := DefaultCatalog(now)
	for i := range catalog {
		_ = s.Create(ctx, &catalog[i])
	}
	return catalog
}
