package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmodels "supplierhub/internal/catalog/models"
	"supplierhub/internal/selection"
	id "supplierhub/pkg/domain"
)

var categoryFixture = catalogmodels.Category{
	ID:            id.NewCategoryID(),
	Name:          "Photography",
	Subcategories: []string{"Weddings", "Portraits"},
}

func TestExecuteCreatesSessionOnFirstUse(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	supplierID := id.NewSupplierID()

	var sawEmpty bool
	require.NoError(t, store.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		sawEmpty = sel.Locked() == nil && len(sel.Chosen()) == 0
		return nil
	}))
	assert.True(t, sawEmpty)
}

func TestExecutePropagatesCallbackError(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	boom := errors.New("boom")

	err := store.Execute(ctx, id.NewSupplierID(), func(*selection.Selection) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestDropDiscardsSession(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	supplierID := id.NewSupplierID()

	require.NoError(t, store.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		sel.Select(&categoryFixture)
		return sel.ToggleSubcategory("Weddings")
	}))
	store.Drop(ctx, supplierID)

	require.NoError(t, store.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		assert.Nil(t, sel.Locked())
		return nil
	}))
}

// Concurrent toggles on one session must serialize through the store
// lock; an even count of toggles always cancels out.
func TestExecuteSerializesPerSession(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	supplierID := id.NewSupplierID()

	require.NoError(t, store.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		sel.Select(&categoryFixture)
		return nil
	}))

	const pairs = 50
	var wg sync.WaitGroup
	for i := 0; i < pairs*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Execute(ctx, supplierID, func(sel *selection.Selection) error {
				return sel.ToggleSubcategory("Weddings")
			})
		}()
	}
	wg.Wait()

	require.NoError(t, store.Execute(ctx, supplierID, func(sel *selection.Selection) error {
		assert.False(t, sel.IsChosen("Weddings"))
		return nil
	}))
}
