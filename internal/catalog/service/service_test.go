package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplierhub/internal/catalog/models"
	"supplierhub/internal/catalog/store"
	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
	"supplierhub/pkg/platform/sentinel"
)

type failingStore struct{}

func (failingStore) List(context.Context) ([]models.Category, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) FindByID(context.Context, id.CategoryID) (*models.Category, error) {
	return nil, errors.New("connection refused")
}

type fakeCache struct {
	categories []models.Category
	setCalls   int
}

func (c *fakeCache) Get(context.Context) ([]models.Category, error) {
	if c.categories == nil {
		return nil, sentinel.ErrNotFound
	}
	return c.categories, nil
}

func (c *fakeCache) Set(_ context.Context, categories []models.Category) error {
	c.categories = categories
	c.setCalls++
	return nil
}

func seededStore(t *testing.T) *store.InMemory {
	t.Helper()
	st := store.NewInMemory()
	store.Seed(context.Background(), st, time.Now())
	return st
}

func TestListPrefersCache(t *testing.T) {
	cached := []models.Category{{Name: "From Cache", Subcategories: []string{"x"}}}
	cache := &fakeCache{categories: cached}
	service := New(seededStore(t), WithCache(cache))

	categories, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "From Cache", categories[0].Name)
	assert.Zero(t, cache.setCalls)
}

func TestListRepopulatesCacheOnMiss(t *testing.T) {
	cache := &fakeCache{}
	service := New(seededStore(t), WithCache(cache))

	categories, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, categories)
	assert.Equal(t, 1, cache.setCalls)

	// Second call is served from the freshly set cache.
	again, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, categories, again)
	assert.Equal(t, 1, cache.setCalls)
}

func TestListFallsBackWhenStoreIsDown(t *testing.T) {
	service := New(failingStore{})

	categories, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, categories, "outage must not empty the catalog")

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	assert.Contains(t, names, "Photography")
}

func TestGetResolvesFallbackDuringOutage(t *testing.T) {
	service := New(failingStore{})

	// Selection flows resolve categories by the IDs the client saw in
	// List; during an outage those came from the default catalog.
	fallback := store.DefaultCatalog(time.Now())
	category, err := service.Get(context.Background(), fallback[0].ID)
	require.NoError(t, err)
	assert.Equal(t, fallback[0].Name, category.Name)

	_, err = service.Get(context.Background(), id.NewCategoryID())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestGetFromStore(t *testing.T) {
	st := seededStore(t)
	service := New(st)

	listed, err := st.List(context.Background())
	require.NoError(t, err)

	category, err := service.Get(context.Background(), listed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, listed[0].Name, category.Name)
}
