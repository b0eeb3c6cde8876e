//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"supplierhub/internal/catalog/models"
	"supplierhub/internal/catalog/store"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/sentinel"
	"supplierhub/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "categories"))
}

func (s *PostgresStoreSuite) newCategory(name string, position int) *models.Category {
	category, err := models.NewCategory(id.NewCategoryID(), name, []string{"One", "Two"}, position, time.Now().UTC())
	s.Require().NoError(err)
	return category
}

func (s *PostgresStoreSuite) TestCreateAndFindByID() {
	ctx := context.Background()
	category := s.newCategory("Photography", 0)
	s.Require().NoError(s.store.Create(ctx, category))

	found, err := s.store.FindByID(ctx, category.ID)
	s.Require().NoError(err)
	s.Equal(category.Name, found.Name)
	s.Equal(category.Subcategories, found.Subcategories)

	_, err = s.store.FindByID(ctx, id.NewCategoryID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDuplicateNamesConflictCaseInsensitively() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, s.newCategory("Catering", 0)))
	s.ErrorIs(s.store.Create(ctx, s.newCategory("CATERING", 1)), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestListOrdersByPosition() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, s.newCategory("Venues", 2)))
	s.Require().NoError(s.store.Create(ctx, s.newCategory("Photography", 0)))
	s.Require().NoError(s.store.Create(ctx, s.newCategory("Catering", 1)))

	categories, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Photography", categories[0].Name)
	s.Equal("Catering", categories[1].Name)
	s.Equal("Venues", categories[2].Name)
}
