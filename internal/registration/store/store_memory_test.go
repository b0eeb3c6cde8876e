package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"supplierhub/internal/registration/models"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemory
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()
}

func (s *InMemoryStoreSuite) newRegistration() *models.Registration {
	registration, err := models.NewRegistration(id.NewRegistrationID(), id.NewSupplierID(), time.Now())
	s.Require().NoError(err)
	return registration
}

func (s *InMemoryStoreSuite) TestCreateRejectsSecondRegistration() {
	registration := s.newRegistration()
	s.Require().NoError(s.store.Create(s.ctx, registration))

	dup, err := models.NewRegistration(id.NewRegistrationID(), registration.SupplierID, time.Now())
	s.Require().NoError(err)
	s.ErrorIs(s.store.Create(s.ctx, dup), sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestFindBySupplier() {
	registration := s.newRegistration()
	s.Require().NoError(s.store.Create(s.ctx, registration))

	found, err := s.store.FindBySupplier(s.ctx, registration.SupplierID)
	s.Require().NoError(err)
	s.Equal(registration.ID, found.ID)

	_, err = s.store.FindBySupplier(s.ctx, id.NewSupplierID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestExecuteCommitsOnSuccess() {
	registration := s.newRegistration()
	s.Require().NoError(s.store.Create(s.ctx, registration))

	updated, err := s.store.Execute(s.ctx, registration.SupplierID, func(r *models.Registration) error {
		return r.SetPricing(5000, "USD", time.Now())
	})
	s.Require().NoError(err)
	s.Equal(int64(5000), updated.PriceAmount)

	found, err := s.store.FindBySupplier(s.ctx, registration.SupplierID)
	s.Require().NoError(err)
	s.Equal(int64(5000), found.PriceAmount)
}

func (s *InMemoryStoreSuite) TestExecuteRollsBackOnError() {
	registration := s.newRegistration()
	s.Require().NoError(s.store.Create(s.ctx, registration))

	boom := errors.New("boom")
	_, err := s.store.Execute(s.ctx, registration.SupplierID, func(r *models.Registration) error {
		s.Require().NoError(r.SetPricing(5000, "USD", time.Now()))
		return boom
	})
	s.ErrorIs(err, boom)

	found, err := s.store.FindBySupplier(s.ctx, registration.SupplierID)
	s.Require().NoError(err)
	s.Zero(found.PriceAmount)
}

func (s *InMemoryStoreSuite) TestReturnedRecordsAreDetached() {
	registration := s.newRegistration()
	s.Require().NoError(s.store.Create(s.ctx, registration))

	found, err := s.store.FindBySupplier(s.ctx, registration.SupplierID)
	s.Require().NoError(err)
	found.CategoryName = "mutated"

	again, err := s.store.FindBySupplier(s.ctx, registration.SupplierID)
	s.Require().NoError(err)
	s.Empty(again.CategoryName)
}
