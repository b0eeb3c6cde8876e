package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"supplierhub/internal/events"
	"supplierhub/internal/payment/models"
	"supplierhub/internal/payment/store"
	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
)

type capturingPublisher struct {
	published []events.Event
}

func (p *capturingPublisher) Publish(_ context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

type PaymentServiceSuite struct {
	suite.Suite
	ctx        context.Context
	service    *Service
	publisher  *capturingPublisher
	supplierID id.SupplierID
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.publisher = &capturingPublisher{}
	s.service = New(store.NewInMemory(), WithPublisher(s.publisher))
	s.supplierID = id.NewSupplierID()
}

func (s *PaymentServiceSuite) add(params AddParams) *models.PaymentMethod {
	method, err := s.service.Add(s.ctx, s.supplierID, params)
	s.Require().NoError(err)
	return method
}

func validCard() AddParams {
	return AddParams{Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2030}
}

func (s *PaymentServiceSuite) TestFirstMethodBecomesDefault() {
	method := s.add(validCard())
	s.True(method.Default)

	s.Require().Len(s.publisher.published, 1)
	s.Equal(events.KindPaymentMethodAdded, s.publisher.published[0].Kind)
	s.Equal("4242", s.publisher.published[0].Payload["last4"])
}

func (s *PaymentServiceSuite) TestAtMostOneDefault() {
	first := s.add(validCard())

	second := validCard()
	second.Last4 = "1111"
	second.Default = true
	added := s.add(second)
	s.True(added.Default)

	methods, err := s.service.List(s.ctx, s.supplierID)
	s.Require().NoError(err)
	s.Require().Len(methods, 2)

	defaults := 0
	for _, method := range methods {
		if method.Default {
			defaults++
			s.Equal(added.ID, method.ID)
		}
	}
	s.Equal(1, defaults)
	s.NotEqual(first.ID, methods[0].ID) // default sorts first
}

func (s *PaymentServiceSuite) TestRemovingDefaultPromotesNothing() {
	first := s.add(validCard())
	second := validCard()
	second.Last4 = "1111"
	s.add(second)

	s.Require().NoError(s.service.Remove(s.ctx, s.supplierID, first.ID))

	methods, err := s.service.List(s.ctx, s.supplierID)
	s.Require().NoError(err)
	s.Require().Len(methods, 1)
	s.False(methods[0].Default)
}

func (s *PaymentServiceSuite) TestSetDefault() {
	s.add(validCard())
	second := validCard()
	second.Last4 = "1111"
	added := s.add(second)

	s.Require().NoError(s.service.SetDefault(s.ctx, s.supplierID, added.ID))

	methods, err := s.service.List(s.ctx, s.supplierID)
	s.Require().NoError(err)
	s.Equal(added.ID, methods[0].ID)
	s.True(methods[0].Default)

	err = s.service.SetDefault(s.ctx, s.supplierID, id.NewPaymentMethodID())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *PaymentServiceSuite) TestInvalidCardsRejected() {
	cases := map[string]AddParams{
		"bad last4":  {Brand: "visa", Last4: "42", ExpMonth: 12, ExpYear: 2030},
		"bad month":  {Brand: "visa", Last4: "4242", ExpMonth: 13, ExpYear: 2030},
		"past year":  {Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2019},
		"no brand":   {Brand: "  ", Last4: "4242", ExpMonth: 12, ExpYear: 2030},
		"far future": {Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2090},
	}
	for name, params := range cases {
		_, err := s.service.Add(s.ctx, s.supplierID, params)
		s.Require().Error(err, name)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput), name)
	}
	s.Empty(s.publisher.published)
}

func (s *PaymentServiceSuite) TestWalletsAreIsolated() {
	s.add(validCard())

	other := id.NewSupplierID()
	methods, err := s.service.List(s.ctx, other)
	s.Require().NoError(err)
	s.Empty(methods)

	err = s.service.Remove(s.ctx, other, id.NewPaymentMethodID())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
