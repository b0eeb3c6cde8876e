package models

import (
	"strings"
	"time"

	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
)

// PaymentMethod is display metadata for a stored payout card. Card
// entry and charging happen in the payment provider; this service only
// keeps what the app renders.
//
// Invariants:
//   - at most one default method per supplier
//   - Last4 is exactly four digits
//   - expiry is a valid month/year pair
type PaymentMethod struct {
	ID         id.PaymentMethodID `json:"id"`
	SupplierID id.SupplierID      `json:"supplier_id"`
	Brand      string             `json:"brand"`
	Last4      string             `json:"last4"`
	ExpMonth   int                `json:"exp_month"`
	ExpYear    int                `json:"exp_year"`
	Default    bool               `json:"default"`
	CreatedAt  time.Time          `json:"created_at"`
}

func NewPaymentMethod(methodID id.PaymentMethodID, supplierID id.SupplierID, brand, last4 string, expMonth, expYear int, now time.Time) (*PaymentMethod, error) {
	if supplierID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "payment method needs a supplier")
	}
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "brand is required")
	}
	if !isFourDigits(last4) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "last4 must be exactly four digits")
	}
	if expMonth < 1 || expMonth > 12 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "exp_month must be between 1 and 12")
	}
	if expYear < now.Year() || expYear > now.Year()+30 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "exp_year is out of range")
	}
	return &PaymentMethod{
		ID:         methodID,
		SupplierID: supplierID,
		Brand:      brand,
		Last4:      last4,
		ExpMonth:   expMonth,
		ExpYear:    expYear,
		CreatedAt:  now,
	}, nil
}

// IsExpired reports whether the card expired before now. A card is
// valid through the last day of its expiry month.
func (m *PaymentMethod) IsExpired(now time.Time) bool {
	if m.ExpYear != now.Year() {
		return m.ExpYear < now.Year()
	}
	return time.Month(m.ExpMonth) < now.Month()
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
