package handler

import (
	"strings"

	"supplierhub/internal/payment/models"
	dErrors "supplierhub/pkg/domain-errors"
)

// AddMethodRequest is the HTTP request body for
// POST /suppliers/{supplierID}/payment-methods.
type AddMethodRequest struct {
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
	Default  bool   `json:"default"`
}

// Validate performs shape checks; card rules live on the model.
func (r *AddMethodRequest) Validate() error {
	r.Brand = strings.TrimSpace(r.Brand)
	if r.Brand == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "brand is required")
	}
	r.Last4 = strings.TrimSpace(r.Last4)
	if r.Last4 == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "last4 is required")
	}
	return nil
}

// ListResponse is the HTTP response body for the wallet listing.
type ListResponse struct {
	Methods []models.PaymentMethod `json:"methods"`
}
