package handler

import (
	"net/url"
	"strings"

	"supplierhub/internal/registration/models"
	dErrors "supplierhub/pkg/domain-errors"
)

// SavePricingRequest is the HTTP request body for
// PUT /onboarding/{supplierID}/registration/pricing.
type SavePricingRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Validate validates the request. Detailed pricing rules live on the
// aggregate; the handler only rejects the obviously empty.
func (r *SavePricingRequest) Validate() error {
	r.Currency = strings.TrimSpace(r.Currency)
	if r.Currency == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "currency is required")
	}
	return nil
}

// SetAvailabilityRequest is the HTTP request body for
// PUT /onboarding/{supplierID}/registration/availability.
type SetAvailabilityRequest struct {
	Days []string `json:"days"`

	parsedDays []models.Weekday
}

// Validate validates and parses the request.
func (r *SetAvailabilityRequest) Validate() error {
	if len(r.Days) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "days is required")
	}
	r.parsedDays = make([]models.Weekday, 0, len(r.Days))
	for _, raw := range r.Days {
		day, err := models.ParseWeekday(raw)
		if err != nil {
			return err
		}
		r.parsedDays = append(r.parsedDays, day)
	}
	return nil
}

// ParsedDays returns the validated weekdays.
func (r *SetAvailabilityRequest) ParsedDays() []models.Weekday {
	return r.parsedDays
}

// AddPhotoRequest is the HTTP request body for
// POST /onboarding/{supplierID}/registration/photos.
type AddPhotoRequest struct {
	URL string `json:"url"`
}

// Validate validates the request.
func (r *AddPhotoRequest) Validate() error {
	r.URL = strings.TrimSpace(r.URL)
	if r.URL == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "url is required")
	}
	parsed, err := url.Parse(r.URL)
	if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "url must be an absolute https URL")
	}
	return nil
}
