package handler

import (
	"time"

	"supplierhub/internal/registration/models"
)

// RegistrationResponse is the HTTP representation of a registration record.
type RegistrationResponse struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	CategoryName  string          `json:"category_name,omitempty"`
	Subcategories []string        `json:"subcategories,omitempty"`
	Pricing       *PricingBody    `json:"pricing,omitempty"`
	AvailableDays []string        `json:"available_days,omitempty"`
	Photos        []PhotoResponse `json:"photos"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PricingBody is the pricing portion of a registration response.
type PricingBody struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PhotoResponse is one portfolio photo in a registration response.
type PhotoResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// FromRegistration maps the aggregate to its response body.
func FromRegistration(r *models.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:            r.ID.String(),
		Status:        string(r.Status),
		CategoryName:  r.CategoryName,
		Subcategories: r.Subcategories,
		Photos:        make([]PhotoResponse, 0, len(r.Photos)),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.PriceAmount > 0 {
		resp.Pricing = &PricingBody{Amount: r.PriceAmount, Currency: r.PriceCurrency}
	}
	for _, day := range r.AvailableDays {
		resp.AvailableDays = append(resp.AvailableDays, string(day))
	}
	for _, photo := range r.Photos {
		resp.Photos = append(resp.Photos, PhotoResponse{ID: photo.ID, URL: photo.URL, Position: photo.Position})
	}
	return resp
}
