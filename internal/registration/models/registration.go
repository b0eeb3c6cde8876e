package models

import (
	"strings"
	"time"

	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
)

// Status tracks the registration lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

// Weekday is a day-of-week availability flag, stored as its lowercase
// English name so rows and payloads stay readable.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var validWeekdays = map[Weekday]struct{}{
	Monday: {}, Tuesday: {}, Wednesday: {}, Thursday: {}, Friday: {}, Saturday: {}, Sunday: {},
}

// ParseWeekday validates a day name.
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := validWeekdays[d]; !ok {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown weekday %q", s)
	}
	return d, nil
}

// MaxPhotos bounds the portfolio size per registration.
const MaxPhotos = 9

// Photo is portfolio photo metadata. The binary lives in external
// storage; this service only tracks the reference and display order.
type Photo struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Registration is the aggregate root for a supplier's onboarding record.
//
// Invariants:
//   - Status transitions: draft -> submitted only
//   - Submitted registrations are immutable
//   - Submission requires a saved category selection, a positive price,
//     and at least one available weekday
//   - AvailableDays holds no duplicates
//   - At most MaxPhotos photos
type Registration struct {
	ID            id.RegistrationID `json:"id"`
	SupplierID    id.SupplierID     `json:"supplier_id"`
	Status        Status            `json:"status"`
	CategoryName  string            `json:"category_name,omitempty"`
	Subcategories []string          `json:"subcategories,omitempty"`
	PriceAmount   int64             `json:"price_amount"`
	PriceCurrency string            `json:"price_currency,omitempty"`
	AvailableDays []Weekday         `json:"available_days,omitempty"`
	Photos        []Photo           `json:"photos,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func NewRegistration(registrationID id.RegistrationID, supplierID id.SupplierID, now time.Time) (*Registration, error) {
	if supplierID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "registration needs a supplier")
	}
	return &Registration{
		ID:         registrationID,
		SupplierID: supplierID,
		Status:     StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (r *Registration) requireDraft() error {
	if r.Status != StatusDraft {
		return dErrors.New(dErrors.CodeConflict, "registration is already submitted")
	}
	return nil
}

// ApplyCategorySelection stores the confirmed selection snapshot.
func (r *Registration) ApplyCategorySelection(categoryName string, subcategories []string, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	if categoryName == "" || len(subcategories) == 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "category selection must name a category and at least one subcategory")
	}
	r.CategoryName = categoryName
	r.Subcategories = append([]string(nil), subcategories...)
	r.UpdatedAt = now
	return nil
}

// SetPricing stores the supplier's base price in minor units.
func (r *Registration) SetPricing(amount int64, currency string, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	if amount <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "price must be positive")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return dErrors.New(dErrors.CodeInvalidInput, "currency must be a 3-letter code")
	}
	r.PriceAmount = amount
	r.PriceCurrency = currency
	r.UpdatedAt = now
	return nil
}

// SetAvailability replaces the available weekday set. Duplicates are
// collapsed; order of first mention is kept for display.
func (r *Registration) SetAvailability(days []Weekday, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	seen := make(map[Weekday]struct{}, len(days))
	deduped := make([]Weekday, 0, len(days))
	for _, day := range days {
		if _, ok := validWeekdays[day]; !ok {
			return dErrors.Newf(dErrors.CodeInvalidInput, "unknown weekday %q", day)
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		deduped = append(deduped, day)
	}
	r.AvailableDays = deduped
	r.UpdatedAt = now
	return nil
}

// AddPhoto appends photo metadata at the end of the portfolio.
func (r *Registration) AddPhoto(photoID, url string, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	if url == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "photo url is required")
	}
	if len(r.Photos) >= MaxPhotos {
		return dErrors.Newf(dErrors.CodeInvalidState, "portfolio is limited to %d photos", MaxPhotos)
	}
	r.Photos = append(r.Photos, Photo{ID: photoID, URL: url, Position: len(r.Photos)})
	r.UpdatedAt = now
	return nil
}

// RemovePhoto deletes by photo ID and compacts display positions.
func (r *Registration) RemovePhoto(photoID string, now time.Time) error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	kept := r.Photos[:0]
	found := false
	for _, photo := range r.Photos {
		if photo.ID == photoID {
			found = true
			continue
		}
		photo.Position = len(kept)
		kept = append(kept, photo)
	}
	if !found {
		return dErrors.New(dErrors.CodeNotFound, "photo not found")
	}
	r.Photos = kept
	r.UpdatedAt = now
	return nil
}

// CanSubmit checks whether the draft is complete enough to go live.
func (r *Registration) CanSubmit() error {
	if err := r.requireDraft(); err != nil {
		return err
	}
	if r.CategoryName == "" || len(r.Subcategories) == 0 {
		return dErrors.New(dErrors.CodeInvalidState, "category selection is missing")
	}
	if r.PriceAmount <= 0 {
		return dErrors.New(dErrors.CodeInvalidState, "pricing is missing")
	}
	if len(r.AvailableDays) == 0 {
		return dErrors.New(dErrors.CodeInvalidState, "availability is missing")
	}
	return nil
}

// ApplySubmit transitions the draft to submitted. Call CanSubmit first.
func (r *Registration) ApplySubmit(now time.Time) {
	r.Status = StatusSubmitted
	r.UpdatedAt = now
}
