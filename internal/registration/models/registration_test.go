package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
)

func newDraft(t *testing.T) *Registration {
	t.Helper()
	r, err := NewRegistration(id.NewRegistrationID(), id.NewSupplierID(), time.Now())
	require.NoError(t, err)
	return r
}

func completeDraft(t *testing.T) *Registration {
	t.Helper()
	now := time.Now()
	r := newDraft(t)
	require.NoError(t, r.ApplyCategorySelection("Photography", []string{"Weddings"}, now))
	require.NoError(t, r.SetPricing(25000, "usd", now))
	require.NoError(t, r.SetAvailability([]Weekday{Saturday, Sunday}, now))
	return r
}

func TestSubmitRequiresCompleteDraft(t *testing.T) {
	now := time.Now()

	t.Run("empty draft cannot submit", func(t *testing.T) {
		r := newDraft(t)
		err := r.CanSubmit()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	t.Run("category alone is not enough", func(t *testing.T) {
		r := newDraft(t)
		require.NoError(t, r.ApplyCategorySelection("Photography", []string{"Weddings"}, now))
		require.Error(t, r.CanSubmit())
	})

	t.Run("complete draft submits once", func(t *testing.T) {
		r := completeDraft(t)
		require.NoError(t, r.CanSubmit())
		r.ApplySubmit(now)
		assert.Equal(t, StatusSubmitted, r.Status)

		// Submitted records are immutable.
		err := r.SetPricing(30000, "USD", now)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func TestSetPricing(t *testing.T) {
	now := time.Now()
	r := newDraft(t)

	require.NoError(t, r.SetPricing(25000, " usd ", now))
	assert.Equal(t, int64(25000), r.PriceAmount)
	assert.Equal(t, "USD", r.PriceCurrency)

	require.Error(t, r.SetPricing(0, "USD", now))
	require.Error(t, r.SetPricing(100, "dollars", now))
}

func TestSetAvailabilityDeduplicates(t *testing.T) {
	r := newDraft(t)

	require.NoError(t, r.SetAvailability([]Weekday{Saturday, Sunday, Saturday}, time.Now()))
	assert.Equal(t, []Weekday{Saturday, Sunday}, r.AvailableDays)

	err := r.SetAvailability([]Weekday{"caturday"}, time.Now())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestPhotoManagement(t *testing.T) {
	now := time.Now()

	t.Run("append assigns positions", func(t *testing.T) {
		r := newDraft(t)
		require.NoError(t, r.AddPhoto("p1", "https://cdn.example.com/1.jpg", now))
		require.NoError(t, r.AddPhoto("p2", "https://cdn.example.com/2.jpg", now))
		assert.Equal(t, 0, r.Photos[0].Position)
		assert.Equal(t, 1, r.Photos[1].Position)
	})

	t.Run("remove compacts positions", func(t *testing.T) {
		r := newDraft(t)
		require.NoError(t, r.AddPhoto("p1", "https://cdn.example.com/1.jpg", now))
		require.NoError(t, r.AddPhoto("p2", "https://cdn.example.com/2.jpg", now))
		require.NoError(t, r.AddPhoto("p3", "https://cdn.example.com/3.jpg", now))

		require.NoError(t, r.RemovePhoto("p2", now))
		require.Len(t, r.Photos, 2)
		assert.Equal(t, "p1", r.Photos[0].ID)
		assert.Equal(t, "p3", r.Photos[1].ID)
		assert.Equal(t, 1, r.Photos[1].Position)
	})

	t.Run("removing unknown photo fails", func(t *testing.T) {
		r := newDraft(t)
		err := r.RemovePhoto("ghost", now)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("portfolio is capped", func(t *testing.T) {
		r := newDraft(t)
		for i := 0; i < MaxPhotos; i++ {
			require.NoError(t, r.AddPhoto("", "https://cdn.example.com/x.jpg", now))
		}
		err := r.AddPhoto("", "https://cdn.example.com/overflow.jpg", now)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday(" Saturday ")
	require.NoError(t, err)
	assert.Equal(t, Saturday, day)

	_, err = ParseWeekday("someday")
	require.Error(t, err)
}
