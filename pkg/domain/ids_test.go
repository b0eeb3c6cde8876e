package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "supplierhub/pkg/domain-errors"
)

// TestParseID_Invariants validates the boundary invariant: IDs must be
// valid, non-nil UUIDs.
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseSupplierID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseSupplierID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseSupplierID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseSupplierID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, SupplierID(valid), id)
	})
}

// TestTypeDistinction verifies the compiler enforces type safety between
// ID kinds. If this compiles, the invariant holds.
func TestTypeDistinction(t *testing.T) {
	supplierID := SupplierID(uuid.New())
	categoryID := CategoryID(uuid.New())

	// These would fail to compile if types were interchangeable:
	// var _ SupplierID = categoryID // compile error
	// var _ CategoryID = supplierID // compile error

	assert.NotEqual(t, uuid.UUID(supplierID), uuid.UUID(categoryID))
}

func TestIDTextRoundTrip(t *testing.T) {
	id := NewRegistrationID()

	b, err := id.MarshalText()
	require.NoError(t, err)

	var back RegistrationID
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, id, back)
}
