// Package domain holds typed identifiers shared across modules.
//
// Each ID is a distinct type over uuid.UUID so a SupplierID cannot be
// passed where a RegistrationID is expected. Parse functions validate at
// the trust boundary; internal code constructs IDs by casting uuid.New().
package domain

import (
	"github.com/google/uuid"

	dErrors "supplierhub/pkg/domain-errors"
)

type (
	// SupplierID identifies a supplier account.
	SupplierID uuid.UUID
	// CategoryID identifies a catalog category.
	CategoryID uuid.UUID
	// RegistrationID identifies an onboarding registration record.
	RegistrationID uuid.UUID
	// PaymentMethodID identifies a stored payment method.
	PaymentMethodID uuid.UUID
	// NotificationID identifies an inbox notification.
	NotificationID uuid.UUID
)

func (id SupplierID) String() string      { return uuid.UUID(id).String() }
func (id CategoryID) String() string      { return uuid.UUID(id).String() }
func (id RegistrationID) String() string  { return uuid.UUID(id).String() }
func (id PaymentMethodID) String() string { return uuid.UUID(id).String() }
func (id NotificationID) String() string  { return uuid.UUID(id).String() }

func (id SupplierID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id CategoryID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id RegistrationID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id PaymentMethodID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id NotificationID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }

// MarshalText/UnmarshalText keep IDs as canonical UUID strings in JSON
// payloads; defined types do not inherit uuid.UUID's methods.

func (id SupplierID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *SupplierID) UnmarshalText(b []byte) error {
	v, err := ParseSupplierID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id CategoryID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *CategoryID) UnmarshalText(b []byte) error {
	v, err := ParseCategoryID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id RegistrationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *RegistrationID) UnmarshalText(b []byte) error {
	v, err := ParseRegistrationID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id PaymentMethodID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *PaymentMethodID) UnmarshalText(b []byte) error {
	v, err := ParsePaymentMethodID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id NotificationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *NotificationID) UnmarshalText(b []byte) error {
	v, err := ParseNotificationID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func parse(kind, s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s", kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s must not be nil", kind)
	}
	return u, nil
}

// ParseSupplierID validates and returns a SupplierID.
func ParseSupplierID(s string) (SupplierID, error) {
	u, err := parse("supplier id", s)
	return SupplierID(u), err
}

// ParseCategoryID validates and returns a CategoryID.
func ParseCategoryID(s string) (CategoryID, error) {
	u, err := parse("category id", s)
	return CategoryID(u), err
}

// ParseRegistrationID validates and returns a RegistrationID.
func ParseRegistrationID(s string) (RegistrationID, error) {
	u, err := parse("registration id", s)
	return RegistrationID(u), err
}

// ParsePaymentMethodID validates and returns a PaymentMethodID.
func ParsePaymentMethodID(s string) (PaymentMethodID, error) {
	u, err := parse("payment method id", s)
	return PaymentMethodID(u), err
}

// ParseNotificationID validates and returns a NotificationID.
func ParseNotificationID(s string) (NotificationID, error) {
	u, err := parse("notification id", s)
	return NotificationID(u), err
}

// NewSupplierID returns a fresh random SupplierID.
func NewSupplierID() SupplierID { return SupplierID(uuid.New()) }

// NewCategoryID returns a fresh random CategoryID.
func NewCategoryID() CategoryID { return CategoryID(uuid.New()) }

// NewRegistrationID returns a fresh random RegistrationID.
func NewRegistrationID() RegistrationID { return RegistrationID(uuid.New()) }

// NewPaymentMethodID returns a fresh random PaymentMethodID.
func NewPaymentMethodID() PaymentMethodID { return PaymentMethodID(uuid.New()) }

// NewNotificationID returns a fresh random NotificationID.
func NewNotificationID() NotificationID { return NotificationID(uuid.New()) }
