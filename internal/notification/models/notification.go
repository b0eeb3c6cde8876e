package models

import (
	"strings"
	"time"

	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
)

// Kind labels a notification for client-side grouping and icons.
type Kind string

const (
	KindRegistrationSubmitted Kind = "registration_submitted"
	KindSelectionConfirmed    Kind = "selection_confirmed"
	KindPaymentMethodChanged  Kind = "payment_method_changed"
	KindGeneral               Kind = "general"
)

// Notification is one entry in a supplier's inbox.
type Notification struct {
	ID         id.NotificationID `json:"id"`
	SupplierID id.SupplierID     `json:"supplier_id"`
	Kind       Kind              `json:"kind"`
	Title      string            `json:"title"`
	Body       string            `json:"body,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	ReadAt     *time.Time        `json:"read_at,omitempty"`
}

func NewNotification(notificationID id.NotificationID, supplierID id.SupplierID, kind Kind, title, body string, now time.Time) (*Notification, error) {
	if supplierID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "notification needs a supplier")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "title is required")
	}
	return &Notification{
		ID:         notificationID,
		SupplierID: supplierID,
		Kind:       kind,
		Title:      title,
		Body:       strings.TrimSpace(body),
		CreatedAt:  now,
	}, nil
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkRead stamps the read time once; re-reading keeps the first stamp.
func (n *Notification) MarkRead(now time.Time) {
	if n.ReadAt == nil {
		n.ReadAt = &now
	}
}
