package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplierhub/internal/events"
	"supplierhub/internal/notification/models"
	"supplierhub/internal/notification/store"
	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
)

func TestHandleBuildsInboxEntries(t *testing.T) {
	ctx := context.Background()
	service := New(store.NewInMemory())
	supplierID := id.NewSupplierID()
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	require.NoError(t, service.Handle(ctx, events.Event{
		Kind:       events.KindRegistrationSubmitted,
		SupplierID: supplierID,
		Subject:    "Photography",
		At:         at,
	}))
	require.NoError(t, service.Handle(ctx, events.Event{
		Kind:       events.KindPaymentMethodAdded,
		SupplierID: supplierID,
		Payload:    map[string]string{"brand": "visa", "last4": "4242"},
		At:         at.Add(time.Minute),
	}))
	// Events without an inbox rendering are silently skipped.
	require.NoError(t, service.Handle(ctx, events.Event{
		Kind:       events.KindRegistrationStarted,
		SupplierID: supplierID,
		At:         at,
	}))

	inbox, err := service.List(ctx, supplierID)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, models.KindPaymentMethodChanged, inbox[0].Kind)
	assert.Contains(t, inbox[0].Body, "4242")
	assert.Equal(t, models.KindRegistrationSubmitted, inbox[1].Kind)
	assert.Contains(t, inbox[1].Body, "Photography")
}

func TestListOrdersUnreadFirst(t *testing.T) {
	ctx := context.Background()
	service := New(store.NewInMemory())
	supplierID := id.NewSupplierID()
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, service.Handle(ctx, events.Event{
			Kind:       events.KindRegistrationSubmitted,
			SupplierID: supplierID,
			Subject:    "Catering",
			At:         at.Add(time.Duration(i) * time.Minute),
		}))
	}

	inbox, err := service.List(ctx, supplierID)
	require.NoError(t, err)
	require.Len(t, inbox, 3)

	// Read the newest; it moves behind the unread ones.
	require.NoError(t, service.MarkRead(ctx, supplierID, inbox[0].ID))

	inbox, err = service.List(ctx, supplierID)
	require.NoError(t, err)
	assert.False(t, inbox[0].IsRead())
	assert.False(t, inbox[1].IsRead())
	assert.True(t, inbox[2].IsRead())
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	service := New(store.NewInMemory())
	supplierID := id.NewSupplierID()

	for i := 0; i < 2; i++ {
		require.NoError(t, service.Handle(ctx, events.Event{
			Kind:       events.KindSelectionConfirmed,
			SupplierID: supplierID,
			Subject:    "Venues",
			At:         time.Now(),
		}))
	}

	marked, err := service.MarkAllRead(ctx, supplierID)
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	// Second pass finds nothing unread.
	marked, err = service.MarkAllRead(ctx, supplierID)
	require.NoError(t, err)
	assert.Zero(t, marked)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	ctx := context.Background()
	service := New(store.NewInMemory())

	err := service.MarkRead(ctx, id.NewSupplierID(), id.NewNotificationID())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
