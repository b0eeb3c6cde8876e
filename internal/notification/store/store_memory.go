package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"supplierhub/internal/notification/models"
	id "supplierhub/pkg/domain"
	"supplierhub/pkg/platform/sentinel"
)

// InMemory keeps per-supplier notification inboxes in process memory.
type InMemory struct {
	mu      sync.RWMutex
	inboxes map[id.SupplierID][]models.Notification
}

func NewInMemory() *InMemory {
	return &InMemory{inboxes: make(map[id.SupplierID][]models.Notification)}
}

// Append adds a notification to the supplier's inbox.
func (s *InMemory) Append(_ context.Context, notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inboxes[notification.SupplierID] = append(s.inboxes[notification.SupplierID], *notification)
	return nil
}

// ListBySupplier returns the inbox unread first, newest first within
// each group. That is the order the inbox screen renders.
func (s *InMemory) ListBySupplier(_ context.Context, supplierID id.SupplierID) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inbox := append([]models.Notification(nil), s.inboxes[supplierID]...)
	sort.SliceStable(inbox, func(i, j int) bool {
		if inbox[i].IsRead() != inbox[j].IsRead() {
			return !inbox[i].IsRead()
		}
		return inbox[i].CreatedAt.After(inbox[j].CreatedAt)
	})
	return inbox, nil
}

// MarkRead stamps one notification as read.
func (s *InMemory) MarkRead(_ context.Context, supplierID id.SupplierID, notificationID id.NotificationID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inbox := s.inboxes[supplierID]
	for i := range inbox {
		if inbox[i].ID == notificationID {
			inbox[i].MarkRead(now)
			return nil
		}
	}
	return sentinel.ErrNotFound
}

// MarkAllRead stamps every unread notification in the inbox.
func (s *InMemory) MarkAllRead(_ context.Context, supplierID id.SupplierID, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	inbox := s.inboxes[supplierID]
	for i := range inbox {
		if !inbox[i].IsRead() {
			inbox[i].MarkRead(now)
			marked++
		}
	}
	return marked, nil
}
