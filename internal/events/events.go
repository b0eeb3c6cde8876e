// Package events carries domain events between modules. Services emit
// facts; sinks (notification builder, Kafka) consume them without the
// emitting service knowing who listens.
package events

import (
	"context"
	"time"

	id "supplierhub/pkg/domain"
)

// Kind names a domain event.
type Kind string

const (
	KindSelectionConfirmed    Kind = "selection.confirmed"
	KindRegistrationStarted   Kind = "registration.started"
	KindRegistrationSubmitted Kind = "registration.submitted"
	KindPaymentMethodAdded    Kind = "payment.method_added"
	KindPaymentMethodRemoved  Kind = "payment.method_removed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Kind       Kind              `json:"kind"`
	SupplierID id.SupplierID     `json:"supplier_id"`
	Subject    string            `json:"subject"`
	Payload    map[string]string `json:"payload,omitempty"`
	At         time.Time         `json:"at"`
}

// Publisher accepts domain events. Implementations must not block the
// emitting request path.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Sink consumes events drained from the bus.
type Sink interface {
	Handle(ctx context.Context, event Event) error
}
