package events

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var droppedEvents = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplierhub_events_dropped_total",
	Help: "Domain events dropped because the bus buffer was full",
})

// Bus is a buffered in-process event channel. Publish never blocks the
// request path: when the buffer is full the event is dropped and
// counted. Events here drive conveniences (inbox notifications, the
// Kafka mirror), not correctness, so losing one under pressure beats
// stalling a request.
type Bus struct {
	ch chan Event
}

// NewBus creates a bus with the given buffer size.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 256
	}
	return &Bus{ch: make(chan Event, buffer)}
}

// Publish enqueues the event, stamping At when unset.
func (b *Bus) Publish(_ context.Context, event Event) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	select {
	case b.ch <- event:
	default:
		droppedEvents.Inc()
	}
	return nil
}

// C exposes the drain side for the worker.
func (b *Bus) C() <-chan Event {
	return b.ch
}
