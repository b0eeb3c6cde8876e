package events

import (
	"context"
	"log/slog"
)

// Worker drains the bus and fans each event out to the configured
// sinks. A failing sink is logged and skipped; one slow consumer must
// not starve the others of events.
type Worker struct {
	bus    *Bus
	sinks  []Sink
	logger *slog.Logger
}

func NewWorker(bus *Bus, logger *slog.Logger, sinks ...Sink) *Worker {
	return &Worker{bus: bus, sinks: sinks, logger: logger}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.bus.C():
			for _, sink := range w.sinks {
				if err := sink.Handle(ctx, event); err != nil && w.logger != nil {
					w.logger.WarnContext(ctx, "event sink failed",
						"kind", event.Kind,
						"supplier_id", event.SupplierID.String(),
						"error", err,
					)
				}
			}
		}
	}
}
