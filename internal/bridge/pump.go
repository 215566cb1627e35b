package bridge

import (
	"log/slog"

	"github.com/barleyrp/overlay/internal/dispatcher"
)

// Tap observes every inbound event before dispatch (diagnostics journal,
// metrics). Taps must not mutate the event.
type Tap func(Event)

// Pump drains the transport's inbound events into the dispatcher, one at a
// time, preserving arrival order. Unknown events and handler failures are
// logged and dropped; neither mutates state or reaches the user.
// Returns when the transport's event channel closes.
func Pump(t Transport, d *dispatcher.Dispatcher, logger *slog.Logger, taps ...Tap) {
	for e := range t.Events() {
		for _, tap := range taps {
			tap(e)
		}
		if _, err := d.Dispatch(dispatcher.Event{
			Name:      e.Name,
			Payload:   e.Payload,
			Timestamp: e.Timestamp,
		}); err != nil {
			logger.Warn("Inbound event ignored", "event", e.Name, "error", err)
		}
	}
	logger.Info("Bridge event channel closed, pump exiting")
}
