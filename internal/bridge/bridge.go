// Package bridge is the single abstraction over the host message channel.
// The concrete transport is a startup-time configuration choice, never a
// runtime probe.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrBridgeUnavailable is returned when the host channel is not present at
// call time. No progress is possible until the host reconnects.
var ErrBridgeUnavailable = errors.New("host bridge unavailable")

// Event is one inbound named event from the host.
type Event struct {
	Name      string
	Payload   json.RawMessage
	Timestamp time.Time
}

// Envelope is the wire shape for both directions: one JSON object per
// message carrying the event name and its payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Sender forwards an outbound event to the host.
type Sender interface {
	Send(event string, payload any) error
}

// Transport is a concrete host channel.
type Transport interface {
	Sender
	Connect() error
	Events() <-chan Event
	Close() error
}

// marshalEnvelope builds a JSON-encoded Envelope from an event name and payload.
func marshalEnvelope(event string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s payload: %w", event, err)
		}
		raw = data
	}
	env := Envelope{Event: event, Data: raw}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", event, err)
	}
	return data, nil
}
