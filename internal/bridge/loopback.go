package bridge

import (
	"encoding/json"
	"sync"
	"time"
)

// LoopbackTransport is an in-process transport pair. Tests and local runs
// inject inbound events and inspect the outbound stream without a host.
type LoopbackTransport struct {
	mu        sync.Mutex
	sent      []Envelope
	eventCh   chan Event
	connected bool
	closed    bool
}

// NewLoopback creates a loopback transport with a buffered inbound channel.
func NewLoopback() *LoopbackTransport {
	return &LoopbackTransport{
		eventCh: make(chan Event, eventChSize),
	}
}

// Connect marks the transport available.
func (t *LoopbackTransport) Connect() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connected = true
	return nil
}

// Send records the outbound envelope. Returns ErrBridgeUnavailable before
// Connect or after Close.
func (t *LoopbackTransport) Send(event string, payload any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.connected || t.closed {
		return ErrBridgeUnavailable
	}
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		return err
	}
	var env Envelope
	_ = json.Unmarshal(data, &env)
	t.sent = append(t.sent, env)
	return nil
}

// Inject delivers an inbound event as if it came from the host.
func (t *LoopbackTransport) Inject(event string, payload any) error {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		return err
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	t.eventCh <- Event{Name: env.Event, Payload: env.Data, Timestamp: time.Now()}
	return nil
}

// Events returns the inbound event channel. Closed on Close.
func (t *LoopbackTransport) Events() <-chan Event {
	return t.eventCh
}

// Sent returns a copy of every outbound envelope recorded so far.
func (t *LoopbackTransport) Sent() []Envelope {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Envelope, len(t.sent))
	copy(out, t.sent)
	return out
}

// SentNamed returns the outbound envelopes with the given event name.
func (t *LoopbackTransport) SentNamed(event string) []Envelope {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Envelope
	for _, env := range t.sent {
		if env.Event == event {
			out = append(out, env)
		}
	}
	return out
}

// Close shuts the transport down.
func (t *LoopbackTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	t.connected = false
	close(t.eventCh)
	return nil
}
