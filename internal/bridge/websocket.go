package bridge

import (
	"log/slog"
	"sync/atomic"
)

// WebSocketConfig holds websocket transport settings.
type WebSocketConfig struct {
	URL    string
	Secret string
}

// WebSocketTransport carries the event channel over a WebSocket to the game
// host. Link-level reconnects happen beneath the event contract; the core
// never retries events itself.
type WebSocketTransport struct {
	conn      *connection
	cfg       WebSocketConfig
	connected atomic.Bool
}

// NewWebSocket creates a websocket transport.
func NewWebSocket(cfg WebSocketConfig, logger *slog.Logger) *WebSocketTransport {
	return &WebSocketTransport{
		conn: newConnection(logger),
		cfg:  cfg,
	}
}

// Connect dials the host.
func (t *WebSocketTransport) Connect() error {
	if err := t.conn.dial(t.cfg.URL, t.cfg.Secret); err != nil {
		return err
	}
	t.connected.Store(true)
	return nil
}

// Send marshals the event into an envelope and pushes it to the write loop
// (fire-and-forget). Returns ErrBridgeUnavailable before Connect succeeds.
func (t *WebSocketTransport) Send(event string, payload any) error {
	if !t.connected.Load() {
		return ErrBridgeUnavailable
	}
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		return err
	}
	t.conn.send(data)
	return nil
}

// Announce sends the session hello and caches it for reconnect replay.
func (t *WebSocketTransport) Announce(payload any) error {
	if !t.connected.Load() {
		return ErrBridgeUnavailable
	}
	data, err := marshalEnvelope("overlay:hello", payload)
	if err != nil {
		return err
	}

	t.conn.mu.Lock()
	t.conn.cachedHelloMsg = data
	t.conn.mu.Unlock()

	t.conn.send(data)
	return nil
}

// Events returns the inbound event channel. Closed on Close.
func (t *WebSocketTransport) Events() <-chan Event {
	return t.conn.eventCh
}

// Close disconnects from the host.
func (t *WebSocketTransport) Close() error {
	t.connected.Store(false)
	return t.conn.close()
}
