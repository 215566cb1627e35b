package bridge

import (
	"fmt"
	"log/slog"
)

// Config selects and configures the transport at startup.
type Config struct {
	Transport string
	URL       string
	Secret    string
}

// New creates a transport based on configuration.
func New(cfg Config, logger *slog.Logger) (Transport, error) {
	switch cfg.Transport {
	case "websocket":
		return NewWebSocket(WebSocketConfig{URL: cfg.URL, Secret: cfg.Secret}, logger), nil
	case "loopback":
		return NewLoopback(), nil
	default:
		return nil, fmt.Errorf("unknown bridge transport: %s", cfg.Transport)
	}
}
