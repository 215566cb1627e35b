package parser

import (
	"encoding/json"
	"fmt"

	"github.com/barleyrp/overlay/internal/model"
)

// auth:mode integer convention, preserved exactly.
const (
	AuthModeRegister = 1
	AuthModeLogin    = 2
)

// ParseAuthMode parses an auth:mode payload into the screen it selects.
func (p *Parser) ParseAuthMode(raw json.RawMessage) (model.Screen, error) {
	mode, err := p.ParseScalarInt(raw)
	if err != nil {
		return "", fmt.Errorf("error parsing auth mode: %w", err)
	}
	switch mode {
	case AuthModeRegister:
		return model.ScreenRegister, nil
	case AuthModeLogin:
		return model.ScreenLogin, nil
	default:
		return "", fmt.Errorf("unknown auth mode %d", mode)
	}
}

// ParseAuthResponse parses an auth:response payload.
func (p *Parser) ParseAuthResponse(raw json.RawMessage) (model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return resp, fmt.Errorf("error unmarshalling auth response: %w", err)
	}
	if resp.Action != "login" && resp.Action != "register" {
		return resp, fmt.Errorf("unknown auth response action %q", resp.Action)
	}
	return resp, nil
}

// ParseShowScreen parses a ui:show payload naming a screen.
func (p *Parser) ParseShowScreen(raw json.RawMessage) (model.Screen, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", fmt.Errorf("error unmarshalling screen name: %w", err)
	}
	screen := model.Screen(name)
	if !model.KnownScreen(screen) {
		return "", fmt.Errorf("unknown screen %q", name)
	}
	return screen, nil
}
