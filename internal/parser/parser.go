// Package parser converts raw event payloads into model types. Payloads may
// arrive as a JSON object, a positional JSON array, or a bare scalar; both
// shapes of the same logical event must parse to the same result.
package parser

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Parser provides pure payload -> model struct conversion.
// It has zero external dependencies beyond a logger.
type Parser struct {
	logger *slog.Logger
}

// New creates a new parser with only a logger dependency.
func New(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// isArray reports whether the raw payload is a JSON array (positional shape).
func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

// intFromAny converts a decoded JSON value to int. The host serializes all
// numbers as floats, so "85.0" and 85 are the same value.
func intFromAny(v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("intFromAny: %T is not a number", v)
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("intFromAny: %v is not an integer", f)
	}
	return int(f), nil
}

// int64FromAny converts a decoded JSON value to int64.
func int64FromAny(v any) (int64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("int64FromAny: %T is not a number", v)
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("int64FromAny: %v is not an integer", f)
	}
	return int64(f), nil
}

// stringFromAny converts a decoded JSON value to string.
func stringFromAny(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("stringFromAny: %T is not a string", v)
	}
	return s, nil
}

// boolFromAny converts a decoded JSON value to bool. The host encodes some
// flags as raw 0/1 integers, so both shapes are accepted.
func boolFromAny(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case float64:
		switch b {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return false, fmt.Errorf("boolFromAny: %v is not 0 or 1", b)
	default:
		return false, fmt.Errorf("boolFromAny: %T is not a bool", v)
	}
}

// ParseScalarInt parses a bare integer payload (zone flags, mode selectors,
// frame indexes).
func (p *Parser) ParseScalarInt(raw json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("error unmarshalling scalar int: %w", err)
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("scalar %v is not an integer", f)
	}
	return int(f), nil
}

// ParseScalarInt64 parses a bare integer payload carrying a money amount.
func (p *Parser) ParseScalarInt64(raw json.RawMessage) (int64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("error unmarshalling scalar amount: %w", err)
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("scalar %v is not an integer", f)
	}
	return int64(f), nil
}
