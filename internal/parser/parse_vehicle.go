package parser

import (
	"encoding/json"
	"fmt"

	"github.com/barleyrp/overlay/internal/model"
)

// Positional vehicle order: [engine, doors, lights, fuel, health].

// ParseVehicleState parses a vehicle:state payload into a partial update.
// Accepts both the structured object and the positional tuple shape.
// Engine/doors/lights flags may be booleans or raw 0/1 integers.
func (p *Parser) ParseVehicleState(raw json.RawMessage) (model.VehicleUpdate, error) {
	var upd model.VehicleUpdate

	if !isArray(raw) {
		var obj struct {
			Engine *any `json:"engine"`
			Locked *any `json:"doors"`
			Lights *any `json:"lights"`
			Fuel   *int `json:"fuel"`
			Health *int `json:"health"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return upd, fmt.Errorf("error unmarshalling vehicle object: %w", err)
		}
		if obj.Engine != nil {
			v, err := boolFromAny(*obj.Engine)
			if err != nil {
				return upd, fmt.Errorf("error converting engine: %w", err)
			}
			upd.Engine = &v
		}
		if obj.Locked != nil {
			v, err := boolFromAny(*obj.Locked)
			if err != nil {
				return upd, fmt.Errorf("error converting doors: %w", err)
			}
			upd.Locked = &v
		}
		if obj.Lights != nil {
			v, err := boolFromAny(*obj.Lights)
			if err != nil {
				return upd, fmt.Errorf("error converting lights: %w", err)
			}
			upd.Lights = &v
		}
		upd.Fuel = obj.Fuel
		upd.Health = obj.Health
		return upd, nil
	}

	var vals []any
	if err := json.Unmarshal(raw, &vals); err != nil {
		return upd, fmt.Errorf("error unmarshalling vehicle tuple: %w", err)
	}
	if len(vals) < 5 {
		return upd, fmt.Errorf("vehicle tuple too short: %d fields", len(vals))
	}

	engine, err := boolFromAny(vals[0])
	if err != nil {
		return upd, fmt.Errorf("error converting engine: %w", err)
	}
	upd.Engine = &engine

	locked, err := boolFromAny(vals[1])
	if err != nil {
		return upd, fmt.Errorf("error converting doors: %w", err)
	}
	upd.Locked = &locked

	lights, err := boolFromAny(vals[2])
	if err != nil {
		return upd, fmt.Errorf("error converting lights: %w", err)
	}
	upd.Lights = &lights

	fuel, err := intFromAny(vals[3])
	if err != nil {
		return upd, fmt.Errorf("error converting fuel: %w", err)
	}
	upd.Fuel = &fuel

	health, err := intFromAny(vals[4])
	if err != nil {
		return upd, fmt.Errorf("error converting health: %w", err)
	}
	upd.Health = &health

	return upd, nil
}
