package parser

import (
	"encoding/json"
	"fmt"

	"github.com/barleyrp/overlay/internal/model"
)

// Positional vitals order. Trailing entries are optional.
// [health, armor, level, money, bank, zone, weapon?, ammo?, wanted?]

// ParseVitals parses a player:vitals payload into a partial update.
// Accepts both the structured object and the positional tuple shape.
func (p *Parser) ParseVitals(raw json.RawMessage) (model.VitalsUpdate, error) {
	var upd model.VitalsUpdate

	if !isArray(raw) {
		if err := json.Unmarshal(raw, &upd); err != nil {
			return upd, fmt.Errorf("error unmarshalling vitals object: %w", err)
		}
		return upd, nil
	}

	var vals []any
	if err := json.Unmarshal(raw, &vals); err != nil {
		return upd, fmt.Errorf("error unmarshalling vitals tuple: %w", err)
	}
	if len(vals) < 6 {
		return upd, fmt.Errorf("vitals tuple too short: %d fields", len(vals))
	}

	health, err := intFromAny(vals[0])
	if err != nil {
		return upd, fmt.Errorf("error converting health: %w", err)
	}
	upd.Health = &health

	armor, err := intFromAny(vals[1])
	if err != nil {
		return upd, fmt.Errorf("error converting armor: %w", err)
	}
	upd.Armor = &armor

	level, err := intFromAny(vals[2])
	if err != nil {
		return upd, fmt.Errorf("error converting level: %w", err)
	}
	upd.Level = &level

	money, err := int64FromAny(vals[3])
	if err != nil {
		return upd, fmt.Errorf("error converting money: %w", err)
	}
	upd.Money = &money

	bank, err := int64FromAny(vals[4])
	if err != nil {
		return upd, fmt.Errorf("error converting bank: %w", err)
	}
	upd.Bank = &bank

	zone, err := stringFromAny(vals[5])
	if err != nil {
		return upd, fmt.Errorf("error converting zone: %w", err)
	}
	upd.Zone = &zone

	if len(vals) > 6 {
		weapon, err := stringFromAny(vals[6])
		if err != nil {
			return upd, fmt.Errorf("error converting weapon: %w", err)
		}
		upd.Weapon = &weapon
	}
	if len(vals) > 7 {
		ammo, err := intFromAny(vals[7])
		if err != nil {
			return upd, fmt.Errorf("error converting ammo: %w", err)
		}
		upd.Ammo = &ammo
	}
	if len(vals) > 8 {
		wanted, err := intFromAny(vals[8])
		if err != nil {
			return upd, fmt.Errorf("error converting wanted: %w", err)
		}
		upd.Wanted = &wanted
	}

	return upd, nil
}

// ParseTimers parses a player:timers payload.
func (p *Parser) ParseTimers(raw json.RawMessage) (model.TimersUpdate, error) {
	var upd model.TimersUpdate
	if err := json.Unmarshal(raw, &upd); err != nil {
		return upd, fmt.Errorf("error unmarshalling timers: %w", err)
	}
	return upd, nil
}

// ParsePosition parses a player:position payload: [x, y].
func (p *Parser) ParsePosition(raw json.RawMessage) (x, y float64, err error) {
	var vals []float64
	if err := json.Unmarshal(raw, &vals); err != nil {
		return 0, 0, fmt.Errorf("error unmarshalling position: %w", err)
	}
	if len(vals) < 2 {
		return 0, 0, fmt.Errorf("position tuple too short: %d fields", len(vals))
	}
	return vals[0], vals[1], nil
}
