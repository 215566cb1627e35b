package parser

import (
	"encoding/json"
	"fmt"

	"github.com/barleyrp/overlay/internal/model"
)

// Spawn type integer convention, preserved exactly.
const (
	SpawnFraction     = 0
	SpawnHouse        = 1
	SpawnRandom       = 2
	SpawnLastPosition = 3
)

// ParseSpawnInfo parses a spawn:info payload: the player's level for the
// spawn screen label.
func (p *Parser) ParseSpawnInfo(raw json.RawMessage) (int, error) {
	level, err := p.ParseScalarInt(raw)
	if err != nil {
		return 0, fmt.Errorf("error parsing spawn info: %w", err)
	}
	return level, nil
}

// ParseSpawnLock parses a spawn:lock payload. Flags may be booleans or raw
// 0/1 integers; a false flag hides the corresponding spawn option.
func (p *Parser) ParseSpawnLock(raw json.RawMessage) (model.SpawnLocks, error) {
	var locks model.SpawnLocks
	var obj struct {
		Member       *any `json:"member"`
		FamilyMember *any `json:"familyMember"`
		Location     *any `json:"location"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return locks, fmt.Errorf("error unmarshalling spawn lock: %w", err)
	}
	if obj.Member != nil {
		v, err := boolFromAny(*obj.Member)
		if err != nil {
			return locks, fmt.Errorf("error converting member lock: %w", err)
		}
		locks.Member = v
	}
	if obj.FamilyMember != nil {
		v, err := boolFromAny(*obj.FamilyMember)
		if err != nil {
			return locks, fmt.Errorf("error converting familyMember lock: %w", err)
		}
		locks.FamilyMember = v
	}
	if obj.Location != nil {
		v, err := boolFromAny(*obj.Location)
		if err != nil {
			return locks, fmt.Errorf("error converting location lock: %w", err)
		}
		locks.Location = v
	}
	return locks, nil
}
