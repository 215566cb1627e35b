package parser

import (
	"encoding/json"
	"fmt"

	"github.com/barleyrp/overlay/internal/model"
)

// Positional bank order: [cash, rouletteMoney].

// ParseBankInfo parses a bank:info payload into a partial update.
// Accepts both the structured object and the positional tuple shape.
func (p *Parser) ParseBankInfo(raw json.RawMessage) (model.BankUpdate, error) {
	var upd model.BankUpdate

	if !isArray(raw) {
		if err := json.Unmarshal(raw, &upd); err != nil {
			return upd, fmt.Errorf("error unmarshalling bank object: %w", err)
		}
		return upd, nil
	}

	var vals []any
	if err := json.Unmarshal(raw, &vals); err != nil {
		return upd, fmt.Errorf("error unmarshalling bank tuple: %w", err)
	}
	if len(vals) < 1 {
		return upd, fmt.Errorf("bank tuple is empty")
	}

	cash, err := int64FromAny(vals[0])
	if err != nil {
		return upd, fmt.Errorf("error converting cash: %w", err)
	}
	upd.Cash = &cash

	if len(vals) > 1 {
		roulette, err := int64FromAny(vals[1])
		if err != nil {
			return upd, fmt.Errorf("error converting rouletteMoney: %w", err)
		}
		upd.RouletteMoney = &roulette
	}

	return upd, nil
}
