package parser

import (
	"encoding/json"
	"fmt"

	"github.com/barleyrp/overlay/internal/model"
)

// ParseInventoryData parses an inventory:data payload: the occupied slots.
func (p *Parser) ParseInventoryData(raw json.RawMessage) ([]model.Item, error) {
	var obj struct {
		Items []model.Item `json:"items"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("error unmarshalling inventory data: %w", err)
	}
	for _, item := range obj.Items {
		if item.Slot < 0 || item.Slot >= model.MaxInventorySlots {
			return nil, fmt.Errorf("item slot %d out of range", item.Slot)
		}
	}
	return obj.Items, nil
}

// ParsePlayerData parses an inventory:playerData payload: equipment stats
// merged by key.
func (p *Parser) ParsePlayerData(raw json.RawMessage) (map[string]any, error) {
	var stats map[string]any
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("error unmarshalling player data: %w", err)
	}
	return stats, nil
}

// ParseShopData parses an inventory:shopData payload: catalog entries keyed
// by category.
func (p *Parser) ParseShopData(raw json.RawMessage) (map[string][]model.ShopItem, error) {
	var catalog map[string][]model.ShopItem
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("error unmarshalling shop data: %w", err)
	}
	return catalog, nil
}
