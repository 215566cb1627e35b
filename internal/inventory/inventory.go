// Package inventory caches the player's item grid, equipment stats and the
// shop catalog so outbound item operations can be validated without a host
// round trip.
package inventory

import (
	"fmt"
	"sync"

	"github.com/barleyrp/overlay/internal/model"
)

// State caches inventory data between host updates. Latency matters here:
// item operations are validated against this cache on every click.
type State struct {
	m     sync.Mutex
	items map[int]model.Item // keyed by slot
	stats map[string]any
	shop  map[string][]model.ShopItem // keyed by category
}

// NewState creates an empty inventory state.
func NewState() *State {
	return &State{
		items: make(map[int]model.Item),
		stats: make(map[string]any),
		shop:  make(map[string][]model.ShopItem),
	}
}

// Reset clears all cached inventory data.
func (s *State) Reset() {
	s.m.Lock()
	defer s.m.Unlock()
	s.items = make(map[int]model.Item)
	s.stats = make(map[string]any)
	s.shop = make(map[string][]model.ShopItem)
}

// SetItems replaces the occupied slots with a fresh host snapshot.
func (s *State) SetItems(items []model.Item) {
	s.m.Lock()
	defer s.m.Unlock()
	s.items = make(map[int]model.Item, len(items))
	for _, item := range items {
		s.items[item.Slot] = item
	}
}

// Item returns the item in the given slot.
func (s *State) Item(slot int) (model.Item, bool) {
	s.m.Lock()
	defer s.m.Unlock()
	item, ok := s.items[slot]
	return item, ok
}

// Items returns the occupied slots in slot order up to MaxInventorySlots.
func (s *State) Items() []model.Item {
	s.m.Lock()
	defer s.m.Unlock()
	out := make([]model.Item, 0, len(s.items))
	for slot := 0; slot < model.MaxInventorySlots; slot++ {
		if item, ok := s.items[slot]; ok {
			out = append(out, item)
		}
	}
	return out
}

// MergeStats merges equipment stats by key, leaving absent keys unchanged.
func (s *State) MergeStats(stats map[string]any) {
	s.m.Lock()
	defer s.m.Unlock()
	for k, v := range stats {
		s.stats[k] = v
	}
}

// Stats returns a copy of the equipment stats.
func (s *State) Stats() map[string]any {
	s.m.Lock()
	defer s.m.Unlock()
	out := make(map[string]any, len(s.stats))
	for k, v := range s.stats {
		out[k] = v
	}
	return out
}

// SetShop replaces the catalog for each category present in the payload.
func (s *State) SetShop(catalog map[string][]model.ShopItem) {
	s.m.Lock()
	defer s.m.Unlock()
	for category, entries := range catalog {
		s.shop[category] = entries
	}
}

// Shop returns a copy of the full shop catalog.
func (s *State) Shop() map[string][]model.ShopItem {
	s.m.Lock()
	defer s.m.Unlock()
	out := make(map[string][]model.ShopItem, len(s.shop))
	for category, entries := range s.shop {
		cp := make([]model.ShopItem, len(entries))
		copy(cp, entries)
		out[category] = cp
	}
	return out
}

// ValidateUse checks that the slot holds the named item before a useItem or
// dropItem operation goes outbound.
func (s *State) ValidateUse(slot, itemID int) error {
	s.m.Lock()
	defer s.m.Unlock()
	if slot < 0 || slot >= model.MaxInventorySlots {
		return fmt.Errorf("slot %d out of range", slot)
	}
	item, ok := s.items[slot]
	if !ok {
		return fmt.Errorf("slot %d is empty", slot)
	}
	if item.ItemID != itemID {
		return fmt.Errorf("slot %d holds item %d, not %d", slot, item.ItemID, itemID)
	}
	return nil
}

// ValidateBuy checks that the catalog offers the item at the given price
// before a buyItem operation goes outbound.
func (s *State) ValidateBuy(itemID int, price int64) error {
	s.m.Lock()
	defer s.m.Unlock()
	for _, entries := range s.shop {
		for _, entry := range entries {
			if entry.ItemID != itemID {
				continue
			}
			if entry.Price != price {
				return fmt.Errorf("item %d costs %d, not %d", itemID, entry.Price, price)
			}
			return nil
		}
	}
	return fmt.Errorf("item %d not in shop catalog", itemID)
}
