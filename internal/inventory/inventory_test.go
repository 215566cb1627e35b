package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barleyrp/overlay/internal/model"
)

func TestSetItems_ReplacesGrid(t *testing.T) {
	s := NewState()
	s.SetItems([]model.Item{
		{Slot: 5, ItemID: 11, Name: "Bread", Count: 3},
		{Slot: 1, ItemID: 52, Name: "Medkit", Count: 1},
	})

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Slot, "items come back in slot order")
	assert.Equal(t, 5, items[1].Slot)

	// A fresh host snapshot replaces, never merges.
	s.SetItems([]model.Item{{Slot: 0, ItemID: 7, Name: "Water", Count: 2}})
	items = s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].ItemID)
}

func TestItem_Lookup(t *testing.T) {
	s := NewState()
	s.SetItems([]model.Item{{Slot: 3, ItemID: 11, Name: "Bread", Count: 3}})

	item, ok := s.Item(3)
	require.True(t, ok)
	assert.Equal(t, "Bread", item.Name)

	_, ok = s.Item(4)
	assert.False(t, ok)
}

func TestMergeStats_ByKey(t *testing.T) {
	s := NewState()
	s.MergeStats(map[string]any{"strength": 4, "stamina": 2})
	s.MergeStats(map[string]any{"strength": 5})

	stats := s.Stats()
	assert.Equal(t, 5, stats["strength"], "later values win")
	assert.Equal(t, 2, stats["stamina"], "absent keys stay")
}

func TestSetShop_ReplacesPerCategory(t *testing.T) {
	s := NewState()
	s.SetShop(map[string][]model.ShopItem{
		"food": {{ItemID: 11, Name: "Bread", Price: 25}},
		"misc": {{ItemID: 52, Name: "Medkit", Price: 300}},
	})
	s.SetShop(map[string][]model.ShopItem{
		"food": {{ItemID: 12, Name: "Soup", Price: 40}},
	})

	shop := s.Shop()
	require.Len(t, shop["food"], 1)
	assert.Equal(t, 12, shop["food"][0].ItemID, "payload categories are replaced")
	require.Len(t, shop["misc"], 1, "untouched categories persist")
}

func TestValidateUse(t *testing.T) {
	s := NewState()
	s.SetItems([]model.Item{{Slot: 2, ItemID: 11, Name: "Bread", Count: 3}})

	assert.NoError(t, s.ValidateUse(2, 11))
	assert.Error(t, s.ValidateUse(2, 99), "item mismatch")
	assert.Error(t, s.ValidateUse(3, 11), "empty slot")
	assert.Error(t, s.ValidateUse(-1, 11), "slot below range")
	assert.Error(t, s.ValidateUse(model.MaxInventorySlots, 11), "slot above range")
}

func TestValidateBuy(t *testing.T) {
	s := NewState()
	s.SetShop(map[string][]model.ShopItem{
		"food": {{ItemID: 11, Name: "Bread", Price: 25}},
	})

	assert.NoError(t, s.ValidateBuy(11, 25))
	assert.Error(t, s.ValidateBuy(11, 20), "price mismatch")
	assert.Error(t, s.ValidateBuy(99, 25), "not in catalog")
}

func TestReset_ClearsEverything(t *testing.T) {
	s := NewState()
	s.SetItems([]model.Item{{Slot: 0, ItemID: 11}})
	s.MergeStats(map[string]any{"strength": 4})
	s.SetShop(map[string][]model.ShopItem{"food": {{ItemID: 11, Price: 25}}})

	s.Reset()

	assert.Empty(t, s.Items())
	assert.Empty(t, s.Stats())
	assert.Empty(t, s.Shop())
}
