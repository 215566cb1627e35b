package model

// MaxInventorySlots is the fixed size of the player's item grid.
const MaxInventorySlots = 40

// Item is one occupied inventory slot.
type Item struct {
	Slot   int    `json:"slot"`
	ItemID int    `json:"itemId"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// ShopItem is a purchasable catalog entry.
type ShopItem struct {
	ItemID int    `json:"itemId"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
}

// Shop catalog categories.
const (
	ShopCategoryWeapons = "weapons"
	ShopCategoryFood    = "food"
	ShopCategoryClothes = "clothes"
	ShopCategoryMisc    = "misc"
)
