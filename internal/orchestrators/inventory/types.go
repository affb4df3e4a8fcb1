package inventory

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/rules/items"
	invrules "github.com/KirkDiggler/rpg-arena/internal/rules/inventory"
)

// GetInventoryInput defines the request for reading a character's inventory
type GetInventoryInput struct {
	UserID      string
	CharacterID string
}

// GetInventoryOutput defines the response for reading an inventory
type GetInventoryOutput struct {
	Inventory *entities.Inventory
}

// AddItemInput defines the request for adding an item. With no Name and no
// Value a stock item of ItemClass is added; otherwise a custom item is built,
// defaulting the missing field from the class.
type AddItemInput struct {
	UserID      string
	CharacterID string
	ItemClass   string
	Name        string
	Value       *int
}

// AddItemOutput defines the response for adding an item
type AddItemOutput struct {
	Item      entities.Item
	Inventory *entities.Inventory
	Message   string
}

// RemoveItemInput defines the request for removing an item
type RemoveItemInput struct {
	UserID      string
	CharacterID string
	ItemID      string
}

// RemoveItemOutput defines the response for removing an item
type RemoveItemOutput struct {
	Item      entities.Item
	Inventory *entities.Inventory
	Message   string
}

// UseItemInput defines the request for using an item. An empty TargetID
// targets the item's owner.
type UseItemInput struct {
	UserID      string
	CharacterID string
	ItemName    string
	TargetID    string
}

// UseItemOutput defines the response for using an item
type UseItemOutput struct {
	Item      entities.Item
	Effect    items.Effect
	Consumed  bool
	Target    *entities.Character
	Inventory *entities.Inventory
	Message   string
}

// SearchItemsInput defines the request for filtering an inventory
type SearchItemsInput struct {
	UserID      string
	CharacterID string
	Criteria    invrules.Criteria
}

// SearchItemsOutput defines the matching items in inventory order
type SearchItemsOutput struct {
	Items []entities.Item
}

// GetInventoryStatsInput defines the request for inventory statistics
type GetInventoryStatsInput struct {
	UserID      string
	CharacterID string
}

// GetInventoryStatsOutput defines the inventory statistics
type GetInventoryStatsOutput struct {
	Stats invrules.Stats
}

// ListItemClassesInput defines the request for the item catalog
type ListItemClassesInput struct{}

// ListItemClassesOutput lists the item classes in display order
type ListItemClassesOutput struct {
	Definitions []items.Definition
}
