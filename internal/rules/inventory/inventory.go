// Package inventory implements the item operations on a character's inventory.
//
// The functions trust their caller: ownership of the inventory and of the
// characters involved must already have been checked against the acting
// user's ownership list. On error the inventory and characters are unchanged.
package inventory

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/rules/items"
)

// AddItem appends the item. An item whose id is already present is rejected
// with AlreadyExists; ids are never regenerated here.
func AddItem(inv *entities.Inventory, item entities.Item) (string, error) {
	if inv == nil {
		return "", errors.CorruptState("inventory is nil")
	}
	if item.ID == "" {
		return "", errors.InvalidArgument("item ID is required")
	}
	if _, err := items.Lookup(item.Class); err != nil {
		return "", err
	}
	if inv.IndexOfID(item.ID) >= 0 {
		return "", errors.AlreadyExistsf("item %s is already in the inventory", item.ID).
			WithMeta("item_id", item.ID)
	}

	inv.Items = append(inv.Items, item)
	return fmt.Sprintf("%s added to the inventory", item.Name), nil
}

// RemoveItem removes the item with the given id and returns it
func RemoveItem(inv *entities.Inventory, itemID string) (entities.Item, string, error) {
	if inv == nil {
		return entities.Item{}, "", errors.CorruptState("inventory is nil")
	}
	idx := inv.IndexOfID(itemID)
	if idx < 0 {
		return entities.Item{}, "", errors.ItemNotFound(fmt.Sprintf("no item with id %q", itemID)).
			WithMeta("item_id", itemID)
	}

	removed := inv.Items[idx]
	inv.Items = append(inv.Items[:idx:idx], inv.Items[idx+1:]...)
	return removed, fmt.Sprintf("%s removed from the inventory", removed.Name), nil
}

// UseResult describes a used item
type UseResult struct {
	Item     entities.Item
	Effect   items.Effect
	Consumed bool
	Message  string
}

// UseItem applies the first item named itemName to target on behalf of user.
// Potions and bombs are consumed; amulets, swords and shields stay.
func UseItem(inv *entities.Inventory, itemName string, user, target *entities.Character) (*UseResult, error) {
	if inv == nil {
		return nil, errors.CorruptState("inventory is nil")
	}
	if user == nil {
		return nil, errors.InvalidArgument("user is required")
	}
	if target == nil {
		return nil, errors.InvalidArgument("target is required")
	}

	idx := inv.IndexOfName(itemName)
	if idx < 0 {
		return nil, errors.ItemNotFound(fmt.Sprintf("%s has no item named %q", user.Name, itemName)).
			WithMeta("item_name", itemName)
	}
	item := inv.Items[idx]

	effect, err := items.ApplyEffect(item, target)
	if err != nil {
		return nil, err
	}

	result := &UseResult{
		Item:   item,
		Effect: effect,
	}
	if items.IsSingleUse(item.Class) {
		inv.Items = append(inv.Items[:idx:idx], inv.Items[idx+1:]...)
		result.Consumed = true
	}

	if user.ID == target.ID {
		result.Message = fmt.Sprintf("%s uses %s: %s", user.Name, item.Name, effect.Message)
	} else {
		result.Message = fmt.Sprintf("%s uses %s on %s: %s", user.Name, item.Name, target.Name, effect.Message)
	}
	return result, nil
}

// Criteria filters items. Zero fields impose no constraint; set fields are ANDed.
type Criteria struct {
	// Name matches as a case-insensitive substring
	Name     string
	Class    entities.ItemClass
	MinValue *int
	MaxValue *int
}

// FindByCriteria returns the matching items in inventory order
func FindByCriteria(inv *entities.Inventory, criteria Criteria) []entities.Item {
	if inv == nil {
		return nil
	}

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(criteria.Name))

	matches := make([]entities.Item, 0, len(inv.Items))
	for _, item := range inv.Items {
		if needle != "" && !strings.Contains(fold.String(item.Name), needle) {
			continue
		}
		if criteria.Class != "" && item.Class != criteria.Class {
			continue
		}
		if criteria.MinValue != nil && item.Value < *criteria.MinValue {
			continue
		}
		if criteria.MaxValue != nil && item.Value > *criteria.MaxValue {
			continue
		}
		matches = append(matches, item)
	}
	return matches
}

// ClassStats is the item count and total value of one item class
type ClassStats struct {
	Count      int
	TotalValue int
}

// Stats summarizes an inventory
type Stats struct {
	Count      int
	TotalValue int
	ByClass    map[entities.ItemClass]ClassStats
}

// ComputeStats counts items and sums their value, overall and per class
func ComputeStats(inv *entities.Inventory) Stats {
	stats := Stats{ByClass: make(map[entities.ItemClass]ClassStats)}
	if inv == nil {
		return stats
	}
	for _, item := range inv.Items {
		stats.Count++
		stats.TotalValue += item.Value
		cs := stats.ByClass[item.Class]
		cs.Count++
		cs.TotalValue += item.Value
		stats.ByClass[item.Class] = cs
	}
	return stats
}
