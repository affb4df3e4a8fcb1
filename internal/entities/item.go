package entities

// ItemClass determines what an item does when used
type ItemClass string

// Item classes
const (
	ItemPotion ItemClass = "Potion"
	ItemBomb   ItemClass = "Bomb"
	ItemAmulet ItemClass = "Amulet"
	ItemSword  ItemClass = "Sword"
	ItemShield ItemClass = "Shield"
)

// AllItemClasses lists the item classes in display order
var AllItemClasses = []ItemClass{ItemPotion, ItemBomb, ItemAmulet, ItemSword, ItemShield}

// IsValid reports whether the item class is known
func (c ItemClass) IsValid() bool {
	switch c {
	case ItemPotion, ItemBomb, ItemAmulet, ItemSword, ItemShield:
		return true
	default:
		return false
	}
}

func (c ItemClass) String() string {
	return string(c)
}

// EffectKind is the category of what an item does to its target
type EffectKind string

// Effect kinds
const (
	EffectHeal   EffectKind = "Heal"
	EffectDamage EffectKind = "Damage"
	EffectBuff   EffectKind = "Buff"
)

// Attribute names a character stat an effect changes
type Attribute string

// Attributes
const (
	AttributeHealth  Attribute = "health"
	AttributeAttack  Attribute = "attack"
	AttributeDefense Attribute = "defense"
	AttributeSpeed   Attribute = "speed"
	AttributeSpecial Attribute = "special"
)

// Item is a single entry in an inventory. IDs are unique within the inventory.
type Item struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Class  ItemClass `json:"item_class"`
	Value  int       `json:"value"`
	Custom bool      `json:"custom,omitempty"`
}

// Inventory is the ordered item list of exactly one character
type Inventory struct {
	OwnerID   string `json:"owner_id"`
	Items     []Item `json:"items"`
	UpdatedAt int64  `json:"updated_at"`
}

// NewInventory creates an empty inventory for a character
func NewInventory(ownerID string) *Inventory {
	return &Inventory{
		OwnerID: ownerID,
		Items:   []Item{},
	}
}

// IndexOfID returns the position of the item with the given id, or -1
func (inv *Inventory) IndexOfID(id string) int {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// IndexOfName returns the position of the first item with the exact name, or -1
func (inv *Inventory) IndexOfName(name string) int {
	for i := range inv.Items {
		if inv.Items[i].Name == name {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy
func (inv *Inventory) Clone() *Inventory {
	if inv == nil {
		return nil
	}
	clone := *inv
	clone.Items = make([]Item, len(inv.Items))
	copy(clone.Items, inv.Items)
	return &clone
}
