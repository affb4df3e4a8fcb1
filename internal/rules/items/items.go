// Package items is the item catalog and the effects items have on characters
package items

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
)

// Bounds for custom items
const (
	MaxNameLength  = 40
	MaxCustomValue = 1000
)

// Definition describes what an item class does
type Definition struct {
	Class         entities.ItemClass
	Effect        entities.EffectKind
	BaseMagnitude int
	Attribute     entities.Attribute
	SingleUse     bool
}

var catalog = map[entities.ItemClass]Definition{
	entities.ItemPotion: {
		Class:         entities.ItemPotion,
		Effect:        entities.EffectHeal,
		BaseMagnitude: 30,
		Attribute:     entities.AttributeHealth,
		SingleUse:     true,
	},
	entities.ItemBomb: {
		Class:         entities.ItemBomb,
		Effect:        entities.EffectDamage,
		BaseMagnitude: 25,
		Attribute:     entities.AttributeHealth,
		SingleUse:     true,
	},
	entities.ItemAmulet: {
		Class:         entities.ItemAmulet,
		Effect:        entities.EffectBuff,
		BaseMagnitude: 10,
		Attribute:     entities.AttributeSpecial,
	},
	entities.ItemSword: {
		Class:         entities.ItemSword,
		Effect:        entities.EffectBuff,
		BaseMagnitude: 5,
		Attribute:     entities.AttributeAttack,
	},
	entities.ItemShield: {
		Class:         entities.ItemShield,
		Effect:        entities.EffectBuff,
		BaseMagnitude: 5,
		Attribute:     entities.AttributeDefense,
	},
}

// Catalog returns a copy of the item catalog
func Catalog() map[entities.ItemClass]Definition {
	out := make(map[entities.ItemClass]Definition, len(catalog))
	for k, v := range catalog {
		out[k] = v
	}
	return out
}

// Lookup returns the definition of an item class
func Lookup(class entities.ItemClass) (Definition, error) {
	def, ok := catalog[class]
	if !ok {
		return Definition{}, errors.InvalidClassf("unknown item class %q", class)
	}
	return def, nil
}

// ParseClass resolves an item class name case-insensitively
func ParseClass(name string) (entities.ItemClass, error) {
	trimmed := strings.TrimSpace(name)
	for _, class := range entities.AllItemClasses {
		if strings.EqualFold(trimmed, string(class)) {
			return class, nil
		}
	}
	return "", errors.InvalidClassf("unknown item class %q", name)
}

// IsSingleUse reports whether using an item of this class consumes it
func IsSingleUse(class entities.ItemClass) bool {
	return catalog[class].SingleUse
}

// Instantiate creates a stock item named after its class
func Instantiate(id string, class entities.ItemClass) (entities.Item, error) {
	def, err := Lookup(class)
	if err != nil {
		return entities.Item{}, err
	}
	return entities.Item{
		ID:    id,
		Name:  string(def.Class),
		Class: def.Class,
		Value: def.BaseMagnitude,
	}, nil
}

// InstantiateCustom creates a player-named, player-valued item
func InstantiateCustom(id string, class entities.ItemClass, name string, value int) (entities.Item, error) {
	def, err := Lookup(class)
	if err != nil {
		return entities.Item{}, err
	}
	normalized, err := stats.NormalizeName(name, MaxNameLength)
	if err != nil {
		return entities.Item{}, err
	}
	vb := errors.NewValidationBuilder().Kind(errors.KindInvalidValue)
	errors.ValidateRange("value", value, 0, MaxCustomValue, vb)
	if err := vb.Build(); err != nil {
		return entities.Item{}, err
	}
	return entities.Item{
		ID:     id,
		Name:   normalized,
		Class:  def.Class,
		Value:  value,
		Custom: true,
	}, nil
}

// Effect is the result of applying an item to a character
type Effect struct {
	Kind      entities.EffectKind
	Attribute entities.Attribute
	Before    int
	After     int
	Message   string
}

// Delta is the signed change the effect made
func (e Effect) Delta() int {
	return e.After - e.Before
}

// ApplyEffect applies an item to target. Heal stops at max health, damage
// stops at 0 and is reduced by the target's defense, buffs are permanent.
// A malformed target is rejected before anything changes.
func ApplyEffect(item entities.Item, target *entities.Character) (Effect, error) {
	def, err := Lookup(item.Class)
	if err != nil {
		return Effect{}, err
	}
	if err := target.Validate(); err != nil {
		return Effect{}, errors.Wrap(err, "invalid target")
	}
	if item.Value < 0 {
		return Effect{}, errors.InvalidValuef("item value must not be negative, got %d", item.Value)
	}

	effect := Effect{Kind: def.Effect, Attribute: def.Attribute}

	switch def.Effect {
	case entities.EffectHeal:
		effect.Before = target.Health
		target.SetHealth(target.Health + item.Value)
		effect.After = target.Health
		effect.Message = fmt.Sprintf("%s restores %d health", item.Name, effect.Delta())

	case entities.EffectDamage:
		// defense mitigates down to 1, but a value 0 bomb is a dud
		damage := 0
		if item.Value > 0 {
			damage = engine.MitigatedDamage(item.Value, target.Defense)
		}
		effect.Before = target.Health
		target.SetHealth(target.Health - damage)
		effect.After = target.Health
		effect.Message = fmt.Sprintf("%s deals %d damage", item.Name, -effect.Delta())

	case entities.EffectBuff:
		field := attributeField(target, def.Attribute)
		if field == nil {
			return Effect{}, errors.Internalf("item class %s buffs unknown attribute %q", def.Class, def.Attribute)
		}
		effect.Before = *field
		*field += item.Value
		effect.After = *field
		effect.Message = fmt.Sprintf("%s raises %s by %d", item.Name, def.Attribute, item.Value)
	}

	return effect, nil
}

func attributeField(c *entities.Character, attr entities.Attribute) *int {
	switch attr {
	case entities.AttributeAttack:
		return &c.Attack
	case entities.AttributeDefense:
		return &c.Defense
	case entities.AttributeSpeed:
		return &c.Speed
	case entities.AttributeSpecial:
		return &c.Special
	default:
		return nil
	}
}
