// Package entities holds the records the arena stores and the rules operate on
package entities

import (
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// ClassName is one of the fixed character classes
type ClassName string

// Character classes
const (
	ClassMage    ClassName = "Mage"
	ClassWarrior ClassName = "Warrior"
	ClassRogue   ClassName = "Rogue"
)

// AllClasses lists the classes in display order
var AllClasses = []ClassName{ClassMage, ClassWarrior, ClassRogue}

// IsValid reports whether the class is one of the fixed classes
func (c ClassName) IsValid() bool {
	switch c {
	case ClassMage, ClassWarrior, ClassRogue:
		return true
	default:
		return false
	}
}

func (c ClassName) String() string {
	return string(c)
}

// MaxCharactersPerUser caps a user's ownership list
const MaxCharactersPerUser = 5

// Character is a combat unit. The record carries no owner; the user's
// ownership list is the only authority for who controls it.
type Character struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Class       ClassName `json:"class"`
	Health      int       `json:"health"`
	MaxHealth   int       `json:"max_health"`
	Attack      int       `json:"attack"`
	Defense     int       `json:"defense"`
	Speed       int       `json:"speed"`
	Special     int       `json:"special"`
	SpecialName string    `json:"special_name"`
	CreatedAt   int64     `json:"created_at"`
	UpdatedAt   int64     `json:"updated_at"`
}

// Validate returns a CorruptState error when the record could not have been
// produced by the rules. It never repairs the record.
func (c *Character) Validate() error {
	if c == nil {
		return errors.CorruptState("character is nil")
	}

	vb := errors.NewValidationBuilder().Kind(errors.KindCorruptState)
	if !c.Class.IsValid() {
		vb.Fieldf("class", "unknown class %q", c.Class)
	}
	if c.MaxHealth <= 0 {
		vb.Fieldf("max_health", "must be positive, got %d", c.MaxHealth)
	}
	if c.Health < 0 || c.Health > c.MaxHealth {
		vb.Fieldf("health", "must be within [0, %d], got %d", c.MaxHealth, c.Health)
	}
	if c.Attack < 0 {
		vb.Fieldf("attack", "must not be negative, got %d", c.Attack)
	}
	if c.Defense < 0 {
		vb.Fieldf("defense", "must not be negative, got %d", c.Defense)
	}
	if c.Speed < 0 {
		vb.Fieldf("speed", "must not be negative, got %d", c.Speed)
	}
	if c.Special < 0 {
		vb.Fieldf("special", "must not be negative, got %d", c.Special)
	}

	return vb.Build()
}

// IsAlive reports whether the character has health left
func (c *Character) IsAlive() bool {
	return c.Health > 0
}

// SetHealth stores health clamped to [0, MaxHealth]
func (c *Character) SetHealth(health int) {
	switch {
	case health < 0:
		c.Health = 0
	case health > c.MaxHealth:
		c.Health = c.MaxHealth
	default:
		c.Health = health
	}
}

// Clone returns an independent copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
