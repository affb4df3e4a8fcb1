// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder starts from a Warrior at its class template
func NewCharacterBuilder() *CharacterBuilder {
	now := time.Now().Unix()
	b := &CharacterBuilder{
		character: &entities.Character{
			ID:        "char-test-123",
			Name:      "Test Character",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	return b.AsClass(entities.ClassWarrior)
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// AsClass resets every stat to the class template, keeping id and name
func (b *CharacterBuilder) AsClass(class entities.ClassName) *CharacterBuilder {
	cs, err := stats.Lookup(class)
	if err != nil {
		b.character.Class = class
		return b
	}
	b.character.Class = cs.Class
	b.character.Health = cs.BaseHealth
	b.character.MaxHealth = cs.BaseHealth
	b.character.Attack = cs.BaseAttack
	b.character.Defense = cs.BaseDefense
	b.character.Speed = cs.BaseSpeed
	b.character.Special = cs.SpecialBase
	b.character.SpecialName = cs.SpecialName
	return b
}

// WithHealth sets current health without clamping
func (b *CharacterBuilder) WithHealth(health int) *CharacterBuilder {
	b.character.Health = health
	return b
}

// WithMaxHealth sets max health without clamping
func (b *CharacterBuilder) WithMaxHealth(maxHealth int) *CharacterBuilder {
	b.character.MaxHealth = maxHealth
	return b
}

// WithCombatStats sets attack, defense and speed
func (b *CharacterBuilder) WithCombatStats(attack, defense, speed int) *CharacterBuilder {
	b.character.Attack = attack
	b.character.Defense = defense
	b.character.Speed = speed
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
