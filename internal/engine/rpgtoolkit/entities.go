package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// CharacterEntity wraps a combat snapshot to implement core.Entity
type CharacterEntity struct {
	*entities.Character
}

var _ core.Entity = (*CharacterEntity)(nil)

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return "character"
}

// wrapCharacter takes a private copy of the character for the duration of a combat
func wrapCharacter(character *entities.Character) *CharacterEntity {
	return &CharacterEntity{Character: character.Clone()}
}
