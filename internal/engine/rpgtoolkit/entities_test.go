package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

func TestCharacterEntity(t *testing.T) {
	character := &entities.Character{ID: "char-123", Name: "Conan", Health: 50, MaxHealth: 100}

	entity := &CharacterEntity{Character: character}
	assert.Equal(t, "char-123", entity.GetID())
	assert.Equal(t, "character", entity.GetType())
}

func TestWrapCharacterCopies(t *testing.T) {
	character := &entities.Character{ID: "char-123", Health: 50, MaxHealth: 100}

	wrapped := wrapCharacter(character)
	wrapped.SetHealth(10)

	assert.Equal(t, 50, character.Health)
	assert.Equal(t, 10, wrapped.Health)
}
