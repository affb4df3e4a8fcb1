package testutils

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/testutils/builders"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Conan"

	// TestUserID is the default acting user
	TestUserID = "user-test-001"
)

// CreateTestWarrior creates a full-health Warrior at its class template
func CreateTestWarrior(id string) *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithName(TestCharacterName).
		AsClass(entities.ClassWarrior).
		Build()
}

// CreateTestMage creates a full-health Mage at its class template
func CreateTestMage(id string) *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithName("Merlin").
		AsClass(entities.ClassMage).
		Build()
}

// CreateTestUser creates a player owning the given characters
func CreateTestUser(id string, credits int64, characterIDs ...string) *entities.User {
	if characterIDs == nil {
		characterIDs = []string{}
	}
	return &entities.User{
		ID:           id,
		Name:         "Player " + id,
		Email:        id + "@arena.test",
		Credits:      credits,
		Role:         entities.RolePlayer,
		CharacterIDs: characterIDs,
	}
}

// CreateTestInventory creates an inventory holding the given items in order
func CreateTestInventory(ownerID string, items ...entities.Item) *entities.Inventory {
	inv := entities.NewInventory(ownerID)
	inv.Items = append(inv.Items, items...)
	return inv
}
