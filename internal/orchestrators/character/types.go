package character

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
)

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	UserID       string
	Name         string
	Class        string
	StartingItem string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
	Inventory *entities.Inventory
	Cost      int64
	Credits   int64
	Message   string
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	UserID      string
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing a user's characters
type ListCharactersInput struct {
	UserID string
}

// ListCharactersOutput lists the user's characters in ownership order.
// Missing holds owned ids whose record could not be found.
type ListCharactersOutput struct {
	Characters []*entities.Character
	Missing    []string
}

// UpdateCharacterInput defines the request for renaming a character.
// Class may repeat the current class; any other value is rejected.
type UpdateCharacterInput struct {
	UserID      string
	CharacterID string
	Name        string
	Class       string
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	Character *entities.Character
	Message   string
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	UserID      string
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Refund  int64
	Credits int64
	Message string
}

// GetCharacterStatsInput defines the request for a user's character statistics
type GetCharacterStatsInput struct {
	UserID string
}

// GetCharacterStatsOutput counts the user's characters by class
type GetCharacterStatsOutput struct {
	Total           int
	ByClass         map[entities.ClassName]int
	MostPlayed      entities.ClassName
	MostPlayedCount int
}

// ListClassesInput defines the request for the class catalog
type ListClassesInput struct{}

// ClassInfo is a class template with its creation cost
type ClassInfo struct {
	Stats stats.ClassStats
	Cost  int64
}

// ListClassesOutput lists the classes in display order
type ListClassesOutput struct {
	Classes []ClassInfo
}
