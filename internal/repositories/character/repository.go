// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=characterrepomock github.com/KirkDiggler/rpg-arena/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for missing character or ID
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetMany retrieves characters in the order of the given IDs.
	// IDs with no stored character are reported in Missing, not as an error.
	// Returns errors.Internal for storage failures
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error)

	// Update replaces an existing character
	// Returns errors.InvalidArgument for missing character or ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Scan walks every stored character. Values that do not decode are
	// reported by key in Undecodable.
	// Returns errors.Internal for storage failures
	Scan(ctx context.Context, input ScanInput) (*ScanOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// GetManyInput defines the input for getting several characters
type GetManyInput struct {
	IDs []string
}

// GetManyOutput defines the output for getting several characters
type GetManyOutput struct {
	Characters []*entities.Character
	Missing    []string
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ScanInput defines the input for scanning characters
type ScanInput struct {
	// BatchSize is the SCAN count hint; 0 uses the default
	BatchSize int64
}

// ScanOutput defines the output for scanning characters
type ScanOutput struct {
	Characters  []*entities.Character
	Undecodable []string
}
