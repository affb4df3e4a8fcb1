// Package inventory provides the interface for inventory persistence
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/rpg-arena/internal/repositories/inventory Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Repository stores one inventory document per character
type Repository interface {
	// Create stores the inventory of a new character
	// Returns errors.InvalidArgument for missing inventory or owner ID
	// Returns errors.AlreadyExists if the character already has an inventory
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves the inventory of a character
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.NotFound if no inventory exists
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing inventory
	// Returns errors.InvalidArgument for missing inventory or owner ID
	// Returns errors.NotFound if no inventory exists
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes the inventory of a character
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.NotFound if no inventory exists
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating an inventory
type CreateInput struct {
	Inventory *entities.Inventory
}

// CreateOutput defines the output for creating an inventory
type CreateOutput struct {
	Inventory *entities.Inventory
}

// GetInput defines the input for getting an inventory
type GetInput struct {
	OwnerID string
}

// GetOutput defines the output for getting an inventory
type GetOutput struct {
	Inventory *entities.Inventory
}

// UpdateInput defines the input for updating an inventory
type UpdateInput struct {
	Inventory *entities.Inventory
}

// UpdateOutput defines the output for updating an inventory
type UpdateOutput struct {
	Inventory *entities.Inventory
}

// DeleteInput defines the input for deleting an inventory
type DeleteInput struct {
	OwnerID string
}

// DeleteOutput defines the output for deleting an inventory
type DeleteOutput struct{}
