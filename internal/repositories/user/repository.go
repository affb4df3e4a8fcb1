// Package user provides the interface for account persistence
package user

//go:generate mockgen -destination=mock/mock_repository.go -package=usermock github.com/KirkDiggler/rpg-arena/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Repository stores users together with their ordered character ownership list
type Repository interface {
	// Create stores a new user
	// Returns errors.InvalidArgument for missing fields or negative credits
	// Returns errors.AlreadyExists if the ID or name is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a user by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the user doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByName retrieves a user by exact name
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if the user doesn't exist
	// Returns errors.Internal for storage failures
	GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error)

	// Update replaces the user's fields and ownership list in one transaction
	// Returns errors.InvalidArgument for missing fields or negative credits
	// Returns errors.NotFound if the user doesn't exist
	// Returns errors.AlreadyExists if the name or a character is taken by another user
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}

// CreateInput defines the input for creating a user
type CreateInput struct {
	User *entities.User
}

// CreateOutput defines the output for creating a user
type CreateOutput struct {
	User *entities.User
}

// GetInput defines the input for getting a user
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a user
type GetOutput struct {
	User *entities.User
}

// GetByNameInput defines the input for getting a user by name
type GetByNameInput struct {
	Name string
}

// GetByNameOutput defines the output for getting a user by name
type GetByNameOutput struct {
	User *entities.User
}

// UpdateInput defines the input for updating a user
type UpdateInput struct {
	User *entities.User
}

// UpdateOutput defines the output for updating a user
type UpdateOutput struct {
	User *entities.User
}
