// Package battles stores finished battle reports so a combat log can be replayed
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/rpg-arena/internal/repositories/battles Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Repository defines operations for battle report persistence
type Repository interface {
	// Save stores a new battle report
	// Returns errors.InvalidArgument for missing report, ID or user ID
	// Returns errors.AlreadyExists if a report with the ID exists
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a battle report by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no report exists
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListByUser returns a user's reports, newest first
	// Returns errors.InvalidArgument for an empty user ID
	ListByUser(ctx context.Context, input *ListByUserInput) (*ListByUserOutput, error)

	// Delete removes a battle report
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no report exists
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput contains the report to store
type SaveInput struct {
	Report *entities.BattleReport
}

// SaveOutput is returned by Save
type SaveOutput struct{}

// GetInput identifies a report
type GetInput struct {
	ID string
}

// GetOutput contains the stored report
type GetOutput struct {
	Report *entities.BattleReport
}

// ListByUserInput selects a user's reports. A zero Limit returns all of them.
type ListByUserInput struct {
	UserID string
	Limit  int
}

// ListByUserOutput contains the selected reports
type ListByUserOutput struct {
	Reports []*entities.BattleReport
}

// DeleteInput identifies the report to remove
type DeleteInput struct {
	ID string
}

// DeleteOutput is returned by Delete
type DeleteOutput struct{}
