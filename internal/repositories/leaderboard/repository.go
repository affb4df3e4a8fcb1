// Package leaderboard provides the interface for arena standings persistence
package leaderboard

//go:generate mockgen -destination=mock/mock_repository.go -package=leaderboardmock github.com/KirkDiggler/rpg-arena/internal/repositories/leaderboard Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Repository tracks per-user battle records ranked by score
type Repository interface {
	// Ensure creates an empty entry for the user if none exists
	// Returns errors.InvalidArgument for an empty user ID
	// Returns errors.Internal for storage failures
	Ensure(ctx context.Context, input EnsureInput) (*EnsureOutput, error)

	// RecordResult counts a played battle and, when won, a victory worth Points
	// Returns errors.InvalidArgument for an empty user ID or negative points
	// Returns errors.NotFound if the user has no entry
	// Returns errors.Internal for storage failures
	RecordResult(ctx context.Context, input RecordResultInput) (*RecordResultOutput, error)

	// Get returns the entry and 1-based rank of a user
	// Returns errors.InvalidArgument for an empty user ID
	// Returns errors.NotFound if the user has no entry
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns the top entries ordered by score, highest first
	// Returns errors.InvalidArgument for a non-positive limit
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// EnsureInput defines the input for creating an entry
type EnsureInput struct {
	UserID string
	Name   string
}

// EnsureOutput defines the output for creating an entry
type EnsureOutput struct {
	Entry *entities.LeaderboardEntry
}

// RecordResultInput defines the input for recording a battle
type RecordResultInput struct {
	UserID string
	Won    bool
	Points int64
}

// RecordResultOutput defines the output for recording a battle
type RecordResultOutput struct {
	Entry *entities.LeaderboardEntry
}

// GetInput defines the input for getting an entry
type GetInput struct {
	UserID string
}

// GetOutput defines the output for getting an entry
type GetOutput struct {
	Entry *entities.LeaderboardEntry
}

// ListInput defines the input for listing the top entries
type ListInput struct {
	Limit int64
}

// ListOutput defines the output for listing the top entries
type ListOutput struct {
	Entries []*entities.LeaderboardEntry
}
