package leaderboard

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// ListLeaderboardInput defines the request for the top standings
type ListLeaderboardInput struct {
	Limit int64
}

// ListLeaderboardOutput defines the response for the top standings
type ListLeaderboardOutput struct {
	Entries []*entities.LeaderboardEntry
}

// GetUserStandingInput defines the request for one user's standing
type GetUserStandingInput struct {
	UserID string
}

// GetUserStandingOutput defines the response for one user's standing
type GetUserStandingOutput struct {
	Entry *entities.LeaderboardEntry
}
