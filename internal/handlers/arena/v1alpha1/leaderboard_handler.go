package v1alpha1

import (
	"context"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/leaderboard"
)

// LeaderboardHandlerConfig holds dependencies for the leaderboard handler
type LeaderboardHandlerConfig struct {
	LeaderboardService leaderboard.Service
}

// Validate ensures all required dependencies are present
func (c *LeaderboardHandlerConfig) Validate() error {
	if c.LeaderboardService == nil {
		return errors.InvalidArgument("leaderboard service is required")
	}
	return nil
}

// LeaderboardHandler implements the arena leaderboard gRPC service
type LeaderboardHandler struct {
	arenav1alpha1.UnimplementedLeaderboardServiceServer
	leaderboardService leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler with the given configuration
func NewLeaderboardHandler(cfg *LeaderboardHandlerConfig) (*LeaderboardHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &LeaderboardHandler{
		leaderboardService: cfg.LeaderboardService,
	}, nil
}

// ListLeaderboard returns the top standings. It needs no acting user.
func (h *LeaderboardHandler) ListLeaderboard(
	ctx context.Context,
	req *arenav1alpha1.ListLeaderboardRequest,
) (*arenav1alpha1.ListLeaderboardResponse, error) {
	output, err := h.leaderboardService.ListLeaderboard(ctx, &leaderboard.ListLeaderboardInput{Limit: req.Limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]*arenav1alpha1.LeaderboardEntry, 0, len(output.Entries))
	for _, e := range output.Entries {
		entries = append(entries, convertEntryToProto(e))
	}

	return &arenav1alpha1.ListLeaderboardResponse{Entries: entries}, nil
}

// GetUserStanding returns the acting user's standing
func (h *LeaderboardHandler) GetUserStanding(
	ctx context.Context,
	_ *arenav1alpha1.GetUserStandingRequest,
) (*arenav1alpha1.GetUserStandingResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.leaderboardService.GetUserStanding(ctx, &leaderboard.GetUserStandingInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.GetUserStandingResponse{Entry: convertEntryToProto(output.Entry)}, nil
}
