// Package leaderboard reads the arena standings
package leaderboard

//go:generate mockgen -destination=mock/mock_service.go -package=leaderboardmock github.com/KirkDiggler/rpg-arena/internal/orchestrators/leaderboard Service

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	leaderboardrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/leaderboard"
)

const (
	// DefaultLimit is used when the request carries no limit
	DefaultLimit int64 = 10

	// MaxLimit caps a single page of standings
	MaxLimit int64 = 100
)

// Service defines the leaderboard orchestrator interface
type Service interface {
	ListLeaderboard(ctx context.Context, input *ListLeaderboardInput) (*ListLeaderboardOutput, error)
	GetUserStanding(ctx context.Context, input *GetUserStandingInput) (*GetUserStandingOutput, error)
}

// Config holds the dependencies for the leaderboard orchestrator
type Config struct {
	LeaderboardRepo leaderboardrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.LeaderboardRepo == nil {
		vb.RequiredField("LeaderboardRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	leaderboardRepo leaderboardrepo.Repository
}

// NewOrchestrator creates a new leaderboard orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{leaderboardRepo: cfg.LeaderboardRepo}, nil
}

// ListLeaderboard returns the highest scores first. A non-positive limit
// means DefaultLimit; larger limits are capped at MaxLimit.
func (o *orchestrator) ListLeaderboard(ctx context.Context, input *ListLeaderboardInput) (*ListLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	limit := input.Limit
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	out, err := o.leaderboardRepo.List(ctx, leaderboardrepo.ListInput{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leaderboard")
	}

	return &ListLeaderboardOutput{Entries: out.Entries}, nil
}

func (o *orchestrator) GetUserStanding(ctx context.Context, input *GetUserStandingInput) (*GetUserStandingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.Unauthenticated("acting user is required")
	}

	out, err := o.leaderboardRepo.Get(ctx, leaderboardrepo.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get standing")
	}

	return &GetUserStandingOutput{Entry: out.Entry}, nil
}
