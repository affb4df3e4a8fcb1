// Package user registers accounts and seeds the built-in ones
package user

//go:generate mockgen -destination=mock/mock_service.go -package=usermock github.com/KirkDiggler/rpg-arena/internal/orchestrators/user Service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
	leaderboardrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/leaderboard"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
)

// DefaultStartingCredits is the balance of a newly registered player
const DefaultStartingCredits int64 = 1000

// MaxEmailLength is the longest address accepted at registration
const MaxEmailLength = 254

// Service defines the user orchestrator interface
type Service interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)
	GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error)
	SeedDefaultUsers(ctx context.Context, input *SeedDefaultUsersInput) (*SeedDefaultUsersOutput, error)
}

// Config holds the dependencies for the user orchestrator
type Config struct {
	UserRepo        userrepo.Repository
	LeaderboardRepo leaderboardrepo.Repository
	IDGenerator     idgen.Generator

	// StartingCredits defaults to DefaultStartingCredits when zero
	StartingCredits int64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.LeaderboardRepo == nil {
		vb.RequiredField("LeaderboardRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.StartingCredits < 0 {
		vb.InvalidField("StartingCredits", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	userRepo        userrepo.Repository
	leaderboardRepo leaderboardrepo.Repository
	idGen           idgen.Generator
	startingCredits int64
}

// NewOrchestrator creates a new user orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	credits := cfg.StartingCredits
	if credits == 0 {
		credits = DefaultStartingCredits
	}

	return &orchestrator{
		userRepo:        cfg.UserRepo,
		leaderboardRepo: cfg.LeaderboardRepo,
		idGen:           cfg.IDGenerator,
		startingCredits: credits,
	}, nil
}

func (o *orchestrator) RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name, err := stats.ValidateName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	u, err := o.create(ctx, &entities.User{
		ID:      o.idGen.Generate(),
		Name:    name,
		Email:   email,
		Credits: o.startingCredits,
		Role:    entities.RolePlayer,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterUserOutput{
		User:    u,
		Message: fmt.Sprintf("Welcome to the arena, %s! You start with %d credits.", u.Name, u.Credits),
	}, nil
}

func (o *orchestrator) GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.Unauthenticated("acting user is required")
	}

	out, err := o.userRepo.Get(ctx, userrepo.GetInput{ID: input.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return &GetUserOutput{User: out.User}, nil
}

// SeedDefaultUsers creates every DefaultAccounts entry whose name is not
// taken yet. Running it again creates nothing.
func (o *orchestrator) SeedDefaultUsers(ctx context.Context, _ *SeedDefaultUsersInput) (*SeedDefaultUsersOutput, error) {
	created := make([]*entities.User, 0, len(DefaultAccounts))

	for _, account := range DefaultAccounts {
		_, err := o.userRepo.GetByName(ctx, userrepo.GetByNameInput{Name: account.Name})
		if err == nil {
			continue
		}
		if !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to look up default user %s", account.Name)
		}

		u, err := o.create(ctx, &entities.User{
			ID:      o.idGen.Generate(),
			Name:    account.Name,
			Email:   strings.ToLower(account.Name) + "@arena.local",
			Credits: account.Credits,
			Role:    account.Role,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, u)
	}

	if len(created) > 0 {
		slog.InfoContext(ctx, "Seeded default users", "count", len(created))
	}

	return &SeedDefaultUsersOutput{Created: created}, nil
}

// create stores the user and opens its leaderboard entry
func (o *orchestrator) create(ctx context.Context, u *entities.User) (*entities.User, error) {
	u.CharacterIDs = []string{}

	out, err := o.userRepo.Create(ctx, userrepo.CreateInput{User: u})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	if _, err := o.leaderboardRepo.Ensure(ctx, leaderboardrepo.EnsureInput{
		UserID: out.User.ID,
		Name:   out.User.Name,
	}); err != nil {
		// Combat creates the entry on demand, so the account stays usable
		slog.WarnContext(ctx, "Failed to create leaderboard entry",
			"user_id", out.User.ID,
			"error", err.Error())
	}

	slog.InfoContext(ctx, "User registered",
		"user_id", out.User.ID,
		"name", out.User.Name,
		"role", out.User.Role)

	return out.User, nil
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", errors.InvalidArgument("email is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("email", trimmed, MaxEmailLength, vb)
	if err := vb.Build(); err != nil {
		return "", err
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", errors.InvalidArgumentf("invalid email %q", trimmed).
			WithMeta("email", trimmed)
	}
	return strings.ToLower(addr.Address), nil
}
