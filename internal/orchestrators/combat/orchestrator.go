// Package combat runs arena battles between two characters owned by the
// acting user and records the outcome.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/access"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	battlerepo "github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
	characterrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	leaderboardrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/leaderboard"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
)

const (
	// ScorePerVictory is added to the user's leaderboard score for each decisive battle
	ScorePerVictory = 10

	// DefaultListLimit caps ListCombats when no limit is given
	DefaultListLimit = 20
)

// Service defines the combat orchestrator interface
type Service interface {
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)
	GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error)
	ListCombats(ctx context.Context, input *ListCombatsInput) (*ListCombatsOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	UserRepo        userrepo.Repository
	CharacterRepo   characterrepo.Repository
	BattleRepo      battlerepo.Repository
	LeaderboardRepo leaderboardrepo.Repository
	Engine          engine.Engine
	IDGenerator     idgen.Generator
	Clock           clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.LeaderboardRepo == nil {
		vb.RequiredField("LeaderboardRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	userRepo        userrepo.Repository
	characterRepo   characterrepo.Repository
	battleRepo      battlerepo.Repository
	leaderboardRepo leaderboardrepo.Repository
	engine          engine.Engine
	idGen           idgen.Generator
	clock           clock.Clock
}

// NewOrchestrator creates a new combat orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		userRepo:        cfg.UserRepo,
		characterRepo:   cfg.CharacterRepo,
		battleRepo:      cfg.BattleRepo,
		leaderboardRepo: cfg.LeaderboardRepo,
		engine:          cfg.Engine,
		idGen:           cfg.IDGenerator,
		clock:           c,
	}, nil
}

// StartCombat resolves a battle on copies of the two characters, stores the
// report and updates the user's leaderboard entry. Character records are
// left untouched, and the report is removed again when the leaderboard
// cannot be updated.
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("first_id", input.FirstID, vb)
	errors.ValidateRequired("second_id", input.SecondID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if input.FirstID == input.SecondID {
		return nil, errors.PreconditionViolation("a character cannot fight itself").
			WithMeta("character_id", input.FirstID)
	}

	u, err := access.LoadOwner(ctx, o.userRepo, input.UserID, input.FirstID, input.SecondID)
	if err != nil {
		return nil, err
	}

	chars, err := o.characterRepo.GetMany(ctx, characterrepo.GetManyInput{
		IDs: []string{input.FirstID, input.SecondID},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load fighters")
	}
	if len(chars.Missing) > 0 {
		return nil, errors.NotFoundf("character %s not found", chars.Missing[0]).
			WithMeta(errors.MetaKind, string(errors.KindNotFound))
	}
	first, second := chars.Characters[0], chars.Characters[1]

	result, err := o.engine.ResolveCombat(ctx, &engine.ResolveCombatInput{
		First:  first,
		Second: second,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve combat")
	}

	report := &entities.BattleReport{
		ID:     o.idGen.Generate(),
		UserID: u.ID,
		Participants: []entities.Participant{
			participant(first, result.First),
			participant(second, result.Second),
		},
		WinnerID:  result.WinnerID,
		Status:    result.Status,
		Turns:     result.Turns,
		Log:       result.Log,
		Summary:   result.Summary,
		CreatedAt: o.clock.Now().Unix(),
	}

	if _, err := o.battleRepo.Save(ctx, &battlerepo.SaveInput{Report: report}); err != nil {
		return nil, errors.Wrap(err, "failed to record battle")
	}

	standing, err := o.recordResult(ctx, u, result.Status == entities.CombatWon)
	if err != nil {
		// an uncounted battle must not show up in the history
		if _, delErr := o.battleRepo.Delete(ctx, &battlerepo.DeleteInput{ID: report.ID}); delErr != nil {
			slog.ErrorContext(ctx, "Failed to remove uncounted battle",
				"battle_id", report.ID,
				"error", delErr)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "Combat finished",
		"battle_id", report.ID,
		"user_id", u.ID,
		"status", report.Status,
		"winner_id", report.WinnerID,
		"turns", report.Turns)

	return &StartCombatOutput{
		Report:   report,
		First:    result.First,
		Second:   result.Second,
		Standing: standing,
	}, nil
}

// recordResult counts the battle, creating the user's entry on first use
func (o *orchestrator) recordResult(ctx context.Context, u *entities.User, won bool) (*entities.LeaderboardEntry, error) {
	input := leaderboardrepo.RecordResultInput{
		UserID: u.ID,
		Won:    won,
		Points: ScorePerVictory,
	}

	out, err := o.leaderboardRepo.RecordResult(ctx, input)
	if errors.IsNotFound(err) {
		if _, err := o.leaderboardRepo.Ensure(ctx, leaderboardrepo.EnsureInput{UserID: u.ID, Name: u.Name}); err != nil {
			return nil, errors.Wrap(err, "failed to create leaderboard entry")
		}
		out, err = o.leaderboardRepo.RecordResult(ctx, input)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update leaderboard")
	}
	return out.Entry, nil
}

func participant(start, end *entities.Character) entities.Participant {
	return entities.Participant{
		CharacterID: start.ID,
		Name:        start.Name,
		Class:       start.Class,
		StartHealth: start.Health,
		EndHealth:   end.Health,
	}
}

func (o *orchestrator) GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}
	if input.UserID == "" {
		return nil, errors.Unauthenticated("acting user is required")
	}

	out, err := o.battleRepo.Get(ctx, &battlerepo.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get battle")
	}
	if out.Report.UserID != input.UserID {
		return nil, errors.OwnershipViolationf("battle %s belongs to another user", input.BattleID).
			WithMeta("battle_id", input.BattleID)
	}

	return &GetCombatOutput{Report: out.Report}, nil
}

func (o *orchestrator) ListCombats(ctx context.Context, input *ListCombatsInput) (*ListCombatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.Unauthenticated("acting user is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	out, err := o.battleRepo.ListByUser(ctx, &battlerepo.ListByUserInput{UserID: input.UserID, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list battles")
	}

	return &ListCombatsOutput{Reports: out.Reports}, nil
}
