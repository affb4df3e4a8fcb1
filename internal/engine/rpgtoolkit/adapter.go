// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/engine"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
	maxTurns   int
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller

	// MaxTurns overrides engine.MaxTurns when positive
	MaxTurns int
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	if c.MaxTurns < 0 {
		return errors.InvalidArgument("max turns cannot be negative")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = engine.MaxTurns
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
		maxTurns:   maxTurns,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// ResolveCombat alternates strictly: first acts, then second if still standing.
// A participant brought to 0 health never takes its retaliation turn.
func (a *Adapter) ResolveCombat(
	ctx context.Context,
	input *engine.ResolveCombatInput,
) (*engine.ResolveCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkParticipants(input.First, input.Second); err != nil {
		return nil, err
	}

	first := wrapCharacter(input.First)
	second := wrapCharacter(input.Second)

	combatLog := make([]entities.TurnEntry, 0, 16)
	for turn := 1; turn <= a.maxTurns; turn++ {
		entry, err := a.attack(turn, first, second)
		if err != nil {
			return nil, err
		}
		combatLog = append(combatLog, entry)
		if !second.IsAlive() {
			return a.finish(ctx, first, second, first, second, turn, combatLog), nil
		}

		entry, err = a.attack(turn, second, first)
		if err != nil {
			return nil, err
		}
		combatLog = append(combatLog, entry)
		if !first.IsAlive() {
			return a.finish(ctx, first, second, second, first, turn, combatLog), nil
		}
	}

	summary := fmt.Sprintf("Stalemate: neither %s nor %s fell within %d turns",
		first.Name, second.Name, a.maxTurns)

	slog.WarnContext(ctx, "combat reached turn cap",
		"first_id", first.GetID(),
		"second_id", second.GetID(),
		"max_turns", a.maxTurns)

	return &engine.ResolveCombatOutput{
		Status:  entities.CombatStalemate,
		Turns:   a.maxTurns,
		Log:     combatLog,
		Summary: summary,
		First:   first.Character,
		Second:  second.Character,
	}, nil
}

// ResolveAttack resolves one action and applies its damage to the defender
func (a *Adapter) ResolveAttack(
	_ context.Context,
	input *engine.ResolveAttackInput,
) (*engine.ResolveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Attacker.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid attacker")
	}
	if err := input.Defender.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid defender")
	}

	attacker := &CharacterEntity{Character: input.Attacker}
	defender := &CharacterEntity{Character: input.Defender}

	entry, err := a.attack(input.Turn, attacker, defender)
	if err != nil {
		return nil, err
	}

	return &engine.ResolveAttackOutput{Entry: entry}, nil
}

func checkParticipants(first, second *entities.Character) error {
	if err := first.Validate(); err != nil {
		return errors.Wrap(err, "invalid first participant")
	}
	if err := second.Validate(); err != nil {
		return errors.Wrap(err, "invalid second participant")
	}
	if first.ID == second.ID {
		return errors.PreconditionViolation("a character cannot fight itself").
			WithMeta("character_id", first.ID)
	}
	for _, c := range []*entities.Character{first, second} {
		if !c.IsAlive() {
			return errors.PreconditionViolation("a character with no health cannot enter combat").
				WithMeta("character_id", c.ID)
		}
	}
	return nil
}

// attack draws a d100 against the hit chance and, on a hit, a d21 for the
// -10%..+10% damage band.
func (a *Adapter) attack(turn int, attacker, defender *CharacterEntity) (entities.TurnEntry, error) {
	entry := entities.TurnEntry{
		Turn:      turn,
		ActorID:   attacker.GetID(),
		ActorName: attacker.Name,
		TargetID:  defender.GetID(),
	}

	chance := engine.HitChance(attacker.Speed, defender.Speed)
	roll, err := a.diceRoller.Roll(100)
	if err != nil {
		return entry, errors.Wrap(err, "failed to roll to hit")
	}

	if roll > chance {
		entry.TargetHealth = defender.Health
		entry.Message = fmt.Sprintf("Turn %d: %s misses %s", turn, attacker.Name, defender.Name)
		return entry, nil
	}

	band, err := a.diceRoller.Roll(2*engine.VariancePercent + 1)
	if err != nil {
		return entry, errors.Wrap(err, "failed to roll damage")
	}
	percent := band - (engine.VariancePercent + 1)
	damage := engine.ApplyVariance(engine.MitigatedDamage(attacker.Attack, defender.Defense), percent)

	defender.SetHealth(defender.Health - damage)

	entry.Hit = true
	entry.Damage = damage
	entry.TargetHealth = defender.Health
	entry.Message = fmt.Sprintf("Turn %d: %s hits %s for %d damage (%d HP left)",
		turn, attacker.Name, defender.Name, damage, defender.Health)
	return entry, nil
}

func (a *Adapter) finish(
	ctx context.Context,
	first, second *CharacterEntity,
	winner, loser core.Entity,
	turns int,
	combatLog []entities.TurnEntry,
) *engine.ResolveCombatOutput {
	winnerName := first.Name
	if winner.GetID() == second.GetID() {
		winnerName = second.Name
	}

	slog.DebugContext(ctx, "combat resolved",
		"winner_id", winner.GetID(),
		"loser_id", loser.GetID(),
		"turns", turns,
		"actions", len(combatLog))

	return &engine.ResolveCombatOutput{
		Status:   entities.CombatWon,
		WinnerID: winner.GetID(),
		LoserID:  loser.GetID(),
		Turns:    turns,
		Log:      combatLog,
		Summary:  fmt.Sprintf("%s wins after %d turns", winnerName, turns),
		First:    first.Character,
		Second:   second.Character,
	}
}
