// Package engine defines the combat resolver contract and its damage primitives
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-arena/internal/engine Engine

import (
	"context"
)

// Engine resolves combat between two characters.
//
// Callers must have checked that the acting user owns both participants;
// the engine does not see users or ownership.
type Engine interface {
	// ResolveCombat runs a full combat on copies of the two characters.
	// Returns errors.PreconditionViolation if the ids match or a participant has no health
	// Returns errors.CorruptState if a participant record is malformed
	ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error)

	// ResolveAttack resolves a single action of attacker against defender.
	// The defender is modified in place.
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
}
