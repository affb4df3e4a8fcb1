package engine

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// ResolveCombatInput contains the two participants. The first one attacks first.
type ResolveCombatInput struct {
	First  *entities.Character
	Second *entities.Character
}

// ResolveCombatOutput contains the finished combat
type ResolveCombatOutput struct {
	Status   entities.CombatStatus
	WinnerID string
	LoserID  string
	Turns    int
	Log      []entities.TurnEntry
	Summary  string

	// Final snapshots. The input characters are never modified.
	First  *entities.Character
	Second *entities.Character
}

// ResolveAttackInput describes one action
type ResolveAttackInput struct {
	Turn     int
	Attacker *entities.Character
	Defender *entities.Character
}

// ResolveAttackOutput contains the action's log entry
type ResolveAttackOutput struct {
	Entry entities.TurnEntry
}
