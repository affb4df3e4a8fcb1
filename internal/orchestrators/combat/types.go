package combat

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// StartCombatInput names the two fighters. The first one attacks first.
type StartCombatInput struct {
	UserID   string
	FirstID  string
	SecondID string
}

// StartCombatOutput contains the recorded battle and the fighters' final
// state. The final state is not persisted.
type StartCombatOutput struct {
	Report   *entities.BattleReport
	First    *entities.Character
	Second   *entities.Character
	Standing *entities.LeaderboardEntry
}

// GetCombatInput identifies a recorded battle
type GetCombatInput struct {
	UserID   string
	BattleID string
}

// GetCombatOutput contains a recorded battle
type GetCombatOutput struct {
	Report *entities.BattleReport
}

// ListCombatsInput selects the user's recent battles. A zero Limit uses
// DefaultListLimit.
type ListCombatsInput struct {
	UserID string
	Limit  int
}

// ListCombatsOutput lists battles newest first
type ListCombatsOutput struct {
	Reports []*entities.BattleReport
}
