package entities

// CombatStatus is the state of a combat resolution
type CombatStatus string

// Combat states
const (
	CombatInProgress CombatStatus = "IN_PROGRESS"
	CombatWon        CombatStatus = "WON"
	CombatStalemate  CombatStatus = "STALEMATE"
)

// TurnEntry records one action inside a combat turn
type TurnEntry struct {
	Turn         int    `json:"turn"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
	TargetID     string `json:"target_id"`
	Hit          bool   `json:"hit"`
	Damage       int    `json:"damage"`
	TargetHealth int    `json:"target_health"`
	Message      string `json:"message"`
}

// Participant is a combatant as it ended the battle
type Participant struct {
	CharacterID string    `json:"character_id"`
	Name        string    `json:"name"`
	Class       ClassName `json:"class"`
	StartHealth int       `json:"start_health"`
	EndHealth   int       `json:"end_health"`
}

// BattleReport is the record of a finished combat
type BattleReport struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Participants []Participant `json:"participants"`
	WinnerID     string        `json:"winner_id,omitempty"`
	Status       CombatStatus  `json:"status"`
	Turns        int           `json:"turns"`
	Log          []TurnEntry   `json:"log"`
	Summary      string        `json:"summary"`
	CreatedAt    int64         `json:"created_at"`
}

// LeaderboardEntry tracks one user's record in the arena
type LeaderboardEntry struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	GamesPlayed int64  `json:"games_played"`
	GamesWon    int64  `json:"games_won"`
	Score       int64  `json:"score"`
	Rank        int64  `json:"rank"`
}
