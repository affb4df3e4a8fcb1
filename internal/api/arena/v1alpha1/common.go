package arenav1alpha1

// UserIDHeader is the metadata key carrying the acting user's id
const UserIDHeader = "x-user-id"

// Character is a character record on the wire
type Character struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	Health      int32  `json:"health"`
	MaxHealth   int32  `json:"max_health"`
	Attack      int32  `json:"attack"`
	Defense     int32  `json:"defense"`
	Speed       int32  `json:"speed"`
	Special     int32  `json:"special"`
	SpecialName string `json:"special_name"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// Item is an inventory item on the wire
type Item struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	ItemClass string `json:"item_class"`
	Value     int32  `json:"value"`
	Custom    bool   `json:"custom,omitempty"`
}

// Inventory is a character's ordered item list
type Inventory struct {
	OwnerId   string  `json:"owner_id"`
	Items     []*Item `json:"items"`
	UpdatedAt int64   `json:"updated_at"`
}

// User is an account on the wire
type User struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Credits      int64    `json:"credits"`
	Role         string   `json:"role"`
	CharacterIds []string `json:"character_ids"`
	CreatedAt    int64    `json:"created_at"`
}

// LeaderboardEntry is one user's standing
type LeaderboardEntry struct {
	UserId      string `json:"user_id"`
	Name        string `json:"name"`
	GamesPlayed int64  `json:"games_played"`
	GamesWon    int64  `json:"games_won"`
	Score       int64  `json:"score"`
	Rank        int64  `json:"rank"`
}

// Participant is a fighter's health at the start and end of a battle
type Participant struct {
	CharacterId string `json:"character_id"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	StartHealth int32  `json:"start_health"`
	EndHealth   int32  `json:"end_health"`
}

// TurnEntry is one logged combat action
type TurnEntry struct {
	Turn         int32  `json:"turn"`
	ActorId      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
	TargetId     string `json:"target_id"`
	Hit          bool   `json:"hit"`
	Damage       int32  `json:"damage"`
	TargetHealth int32  `json:"target_health"`
	Message      string `json:"message"`
}

// BattleReport is a recorded battle
type BattleReport struct {
	Id           string         `json:"id"`
	Participants []*Participant `json:"participants"`
	WinnerId     string         `json:"winner_id,omitempty"`
	Status       string         `json:"status"`
	Turns        int32          `json:"turns"`
	Log          []*TurnEntry   `json:"log"`
	Summary      string         `json:"summary"`
	CreatedAt    int64          `json:"created_at"`
}
