package entities

// UserRole is the account role
type UserRole string

// Roles
const (
	RolePlayer              UserRole = "PLAYER"
	RoleAdmin               UserRole = "ADMIN"
	RoleTeamMemberDeveloper UserRole = "TEAM_MEMBER_DEVELOPER"
	RoleTester              UserRole = "TESTER"
)

// IsValid reports whether the role is known
func (r UserRole) IsValid() bool {
	switch r {
	case RolePlayer, RoleAdmin, RoleTeamMemberDeveloper, RoleTester:
		return true
	default:
		return false
	}
}

// User is an account with a credit balance and an ownership list
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Credits      int64    `json:"credits"`
	Role         UserRole `json:"role"`
	CharacterIDs []string `json:"character_ids"`
	CreatedAt    int64    `json:"created_at"`
	UpdatedAt    int64    `json:"updated_at"`
}

// Owns reports whether the character id is in the ownership list
func (u *User) Owns(characterID string) bool {
	for _, id := range u.CharacterIDs {
		if id == characterID {
			return true
		}
	}
	return false
}

// HasRoomForCharacter reports whether another character fits the ownership cap
func (u *User) HasRoomForCharacter() bool {
	return len(u.CharacterIDs) < MaxCharactersPerUser
}

// WithoutCharacter returns the ownership list minus the given id
func (u *User) WithoutCharacter(characterID string) []string {
	ids := make([]string, 0, len(u.CharacterIDs))
	for _, id := range u.CharacterIDs {
		if id != characterID {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clone returns an independent copy
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.CharacterIDs = append([]string(nil), u.CharacterIDs...)
	return &clone
}
