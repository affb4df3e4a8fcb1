package user

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// RegisterUserInput defines the request for creating an account
type RegisterUserInput struct {
	Name  string
	Email string
}

// RegisterUserOutput defines the response for creating an account
type RegisterUserOutput struct {
	User    *entities.User
	Message string
}

// GetUserInput defines the request for loading an account
type GetUserInput struct {
	UserID string
}

// GetUserOutput defines the response for loading an account
type GetUserOutput struct {
	User *entities.User
}

// SeedDefaultUsersInput defines the request for creating the built-in accounts
type SeedDefaultUsersInput struct{}

// SeedDefaultUsersOutput lists the accounts that were created. Accounts that
// already existed are not listed.
type SeedDefaultUsersOutput struct {
	Created []*entities.User
}

// DefaultAccount describes a built-in account
type DefaultAccount struct {
	Name    string
	Credits int64
	Role    entities.UserRole
}

// DefaultAccounts are created at startup when absent
var DefaultAccounts = []DefaultAccount{
	{Name: "Admin", Credits: 10_000_000, Role: entities.RoleAdmin},
	{Name: "Player", Credits: 1_000_000, Role: entities.RolePlayer},
	{Name: "Developer", Credits: 1_000_000, Role: entities.RoleTeamMemberDeveloper},
}
