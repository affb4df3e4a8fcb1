// Package access resolves the acting user and checks character ownership.
//
// The user's ownership list is the only authority on who controls a
// character; character records carry no owner. Every orchestrator that reads
// or mutates a character goes through RequireOwned first.
package access

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
)

// LoadUser fetches the acting user
func LoadUser(ctx context.Context, repo userrepo.Repository, userID string) (*entities.User, error) {
	if userID == "" {
		return nil, errors.Unauthenticated("acting user is required")
	}

	out, err := repo.Get(ctx, userrepo.GetInput{ID: userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}
	return out.User, nil
}

// RequireOwned fails with OwnershipViolation unless every id is in the
// user's ownership list
func RequireOwned(u *entities.User, characterIDs ...string) error {
	for _, id := range characterIDs {
		if id == "" {
			return errors.InvalidArgument("character ID is required")
		}
		if !u.Owns(id) {
			return errors.OwnershipViolationf("character %s is not owned by user %s", id, u.ID).
				WithMeta("character_id", id).
				WithMeta("user_id", u.ID)
		}
	}
	return nil
}

// LoadOwner fetches the acting user and checks it owns every id
func LoadOwner(ctx context.Context, repo userrepo.Repository, userID string, characterIDs ...string) (*entities.User, error) {
	u, err := LoadUser(ctx, repo, userID)
	if err != nil {
		return nil, err
	}
	if err := RequireOwned(u, characterIDs...); err != nil {
		return nil, err
	}
	return u, nil
}
