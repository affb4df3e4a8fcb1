package client

import (
	"fmt"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// requestError restores the server's error kind and adds a hint for the
// failures a user can act on
func requestError(action string, err error) error {
	err = errors.FromGRPCError(err)

	var hint string
	switch {
	case errors.IsKind(err, errors.KindInsufficientCredits):
		hint = "not enough credits, delete a character for a refund"
	case errors.IsPermissionDenied(err):
		hint = "check --user, the character belongs to someone else"
	case errors.IsDataLoss(err):
		hint = "stored data is corrupt, run scripts/scan-corrupted-characters.go"
	case errors.IsInternal(err):
		hint = "server error, see the server logs"
	}

	if hint == "" {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	return fmt.Errorf("failed to %s (%s): %w", action, hint, err)
}
