// Package economy prices characters. It computes amounts only; the caller
// owns the credit balance and applies the amounts to it.
package economy

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
)

// RefundRate is the fraction of the creation cost returned on deletion
const RefundRate = 0.5

// CreationCost is what a character of this class costs to create
func CreationCost(c *entities.Character) (int64, error) {
	return stats.ComputeCost(c)
}

// DeletionRefund is round(CreationCost * RefundRate). It depends only on the
// class, so it is the same whatever happened to the character since creation.
func DeletionRefund(c *entities.Character) (int64, error) {
	cost, err := CreationCost(c)
	if err != nil {
		return 0, err
	}
	return Refund(cost), nil
}

// Refund applies RefundRate to a cost
func Refund(cost int64) int64 {
	return int64(math.Round(float64(cost) * RefundRate))
}

// CanAfford returns an InsufficientCredits error when credits < cost
func CanAfford(credits, cost int64) error {
	if credits < cost {
		return errors.InsufficientCredits(fmt.Sprintf("need %d credits, have %d", cost, credits)).
			WithMeta("cost", cost).
			WithMeta("credits", credits)
	}
	return nil
}
