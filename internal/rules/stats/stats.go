// Package stats is the class catalog and the character stat rules derived from it
package stats

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// MaxNameLength is the longest character name in runes
const MaxNameLength = 30

// ClassStats is the base template of a class
type ClassStats struct {
	Class          entities.ClassName
	BaseHealth     int
	BaseAttack     int
	BaseDefense    int
	BaseSpeed      int
	SpecialName    string
	SpecialBase    int
	CostMultiplier int // percent
}

var catalog = map[entities.ClassName]ClassStats{
	entities.ClassMage: {
		Class:          entities.ClassMage,
		BaseHealth:     80,
		BaseAttack:     15,
		BaseDefense:    5,
		BaseSpeed:      12,
		SpecialName:    "mana",
		SpecialBase:    100,
		CostMultiplier: 120,
	},
	entities.ClassWarrior: {
		Class:          entities.ClassWarrior,
		BaseHealth:     100,
		BaseAttack:     20,
		BaseDefense:    10,
		BaseSpeed:      8,
		SpecialName:    "stamina",
		SpecialBase:    50,
		CostMultiplier: 100,
	},
	entities.ClassRogue: {
		Class:          entities.ClassRogue,
		BaseHealth:     90,
		BaseAttack:     17,
		BaseDefense:    7,
		BaseSpeed:      15,
		SpecialName:    "stealth",
		SpecialBase:    40,
		CostMultiplier: 110,
	},
}

// Catalog returns a copy of the class catalog
func Catalog() map[entities.ClassName]ClassStats {
	out := make(map[entities.ClassName]ClassStats, len(catalog))
	for k, v := range catalog {
		out[k] = v
	}
	return out
}

// Lookup returns the template for a class
func Lookup(class entities.ClassName) (ClassStats, error) {
	cs, ok := catalog[class]
	if !ok {
		return ClassStats{}, errors.InvalidClassf("unknown class %q", class)
	}
	return cs, nil
}

// ParseClass resolves a class name case-insensitively
func ParseClass(name string) (entities.ClassName, error) {
	trimmed := strings.TrimSpace(name)
	for _, class := range entities.AllClasses {
		if strings.EqualFold(trimmed, string(class)) {
			return class, nil
		}
	}
	return "", errors.InvalidClassf("unknown class %q", name)
}

// NormalizeName trims and NFC-normalizes a display name and checks its length
// and character set. Letters, digits, spaces, apostrophes, hyphens and
// underscores are allowed.
func NormalizeName(name string, maxLength int) (string, error) {
	normalized := norm.NFC.String(strings.TrimSpace(name))
	if normalized == "" {
		return "", errors.InvalidName("name is required")
	}
	if n := utf8.RuneCountInString(normalized); n > maxLength {
		return "", errors.InvalidName("name is too long").
			WithMeta("length", n).
			WithMeta("max_length", maxLength)
	}
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			continue
		}
		switch r {
		case ' ', '\'', '-', '_':
			continue
		}
		return "", errors.InvalidName("name contains disallowed characters").
			WithMeta("character", string(r))
	}
	return normalized, nil
}

// ValidateName checks a character name and returns its normalized form
func ValidateName(name string) (string, error) {
	return NormalizeName(name, MaxNameLength)
}

// Instantiate creates a character at its class template with full health.
// The caller assigns the id and timestamps.
func Instantiate(name string, class entities.ClassName) (*entities.Character, error) {
	cs, err := Lookup(class)
	if err != nil {
		return nil, err
	}
	normalized, err := ValidateName(name)
	if err != nil {
		return nil, err
	}

	return &entities.Character{
		Name:        normalized,
		Class:       cs.Class,
		Health:      cs.BaseHealth,
		MaxHealth:   cs.BaseHealth,
		Attack:      cs.BaseAttack,
		Defense:     cs.BaseDefense,
		Speed:       cs.BaseSpeed,
		Special:     cs.SpecialBase,
		SpecialName: cs.SpecialName,
	}, nil
}

// CostForClass is the creation cost of a class:
// round((2*attack + 2*defense + health) * multiplier / 100) over the base stats.
func CostForClass(class entities.ClassName) (int64, error) {
	cs, err := Lookup(class)
	if err != nil {
		return 0, err
	}
	weighted := float64(2*cs.BaseAttack + 2*cs.BaseDefense + cs.BaseHealth)
	return int64(math.Round(weighted * float64(cs.CostMultiplier) / 100)), nil
}

// ComputeCost prices a character from its class template only. Runtime
// fields such as health or buffed attack never affect the price.
func ComputeCost(c *entities.Character) (int64, error) {
	if c == nil {
		return 0, errors.CorruptState("character is nil")
	}
	return CostForClass(c.Class)
}
