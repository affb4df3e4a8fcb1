package engine

// Combat tuning
const (
	// MaxTurns ends a combat as a stalemate when reached
	MaxTurns = 1000

	BaseHitChance     = 70
	HitChancePerSpeed = 2
	MinHitChance      = 10
	MaxHitChance      = 95

	// VariancePercent is the half width of the damage band
	VariancePercent = 10
)

// MitigatedDamage is the damage a blow of the given power deals through the
// given defense. It is never below 1.
func MitigatedDamage(power, defense int) int {
	damage := power - defense/2
	if damage < 1 {
		return 1
	}
	return damage
}

// HitChance is the percent chance an attacker with attackerSpeed hits a
// defender with defenderSpeed, clamped to [MinHitChance, MaxHitChance].
func HitChance(attackerSpeed, defenderSpeed int) int {
	chance := BaseHitChance + HitChancePerSpeed*(attackerSpeed-defenderSpeed)
	switch {
	case chance < MinHitChance:
		return MinHitChance
	case chance > MaxHitChance:
		return MaxHitChance
	default:
		return chance
	}
}

// ApplyVariance scales damage by (100+percent)/100, floored, never below 1
func ApplyVariance(damage, percent int) int {
	scaled := damage * (100 + percent) / 100
	if scaled < 1 {
		return 1
	}
	return scaled
}
