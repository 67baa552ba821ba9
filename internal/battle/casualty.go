package battle

import "math"

// Casualty model: two combat powers plus a duration factor become absolute
// losses for both sides. Each side is computed independently; there is no
// shared pool.

const (
	// maxCasualtyFraction caps losses in a single resolution.
	maxCasualtyFraction = 0.8
	// minCasualtyFraction is the blood price of showing up; no battle is
	// free for either side.
	minCasualtyFraction = 0.05
)

// CasualtyRate computes one side's loss rate from its advantage ratios.
// Both ratios are mine/enemy; disadvantage (ratio < 1) only ever adds
// casualties, never subtracts. Morale below 1 adds a further penalty.
func CasualtyRate(strengthRatio, powerRatio, morale float64, cfg Config) float64 {
	rate := cfg.BaseCasualtyRate

	if strengthRatio < 1.0 {
		rate += (1.0 - nonNegative(strengthRatio)) * cfg.StrengthRatioImpact * 0.15
	}
	if powerRatio < 1.0 {
		rate += (1.0 - nonNegative(powerRatio)) * 0.1
	}
	rate += (1.0 - clamp01(morale)) * cfg.MoraleCasualtyMultiplier * 0.1

	return rate
}

// BattleDuration derives the duration factor from strength parity: the
// more even the fight, the longer both sides stay on the field. The result
// is bounded to [BaseBattleDuration, MaxBattleDuration].
func BattleDuration(attackerPower, defenderPower float64, cfg Config) float64 {
	lo := math.Min(nonNegative(attackerPower), nonNegative(defenderPower))
	hi := math.Max(nonNegative(attackerPower), nonNegative(defenderPower))
	closeness := lo / math.Max(hi, 1.0)
	return cfg.BaseBattleDuration + (cfg.MaxBattleDuration-cfg.BaseBattleDuration)*closeness
}

// Casualties converts both sides' combat powers into absolute losses.
// A side with zero manpower loses nothing; everyone else pays at least the
// 5% floor and never more than the 80% cap.
func Casualties(attackerPower, defenderPower float64, attackerManpower, defenderManpower int, duration float64, cfg Config) (attackerCasualties, defenderCasualties int) {
	attackerAdvantage := attackerPower / math.Max(defenderPower, 1.0)
	defenderAdvantage := defenderPower / math.Max(attackerPower, 1.0)

	// Morale already scaled combat power upstream; it does not discount
	// the rate a second time here.
	attackerRate := CasualtyRate(attackerAdvantage, attackerAdvantage, 1.0, cfg)
	defenderRate := CasualtyRate(defenderAdvantage, defenderAdvantage, 1.0, cfg)

	attackerRate *= duration
	defenderRate *= duration

	attackerCasualties = casualtyCount(attackerManpower, attackerRate)
	defenderCasualties = casualtyCount(defenderManpower, defenderRate)
	return attackerCasualties, defenderCasualties
}

// casualtyCount applies the cap and floor for one side.
func casualtyCount(manpower int, rate float64) int {
	if manpower <= 0 {
		return 0
	}
	men := float64(manpower)
	losses := int(men * math.Min(nonNegative(rate), maxCasualtyFraction))
	if floor := int(men * minCasualtyFraction); losses < floor {
		losses = floor
	}
	if losses > manpower {
		losses = manpower
	}
	return losses
}
