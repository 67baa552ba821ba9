// resolve.go
package battle

import (
	"fmt"
	"math"
	"strings"
)

// Manpower is the army's aggregate headcount. Callers normally maintain
// TotalStrength; if they left it unset the units are summed instead so a
// bookkeeping bug elsewhere cannot zero out a battle.
func (a *Army) Manpower() int {
	if a.TotalStrength > 0 {
		return a.TotalStrength
	}
	total := 0
	for _, u := range a.Units {
		if u.CurrentStrength > 0 {
			total += u.CurrentStrength
		}
	}
	return total
}

// Resolve runs one complete battle: strength aggregation, casualties,
// routing, outcome classification, and score derivation. It is pure and
// deterministic; both armies are read-only and every effect comes back as
// a delta on the Result. Commanders and the fortification are optional
// (nil disables that contribution); the fortification only ever helps the
// defender. A nil army is a programming error and will panic.
func Resolve(attacker, defender *Army, ctx Context, attackerCommander, defenderCommander *Commander, fortification *Fortification, cfg Config) Result {
	attackerEnv := EnvironmentModifier(ctx, attacker, cfg)
	defenderEnv := EnvironmentModifier(ctx, defender, cfg)
	fortBonus := FortificationBonus(fortification, cfg)

	attackerPower := CombatStrength(attacker, attackerCommander, attackerEnv, 0, cfg)
	defenderPower := CombatStrength(defender, defenderCommander, defenderEnv, fortBonus, cfg)

	duration := BattleDuration(attackerPower, defenderPower, cfg)
	// A side that takes the field already routing breaks at first contact;
	// the engagement never develops past the base duration.
	if clamp01(attacker.Morale) < cfg.RoutingThreshold || clamp01(defender.Morale) < cfg.RoutingThreshold {
		duration = cfg.BaseBattleDuration
	}

	attackerMen := attacker.Manpower()
	defenderMen := defender.Manpower()

	var result Result
	result.BattleDuration = duration
	result.AttackerCasualties, result.DefenderCasualties = Casualties(
		attackerPower, defenderPower, attackerMen, defenderMen, duration, cfg)

	attackerFraction := casualtyFraction(result.AttackerCasualties, attackerMen)
	defenderFraction := casualtyFraction(result.DefenderCasualties, defenderMen)

	result.AttackerRouted = CheckRouting(attacker.Morale, attackerFraction, cfg)
	result.DefenderRouted = CheckRouting(defender.Morale, defenderFraction, cfg)

	result.Outcome = ClassifyOutcome(
		attackerMen, defenderMen,
		result.AttackerCasualties, result.DefenderCasualties,
		attacker.Morale, defender.Morale, cfg)

	result.AttackerMoraleChange = MoraleChange(attackerMen, result.AttackerCasualties, result.Outcome, true, cfg)
	result.DefenderMoraleChange = MoraleChange(defenderMen, result.DefenderCasualties, result.Outcome, false, cfg)

	result.AttackerExperienceGain = ExperienceGain(
		result.DefenderCasualties, result.AttackerCasualties, result.Outcome, result.Outcome.AttackerWon(), cfg)
	result.DefenderExperienceGain = ExperienceGain(
		result.AttackerCasualties, result.DefenderCasualties, result.Outcome, result.Outcome.DefenderWon(), cfg)

	result.WarScoreChange = WarScoreChange(result.Outcome, result.AttackerCasualties+result.DefenderCasualties, cfg)

	defeated := result.AttackerCasualties
	if result.Outcome.AttackerWon() {
		defeated = result.DefenderCasualties
	}
	result.PrestigeChange = PrestigeChange(result.Outcome, defeated, cfg)

	result.BattleIntensity = duration * (attackerPower + defenderPower) / 2000.0
	result.CasualtyRatio = float64(result.AttackerCasualties) / math.Max(float64(result.DefenderCasualties), 1.0)

	return result
}

// Summary renders a human-readable battle report. It is a display helper
// for logging and UI; nothing in the resolution contract depends on it.
func Summary(r Result, attackerName, defenderName, locationName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Battle of %s\n", locationName)
	fmt.Fprintf(&b, "Outcome: %s\n\n", r.Outcome)

	fmt.Fprintf(&b, "%s Casualties: %d\n", attackerName, r.AttackerCasualties)
	fmt.Fprintf(&b, "%s Casualties: %d\n\n", defenderName, r.DefenderCasualties)

	fmt.Fprintf(&b, "Battle Intensity: %.1f\n", r.BattleIntensity)
	fmt.Fprintf(&b, "Casualty Ratio: %.1f\n", r.CasualtyRatio)
	fmt.Fprintf(&b, "War Score Change: %.1f\n", r.WarScoreChange)
	fmt.Fprintf(&b, "Prestige Change: %.1f", r.PrestigeChange)

	return b.String()
}
