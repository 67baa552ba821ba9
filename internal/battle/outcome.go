package battle

import "math"

// Outcome classification and score derivation. The seven-way outcome set
// is closed; every switch below covers all seven so a new outcome cannot
// be added without updating each formula table.

// ClassifyOutcome turns both sides' losses and morale into one of the
// seven outcomes. Routing short-circuits the casualty bands: a lone routed
// side hands the other a decisive win, a double rout is a stalemate.
// Otherwise the defender-minus-attacker casualty fraction difference is
// banded at 0.05 / 0.15 / 0.30 (strict comparisons; a difference landing
// exactly on an edge falls into the band below).
func ClassifyOutcome(attackerManpower, defenderManpower, attackerCasualties, defenderCasualties int, attackerMorale, defenderMorale float64, cfg Config) Outcome {
	attackerFraction := casualtyFraction(attackerCasualties, attackerManpower)
	defenderFraction := casualtyFraction(defenderCasualties, defenderManpower)

	attackerRouted := CheckRouting(attackerMorale, attackerFraction, cfg)
	defenderRouted := CheckRouting(defenderMorale, defenderFraction, cfg)

	switch {
	case attackerRouted && !defenderRouted:
		return DefenderDecisiveVictory
	case defenderRouted && !attackerRouted:
		return AttackerDecisiveVictory
	case attackerRouted && defenderRouted:
		return Stalemate
	}

	diff := defenderFraction - attackerFraction

	switch {
	case diff > 0.30:
		return AttackerDecisiveVictory
	case diff > 0.15:
		return AttackerVictory
	case diff > 0.05:
		if attackerFraction > 0.3 {
			return AttackerPyrrhicVictory
		}
		return AttackerVictory
	case diff < -0.30:
		return DefenderDecisiveVictory
	case diff < -0.15:
		return DefenderVictory
	case diff < -0.05:
		if defenderFraction > 0.3 {
			return DefenderPyrrhicVictory
		}
		return DefenderVictory
	}

	return Stalemate
}

// WarScoreChange is the diplomatic leverage delta, positive toward the
// attacker. Larger battles move the score more, capped at 3x.
func WarScoreChange(outcome Outcome, totalCasualties int, cfg Config) float64 {
	var score float64
	switch outcome {
	case AttackerDecisiveVictory:
		score = 15.0
	case AttackerVictory:
		score = 10.0
	case AttackerPyrrhicVictory:
		score = 5.0
	case Stalemate:
		score = 0.0
	case DefenderPyrrhicVictory:
		score = -5.0
	case DefenderVictory:
		score = -10.0
	case DefenderDecisiveVictory:
		score = -15.0
	}

	if totalCasualties < 0 {
		totalCasualties = 0
	}
	return score * math.Min(float64(totalCasualties)/1000.0, 3.0)
}

// PrestigeChange is the winner's reputation delta: a base per outcome
// magnitude plus a linear reward for the enemy strength defeated. It is
// side-agnostic by design.
func PrestigeChange(outcome Outcome, enemyStrengthDefeated int, cfg Config) float64 {
	var prestige float64
	switch outcome {
	case AttackerDecisiveVictory, DefenderDecisiveVictory:
		prestige = 5.0
	case AttackerVictory, DefenderVictory:
		prestige = 3.0
	case AttackerPyrrhicVictory, DefenderPyrrhicVictory:
		prestige = 1.0
	case Stalemate:
		prestige = -1.0
	}

	if enemyStrengthDefeated < 0 {
		enemyStrengthDefeated = 0
	}
	return prestige + float64(enemyStrengthDefeated)*cfg.PrestigePerStrengthDefeated
}

// ExperienceGain is one side's training value extracted from the battle:
// flat participation credit, a reward per casualty inflicted, a winner's
// bonus, and a halving for a defeat that cost more than double what it
// inflicted.
func ExperienceGain(casualtiesInflicted, casualtiesReceived int, outcome Outcome, won bool, cfg Config) float64 {
	if casualtiesInflicted < 0 {
		casualtiesInflicted = 0
	}

	experience := 5.0
	experience += float64(casualtiesInflicted) * cfg.ExperiencePerCasualtyDealt
	if won {
		experience += 5.0
	}

	// halving requires an actual defeat; a stalemate is not a loss
	lost := !won && (outcome.AttackerWon() || outcome.DefenderWon())
	if lost && casualtiesReceived > casualtiesInflicted*2 {
		experience *= 0.5
	}

	return experience
}
