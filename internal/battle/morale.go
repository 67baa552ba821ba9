package battle

// MoraleStateOf classifies continuous morale into the six narrative bands.
func MoraleStateOf(morale float64) MoraleState {
	morale = clamp01(morale)
	switch {
	case morale < 0.2:
		return Routing
	case morale < 0.4:
		return Broken
	case morale < 0.6:
		return Wavering
	case morale < 0.75:
		return Steady
	case morale < 0.9:
		return Confident
	default:
		return Fanatical
	}
}

// CheckRouting decides whether one side breaks and flees. Each side is
// evaluated independently.
func CheckRouting(morale, casualtyFraction float64, cfg Config) bool {
	morale = clamp01(morale)

	if morale < cfg.RoutingThreshold {
		return true
	}
	// Heavy losses break even a side that would otherwise hold.
	if casualtyFraction > 0.5 && morale < cfg.WaveringThreshold {
		return true
	}
	// Catastrophic losses break anyone.
	return casualtyFraction > 0.7
}

// MoraleChange computes one side's post-battle morale delta: a base keyed
// by the outcome minus a penalty proportional to the casualty fraction,
// clamped to [-0.4, 0.2].
func MoraleChange(initialManpower, casualties int, outcome Outcome, isAttacker bool, cfg Config) float64 {
	var change float64
	switch outcome {
	case AttackerDecisiveVictory:
		change = pick(isAttacker, 0.15, -0.30)
	case AttackerVictory:
		change = pick(isAttacker, 0.10, -0.20)
	case AttackerPyrrhicVictory:
		change = pick(isAttacker, 0.03, -0.15)
	case Stalemate:
		change = -0.08
	case DefenderPyrrhicVictory:
		change = pick(isAttacker, -0.15, 0.03)
	case DefenderVictory:
		change = pick(isAttacker, -0.20, 0.10)
	case DefenderDecisiveVictory:
		change = pick(isAttacker, -0.30, 0.15)
	}

	change -= casualtyFraction(casualties, initialManpower) * 0.2

	return clamp(change, -0.4, 0.2)
}

// casualtyFraction is casualties over pre-battle manpower, guarded against
// an empty side.
func casualtyFraction(casualties, manpower int) float64 {
	if manpower < 1 {
		manpower = 1
	}
	if casualties < 0 {
		casualties = 0
	}
	return float64(casualties) / float64(manpower)
}

func pick(attacker bool, forAttacker, forDefender float64) float64 {
	if attacker {
		return forAttacker
	}
	return forDefender
}
