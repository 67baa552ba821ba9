package battle

// Strength aggregation: reduce an army plus its modifiers to one scalar
// combat power. Every input scalar is clamped here rather than trusted, so
// an out-of-range value from a caller degrades gracefully instead of
// producing a negative or runaway strength.

// UnitStrength scores a single formation. An empty or destroyed unit
// scores 0.
func UnitStrength(u Unit, cfg Config) float64 {
	if u.CurrentStrength <= 0 {
		return 0
	}
	strength := float64(u.CurrentStrength)

	combat := (nonNegative(u.AttackStrength) + nonNegative(u.DefenseStrength)) / 20.0
	strength *= combat

	strength *= 1.0 + clamp01(u.Experience)*cfg.ExperienceMultiplier
	strength *= 0.7 + clamp01(u.EquipmentQuality)*cfg.EquipmentMultiplier
	strength *= 0.5 + clamp01(u.Training)*0.5
	strength *= clamp01(u.Cohesion)

	return strength
}

// MoraleMultiplier maps continuous morale onto the four coarse combat
// effectiveness bands. The narrative six-band classification lives in
// MoraleStateOf.
func MoraleMultiplier(morale float64, cfg Config) float64 {
	morale = clamp01(morale)
	switch {
	case morale < cfg.RoutingThreshold:
		return 0.3
	case morale < cfg.WaveringThreshold:
		return 0.6
	case morale < cfg.ConfidentThreshold:
		return 1.0
	default:
		return 1.3
	}
}

// CommanderBonus computes the commander's multiplicative contribution. The
// bonus shrinks once the army outgrows the commander's span of control:
// above the configured ratio the skill bonus loses 0.2 per unit of overage,
// capped at half.
func CommanderBonus(c *Commander, armySize int, cfg Config) float64 {
	if c == nil {
		return 0
	}

	skill := (clamp01(c.MartialSkill) + clamp01(c.TacticalSkill)) * 0.5
	skill *= cfg.CommanderSkillImpact

	if c.CommandLimit > 0 {
		ratio := float64(armySize) / float64(c.CommandLimit)
		if ratio > cfg.CommandLimitPenaltyThreshold {
			penalty := (ratio - cfg.CommandLimitPenaltyThreshold) * 0.2
			if penalty > 0.5 {
				penalty = 0.5
			}
			skill *= 1.0 - penalty
		}
	}

	return skill + c.MoraleBonus()*0.1
}

// CombatStrength reduces an army, its optional commander, and the
// environment to a single non-negative scalar. An empty army scores 0.
// Commander and fortification are optional; nil means no contribution.
func CombatStrength(a *Army, cmdr *Commander, terrainModifier, fortificationBonus float64, cfg Config) float64 {
	base := 0.0
	for _, u := range a.Units {
		base += UnitStrength(u, cfg)
	}
	if base <= 0 {
		return 0
	}

	base *= MoraleMultiplier(a.Morale, cfg)
	base *= 0.5 + clamp01(a.SupplyLevel)*0.5
	base *= 1.0 - clamp01(a.Fatigue)*0.3
	base *= clamp01(a.Organization)

	if cmdr != nil {
		base *= 1.0 + CommanderBonus(cmdr, a.Manpower(), cfg)
	}

	// Terrain and fortification modifiers may be negative, but config caps
	// keep each factor above zero; clamp anyway so hostile inputs cannot
	// flip the sign.
	base *= nonNegative(1.0 + terrainModifier)
	base *= nonNegative(1.0 + fortificationBonus)

	return base
}

// EffectiveStrength converts an army's manpower through a combat
// multiplier, flooring at zero.
func EffectiveStrength(a *Army, multiplier float64) int {
	eff := float64(a.TotalStrength) * nonNegative(multiplier)
	if eff <= 0 {
		return 0
	}
	return int(eff)
}
