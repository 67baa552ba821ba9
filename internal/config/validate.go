package config

import (
	"fmt"
	"strings"

	"github.com/xtding233/battle-backend/internal/battle"
)

// Validate checks semantic constraints of a Raw overlay. Bounds here are
// about keeping the coefficient table coherent; the engine itself clamps
// per-battle inputs at resolution time.
func Validate(cfg Raw) error {
	var errs []string

	if c := cfg.Combat; c != nil {
		if c.BaseCasualtyRate != nil && (*c.BaseCasualtyRate <= 0 || *c.BaseCasualtyRate >= 1) {
			errs = append(errs, "combat.base_casualty_rate must be in (0,1)")
		}
		if c.MoraleCasualtyMultiplier != nil && *c.MoraleCasualtyMultiplier < 0 {
			errs = append(errs, "combat.morale_casualty_multiplier must be >= 0")
		}
		if c.StrengthRatioImpact != nil && *c.StrengthRatioImpact < 0 {
			errs = append(errs, "combat.strength_ratio_impact must be >= 0")
		}
		if c.ExperienceMultiplier != nil && *c.ExperienceMultiplier < 0 {
			errs = append(errs, "combat.experience_multiplier must be >= 0")
		}
		if c.EquipmentMultiplier != nil && *c.EquipmentMultiplier < 0 {
			errs = append(errs, "combat.equipment_multiplier must be >= 0")
		}
	}

	if c := cfg.Commander; c != nil {
		if c.SkillImpact != nil && *c.SkillImpact < 0 {
			errs = append(errs, "commander.skill_impact must be >= 0")
		}
		if c.LimitPenaltyThreshold != nil && *c.LimitPenaltyThreshold <= 0 {
			errs = append(errs, "commander.limit_penalty_threshold must be > 0")
		}
	}

	if m := cfg.Morale; m != nil {
		check01 := func(name string, v *float64) {
			if v != nil && (*v < 0 || *v > 1) {
				errs = append(errs, fmt.Sprintf("morale.%s must be in [0,1]", name))
			}
		}
		check01("routing_threshold", m.RoutingThreshold)
		check01("wavering_threshold", m.WaveringThreshold)
		check01("confident_threshold", m.ConfidentThreshold)
	}

	if e := cfg.Environment; e != nil {
		if e.TerrainModifierMax != nil && (*e.TerrainModifierMax < 0 || *e.TerrainModifierMax >= 1) {
			errs = append(errs, "environment.terrain_modifier_max must be in [0,1)")
		}
		if e.FortificationDefenseMultiplier != nil && *e.FortificationDefenseMultiplier < 0 {
			errs = append(errs, "environment.fortification_defense_multiplier must be >= 0")
		}
	}

	if d := cfg.Duration; d != nil {
		if d.Base != nil && *d.Base <= 0 {
			errs = append(errs, "duration.base must be > 0")
		}
		if d.Max != nil && *d.Max <= 0 {
			errs = append(errs, "duration.max must be > 0")
		}
	}

	if r := cfg.Rewards; r != nil {
		if r.ExperiencePerCasualtyDealt != nil && *r.ExperiencePerCasualtyDealt < 0 {
			errs = append(errs, "rewards.experience_per_casualty_dealt must be >= 0")
		}
		if r.PrestigePerStrengthDefeated != nil && *r.PrestigePerStrengthDefeated < 0 {
			errs = append(errs, "rewards.prestige_per_strength_defeated must be >= 0")
		}
	}

	// Relationship checks run on the effective values the overlay lands on,
	// so a knob set alone cannot invert a band against a built-in default.
	eff := Apply(battle.DefaultConfig(), cfg)
	if eff.RoutingThreshold >= eff.WaveringThreshold {
		errs = append(errs, "morale.routing_threshold must be < wavering_threshold")
	}
	if eff.WaveringThreshold >= eff.ConfidentThreshold {
		errs = append(errs, "morale.wavering_threshold must be < confident_threshold")
	}
	if eff.MaxBattleDuration < eff.BaseBattleDuration {
		errs = append(errs, "duration.max must be >= duration.base")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
