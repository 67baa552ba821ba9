// resolve.go
package config

import "github.com/xtding233/battle-backend/internal/battle"

// Resolve merges default → scenario → overrides, validates the result,
// and normalizes it onto battle.DefaultConfig(). A nil overrides pointer
// means no per-request tuning.
func (l *Loader) Resolve(scenario string, overrides *Raw) (Raw, battle.Config, error) {
	merged, err := l.LoadMerged(scenario)
	if err != nil {
		return Raw{}, battle.Config{}, err
	}
	if overrides != nil {
		merged = mergeRaw(merged, *overrides)
	}
	if err := Validate(merged); err != nil {
		return Raw{}, battle.Config{}, err
	}
	return merged, Apply(battle.DefaultConfig(), merged), nil
}

// Apply lays a Raw overlay over a base coefficient table. Unset knobs keep
// the base value, so a partial overlay always yields a complete config.
func Apply(base battle.Config, r Raw) battle.Config {
	cfg := base

	if c := r.Combat; c != nil {
		setIf(&cfg.BaseCasualtyRate, c.BaseCasualtyRate)
		setIf(&cfg.MoraleCasualtyMultiplier, c.MoraleCasualtyMultiplier)
		setIf(&cfg.StrengthRatioImpact, c.StrengthRatioImpact)
		setIf(&cfg.ExperienceMultiplier, c.ExperienceMultiplier)
		setIf(&cfg.EquipmentMultiplier, c.EquipmentMultiplier)
	}
	if c := r.Commander; c != nil {
		setIf(&cfg.CommanderSkillImpact, c.SkillImpact)
		setIf(&cfg.CommandLimitPenaltyThreshold, c.LimitPenaltyThreshold)
	}
	if m := r.Morale; m != nil {
		setIf(&cfg.RoutingThreshold, m.RoutingThreshold)
		setIf(&cfg.WaveringThreshold, m.WaveringThreshold)
		setIf(&cfg.ConfidentThreshold, m.ConfidentThreshold)
	}
	if e := r.Environment; e != nil {
		setIf(&cfg.TerrainModifierMax, e.TerrainModifierMax)
		setIf(&cfg.FortificationDefenseMultiplier, e.FortificationDefenseMultiplier)
	}
	if d := r.Duration; d != nil {
		setIf(&cfg.BaseBattleDuration, d.Base)
		setIf(&cfg.MaxBattleDuration, d.Max)
	}
	if rw := r.Rewards; rw != nil {
		setIf(&cfg.ExperiencePerCasualtyDealt, rw.ExperiencePerCasualtyDealt)
		setIf(&cfg.PrestigePerStrengthDefeated, rw.PrestigePerStrengthDefeated)
	}

	return cfg
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
