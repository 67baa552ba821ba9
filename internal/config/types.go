// types.go
package config

// Raw is a partial battle configuration overlay as loaded from YAML.
// Every scalar is a pointer so an overlay file (or a request override)
// can set just the knobs it cares about and leave the rest alone.
type Raw struct {
	Version string `yaml:"version" json:"version,omitempty"`

	Combat      *CombatCfg      `yaml:"combat,omitempty" json:"combat,omitempty"`
	Commander   *CommanderCfg   `yaml:"commander,omitempty" json:"commander,omitempty"`
	Morale      *MoraleCfg      `yaml:"morale,omitempty" json:"morale,omitempty"`
	Environment *EnvironmentCfg `yaml:"environment,omitempty" json:"environment,omitempty"`
	Duration    *DurationCfg    `yaml:"duration,omitempty" json:"duration,omitempty"`
	Rewards     *RewardsCfg     `yaml:"rewards,omitempty" json:"rewards,omitempty"`

	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

type CombatCfg struct {
	BaseCasualtyRate         *float64 `yaml:"base_casualty_rate,omitempty" json:"base_casualty_rate,omitempty"`
	MoraleCasualtyMultiplier *float64 `yaml:"morale_casualty_multiplier,omitempty" json:"morale_casualty_multiplier,omitempty"`
	StrengthRatioImpact      *float64 `yaml:"strength_ratio_impact,omitempty" json:"strength_ratio_impact,omitempty"`
	ExperienceMultiplier     *float64 `yaml:"experience_multiplier,omitempty" json:"experience_multiplier,omitempty"`
	EquipmentMultiplier      *float64 `yaml:"equipment_multiplier,omitempty" json:"equipment_multiplier,omitempty"`
}

type CommanderCfg struct {
	SkillImpact           *float64 `yaml:"skill_impact,omitempty" json:"skill_impact,omitempty"`
	LimitPenaltyThreshold *float64 `yaml:"limit_penalty_threshold,omitempty" json:"limit_penalty_threshold,omitempty"`
}

type MoraleCfg struct {
	RoutingThreshold   *float64 `yaml:"routing_threshold,omitempty" json:"routing_threshold,omitempty"`
	WaveringThreshold  *float64 `yaml:"wavering_threshold,omitempty" json:"wavering_threshold,omitempty"`
	ConfidentThreshold *float64 `yaml:"confident_threshold,omitempty" json:"confident_threshold,omitempty"`
}

type EnvironmentCfg struct {
	TerrainModifierMax             *float64 `yaml:"terrain_modifier_max,omitempty" json:"terrain_modifier_max,omitempty"`
	FortificationDefenseMultiplier *float64 `yaml:"fortification_defense_multiplier,omitempty" json:"fortification_defense_multiplier,omitempty"`
}

type DurationCfg struct {
	Base *float64 `yaml:"base,omitempty" json:"base,omitempty"`
	Max  *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

type RewardsCfg struct {
	ExperiencePerCasualtyDealt  *float64 `yaml:"experience_per_casualty_dealt,omitempty" json:"experience_per_casualty_dealt,omitempty"`
	PrestigePerStrengthDefeated *float64 `yaml:"prestige_per_strength_defeated,omitempty" json:"prestige_per_strength_defeated,omitempty"`
}
