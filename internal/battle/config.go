// config.go
package battle

// Config is the tunable coefficient table for battle resolution.
// It is a plain value object; the same Config must never be mutated while
// resolutions are in flight (swap in a new value instead).
type Config struct {
	// Combat multipliers
	BaseCasualtyRate         float64 `yaml:"base_casualty_rate" json:"base_casualty_rate"`
	MoraleCasualtyMultiplier float64 `yaml:"morale_casualty_multiplier" json:"morale_casualty_multiplier"`
	StrengthRatioImpact      float64 `yaml:"strength_ratio_impact" json:"strength_ratio_impact"`
	ExperienceMultiplier     float64 `yaml:"experience_multiplier" json:"experience_multiplier"`
	EquipmentMultiplier      float64 `yaml:"equipment_multiplier" json:"equipment_multiplier"`

	// Commander bonuses
	CommanderSkillImpact         float64 `yaml:"commander_skill_impact" json:"commander_skill_impact"`
	CommandLimitPenaltyThreshold float64 `yaml:"command_limit_penalty_threshold" json:"command_limit_penalty_threshold"`

	// Morale thresholds, strictly ascending
	RoutingThreshold   float64 `yaml:"routing_threshold" json:"routing_threshold"`
	WaveringThreshold  float64 `yaml:"wavering_threshold" json:"wavering_threshold"`
	ConfidentThreshold float64 `yaml:"confident_threshold" json:"confident_threshold"`

	// Terrain and fortification
	TerrainModifierMax             float64 `yaml:"terrain_modifier_max" json:"terrain_modifier_max"`
	FortificationDefenseMultiplier float64 `yaml:"fortification_defense_multiplier" json:"fortification_defense_multiplier"`

	// Battle duration bounds
	BaseBattleDuration float64 `yaml:"base_battle_duration" json:"base_battle_duration"`
	MaxBattleDuration  float64 `yaml:"max_battle_duration" json:"max_battle_duration"`

	// Experience and prestige
	ExperiencePerCasualtyDealt  float64 `yaml:"experience_per_casualty_dealt" json:"experience_per_casualty_dealt"`
	PrestigePerStrengthDefeated float64 `yaml:"prestige_per_strength_defeated" json:"prestige_per_strength_defeated"`
}

// DefaultConfig returns the canonical coefficient table. It is the fallback
// whenever no external configuration source is wired up.
func DefaultConfig() Config {
	return Config{
		BaseCasualtyRate:         0.15,
		MoraleCasualtyMultiplier: 0.5,
		StrengthRatioImpact:      1.5,
		ExperienceMultiplier:     0.2,
		EquipmentMultiplier:      0.3,

		CommanderSkillImpact:         0.25,
		CommandLimitPenaltyThreshold: 1.2,

		RoutingThreshold:   0.3,
		WaveringThreshold:  0.5,
		ConfidentThreshold: 0.8,

		TerrainModifierMax:             0.3,
		FortificationDefenseMultiplier: 1.5,

		BaseBattleDuration: 1.0,
		MaxBattleDuration:  5.0,

		ExperiencePerCasualtyDealt:  0.01,
		PrestigePerStrengthDefeated: 0.001,
	}
}
