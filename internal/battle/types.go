// types.go
package battle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnitClass is the broad battlefield role of a unit.
type UnitClass int

const (
	Infantry UnitClass = iota
	Cavalry
	Siege
	Naval
)

func (c UnitClass) String() string {
	switch c {
	case Infantry:
		return "infantry"
	case Cavalry:
		return "cavalry"
	case Siege:
		return "siege"
	case Naval:
		return "naval"
	}
	return "unknown"
}

// MarshalJSON encodes the class as its lowercase name.
func (c UnitClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts the lowercase class name.
func (c *UnitClass) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "infantry", "":
		*c = Infantry
	case "cavalry":
		*c = Cavalry
	case "siege":
		*c = Siege
	case "naval":
		*c = Naval
	default:
		return fmt.Errorf("unknown unit class %q", s)
	}
	return nil
}

// MoraleState is the narrative band a continuous morale value falls into.
type MoraleState int

const (
	Routing MoraleState = iota
	Broken
	Wavering
	Steady
	Confident
	Fanatical
)

func (m MoraleState) String() string {
	switch m {
	case Routing:
		return "routing"
	case Broken:
		return "broken"
	case Wavering:
		return "wavering"
	case Steady:
		return "steady"
	case Confident:
		return "confident"
	case Fanatical:
		return "fanatical"
	}
	return "unknown"
}

// Outcome is the seven-way classification of a resolved battle,
// ordered from best-for-attacker to best-for-defender.
type Outcome int

const (
	AttackerDecisiveVictory Outcome = iota
	AttackerVictory
	AttackerPyrrhicVictory
	Stalemate
	DefenderPyrrhicVictory
	DefenderVictory
	DefenderDecisiveVictory
)

func (o Outcome) String() string {
	switch o {
	case AttackerDecisiveVictory:
		return "Attacker Decisive Victory"
	case AttackerVictory:
		return "Attacker Victory"
	case AttackerPyrrhicVictory:
		return "Attacker Pyrrhic Victory"
	case Stalemate:
		return "Stalemate"
	case DefenderPyrrhicVictory:
		return "Defender Pyrrhic Victory"
	case DefenderVictory:
		return "Defender Victory"
	case DefenderDecisiveVictory:
		return "Defender Decisive Victory"
	}
	return "Unknown Outcome"
}

// MarshalJSON encodes the outcome as its display name.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON accepts the display name produced by MarshalJSON.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for v := AttackerDecisiveVictory; v <= DefenderDecisiveVictory; v++ {
		if v.String() == s {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", s)
}

// AttackerWon reports whether the outcome is any grade of attacker victory.
func (o Outcome) AttackerWon() bool {
	return o == AttackerDecisiveVictory || o == AttackerVictory || o == AttackerPyrrhicVictory
}

// DefenderWon reports whether the outcome is any grade of defender victory.
func (o Outcome) DefenderWon() bool {
	return o == DefenderDecisiveVictory || o == DefenderVictory || o == DefenderPyrrhicVictory
}

// Unit is one formation inside an army. All fields are inputs; the engine
// never writes them.
type Unit struct {
	Class UnitClass `json:"class"`

	MaxStrength     int `json:"max_strength"`
	CurrentStrength int `json:"current_strength"`

	AttackStrength  float64 `json:"attack_strength"`
	DefenseStrength float64 `json:"defense_strength"`
	MovementSpeed   float64 `json:"movement_speed"`

	// Scalars in [0,1]; clamped at the aggregation points.
	Experience       float64 `json:"experience"`
	EquipmentQuality float64 `json:"equipment_quality"`
	Training         float64 `json:"training"`
	Cohesion         float64 `json:"cohesion"`
}

// Army is one side of a battle, passed by read-only reference. Effects come
// back as deltas on the Result; the engine mutates nothing.
type Army struct {
	Name  string `json:"name,omitempty"`
	Units []Unit `json:"units"`

	// TotalStrength is the aggregate manpower of the army.
	TotalStrength int `json:"total_strength"`

	// Scalars in [0,1]; clamped at the aggregation points.
	Morale      float64 `json:"morale"`
	SupplyLevel float64 `json:"supply_level"`
	Fatigue     float64 `json:"fatigue"`

	// Organization multiplies combat strength directly.
	Organization float64 `json:"organization"`
}

// Commander leads an army. A nil commander contributes exactly zero.
type Commander struct {
	Name string `json:"name,omitempty"`

	MartialSkill  float64 `json:"martial_skill"`
	TacticalSkill float64 `json:"tactical_skill"`
	Charisma      float64 `json:"charisma"`

	// CommandLimit is the soldier count beyond which effectiveness degrades.
	CommandLimit int `json:"command_limit"`
}

// MoraleBonus is the commander's contribution to army morale, derived from
// charisma.
func (c *Commander) MoraleBonus() float64 {
	if c == nil {
		return 0
	}
	return clamp01(c.Charisma) / 100.0
}

// Fortification is defensive works on the defender's side. A nil
// fortification contributes exactly zero.
type Fortification struct {
	WallsLevel   int `json:"walls_level"`
	TowersLevel  int `json:"towers_level"`
	CitadelLevel int `json:"citadel_level"`
	MoatLevel    int `json:"moat_level"`

	StructuralIntegrity float64 `json:"structural_integrity"`
	SiegeResistance     float64 `json:"siege_resistance"`
}

// Context carries the battlefield environment shared by both sides.
// TerrainModifier is an extra flat modifier on top of the terrain-type
// lookup; Weather is 0 = terrible, 0.5 = seasonable, 1 = ideal.
type Context struct {
	TerrainType     string  `json:"terrain_type,omitempty"`
	TerrainModifier float64 `json:"terrain_modifier"`
	Weather         float64 `json:"weather"`
}

// Result is the complete output of one resolution. It has no identity and
// no lifetime beyond the call.
type Result struct {
	Outcome Outcome `json:"outcome"`

	AttackerCasualties int `json:"attacker_casualties"`
	DefenderCasualties int `json:"defender_casualties"`

	AttackerMoraleChange float64 `json:"attacker_morale_change"`
	DefenderMoraleChange float64 `json:"defender_morale_change"`

	AttackerExperienceGain float64 `json:"attacker_experience_gain"`
	DefenderExperienceGain float64 `json:"defender_experience_gain"`

	WarScoreChange float64 `json:"war_score_change"`
	PrestigeChange float64 `json:"prestige_change"`

	AttackerRouted bool `json:"attacker_routed"`
	DefenderRouted bool `json:"defender_routed"`

	// Narrative metrics.
	BattleDuration  float64 `json:"battle_duration"`
	BattleIntensity float64 `json:"battle_intensity"`
	CasualtyRatio   float64 `json:"casualty_ratio"`
}
