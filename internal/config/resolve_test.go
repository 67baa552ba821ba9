package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/battle-backend/internal/battle"
)

func TestApplyEmptyOverlayKeepsBase(t *testing.T) {
	base := battle.DefaultConfig()
	assert.Equal(t, base, Apply(base, Raw{}))
}

func TestApplyPartialOverlay(t *testing.T) {
	base := battle.DefaultConfig()

	got := Apply(base, Raw{
		Combat:   &CombatCfg{BaseCasualtyRate: fptr(0.25)},
		Duration: &DurationCfg{Max: fptr(8.0)},
	})

	assert.Equal(t, 0.25, got.BaseCasualtyRate)
	assert.Equal(t, 8.0, got.MaxBattleDuration)
	// everything else stays at the base values
	assert.Equal(t, base.BaseBattleDuration, got.BaseBattleDuration)
	assert.Equal(t, base.StrengthRatioImpact, got.StrengthRatioImpact)
	assert.Equal(t, base.RoutingThreshold, got.RoutingThreshold)
}

func TestResolvePrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "default.yaml", defaultYAML)
	writeConfig(t, dir, "aggressive.yaml", aggressiveYAML)
	l := NewLoader(dir)

	// file layers only: scenario over default
	_, cfg, err := l.Resolve("aggressive", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.35, cfg.BaseCasualtyRate)
	assert.Equal(t, 0.25, cfg.RoutingThreshold)
	assert.Equal(t, 1.5, cfg.BaseBattleDuration)

	// request overrides beat both files
	overrides := &Raw{Combat: &CombatCfg{BaseCasualtyRate: fptr(0.5)}}
	merged, cfg, err := l.Resolve("aggressive", overrides)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.BaseCasualtyRate)
	assert.Equal(t, 0.5, *merged.Combat.BaseCasualtyRate)
	assert.Equal(t, 0.25, cfg.RoutingThreshold, "override leaves unrelated knobs alone")
}

func TestResolveNoFilesYieldsDefaults(t *testing.T) {
	l := NewLoader(t.TempDir())

	_, cfg, err := l.Resolve("", nil)
	require.NoError(t, err)
	assert.Equal(t, battle.DefaultConfig(), cfg)
}

func TestResolveRejectsInvalidOverrides(t *testing.T) {
	l := NewLoader(t.TempDir())

	_, _, err := l.Resolve("", &Raw{
		Morale: &MoraleCfg{
			RoutingThreshold:  fptr(0.6),
			WaveringThreshold: fptr(0.5),
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "routing_threshold")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Raw
		wantErr string
	}{
		{"empty overlay is fine", Raw{}, ""},
		{
			"casualty rate out of range",
			Raw{Combat: &CombatCfg{BaseCasualtyRate: fptr(1.5)}},
			"base_casualty_rate",
		},
		{
			"casualty rate of zero",
			Raw{Combat: &CombatCfg{BaseCasualtyRate: fptr(0)}},
			"base_casualty_rate",
		},
		{
			"negative skill impact",
			Raw{Commander: &CommanderCfg{SkillImpact: fptr(-0.1)}},
			"skill_impact",
		},
		{
			"morale threshold above one",
			Raw{Morale: &MoraleCfg{ConfidentThreshold: fptr(1.2)}},
			"confident_threshold",
		},
		{
			"terrain cap must leave strength positive",
			Raw{Environment: &EnvironmentCfg{TerrainModifierMax: fptr(1.0)}},
			"terrain_modifier_max",
		},
		{
			"duration max below base",
			Raw{Duration: &DurationCfg{Base: fptr(5.0), Max: fptr(2.0)}},
			"duration.max",
		},
		{
			"duration max alone below the default base",
			Raw{Duration: &DurationCfg{Max: fptr(0.5)}},
			"duration.max",
		},
		{
			"duration base alone above the default max",
			Raw{Duration: &DurationCfg{Base: fptr(6.0)}},
			"duration.max",
		},
		{
			"routing threshold alone colliding with default wavering",
			Raw{Morale: &MoraleCfg{RoutingThreshold: fptr(0.5)}},
			"routing_threshold",
		},
		{
			"multiple problems reported together",
			Raw{
				Combat: &CombatCfg{BaseCasualtyRate: fptr(-1)},
				Morale: &MoraleCfg{RoutingThreshold: fptr(0.9), WaveringThreshold: fptr(0.1)},
			},
			"; ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
