package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classUnit(class UnitClass, men int) Unit {
	u := testUnit(men)
	u.Class = class
	return u
}

func classArmy(units ...Unit) Army {
	a := Army{Morale: 0.75, SupplyLevel: 1, Organization: 1}
	for _, u := range units {
		a.Units = append(a.Units, u)
		a.TotalStrength += u.CurrentStrength
	}
	return a
}

func TestDominantUnitClass(t *testing.T) {
	empty := Army{}
	assert.Equal(t, Infantry, DominantUnitClass(&empty))

	mixed := classArmy(classUnit(Infantry, 400), classUnit(Cavalry, 600))
	assert.Equal(t, Cavalry, DominantUnitClass(&mixed))

	// dead units do not vote
	ghosts := classArmy(classUnit(Infantry, 100), classUnit(Cavalry, 0))
	assert.Equal(t, Infantry, DominantUnitClass(&ghosts))
}

func TestTerrainModifier(t *testing.T) {
	cfg := DefaultConfig()

	horse := classArmy(classUnit(Cavalry, 1000))
	foot := classArmy(classUnit(Infantry, 1000))

	assert.InDelta(t, cfg.TerrainModifierMax*0.5, TerrainModifier("plains", &horse, cfg), 1e-9)
	assert.InDelta(t, cfg.TerrainModifierMax*-0.6, TerrainModifier("hills", &horse, cfg), 1e-9)
	assert.InDelta(t, cfg.TerrainModifierMax*0.4, TerrainModifier("mountains", &foot, cfg), 1e-9)
	assert.Zero(t, TerrainModifier("plains", &foot, cfg), "infantry is indifferent to open ground")
	assert.Zero(t, TerrainModifier("swamp", &horse, cfg), "unknown terrain is neutral")
	assert.Zero(t, TerrainModifier("", &horse, cfg))
}

func TestWeatherModifier(t *testing.T) {
	assert.Equal(t, -0.2, WeatherModifier(0.0))
	assert.Equal(t, -0.2, WeatherModifier(0.29))
	assert.Equal(t, 0.0, WeatherModifier(0.3))
	assert.Equal(t, 0.0, WeatherModifier(0.5))
	assert.Equal(t, 0.0, WeatherModifier(0.7))
	assert.Equal(t, 0.1, WeatherModifier(0.71))
	assert.Equal(t, 0.1, WeatherModifier(1.0))
	assert.Equal(t, -0.2, WeatherModifier(-3.0), "clamped")
	assert.Equal(t, 0.1, WeatherModifier(9.0), "clamped")
}

func TestEnvironmentModifierComposes(t *testing.T) {
	cfg := DefaultConfig()
	horse := classArmy(classUnit(Cavalry, 1000))

	ctx := Context{TerrainType: "plains", TerrainModifier: 0.05, Weather: 0.9}
	want := 0.05 + cfg.TerrainModifierMax*0.5 + 0.1
	assert.InDelta(t, want, EnvironmentModifier(ctx, &horse, cfg), 1e-9)
}

func TestFortificationBonus(t *testing.T) {
	cfg := DefaultConfig()

	assert.Zero(t, FortificationBonus(nil, cfg))

	full := &Fortification{
		WallsLevel: 3, TowersLevel: 3, CitadelLevel: 3, MoatLevel: 3,
		StructuralIntegrity: 1, SiegeResistance: 1,
	}
	// 3*(0.2+0.15+0.3+0.1) * 1.5
	assert.InDelta(t, 3.375, FortificationBonus(full, cfg), 1e-9)

	// ruined works defend nothing
	ruined := *full
	ruined.StructuralIntegrity = 0
	assert.Zero(t, FortificationBonus(&ruined, cfg))

	// condition scales linearly
	worn := *full
	worn.StructuralIntegrity = 0.5
	assert.InDelta(t, 3.375*0.5, FortificationBonus(&worn, cfg), 1e-9)
}
