package battle

// Environmental modifiers: terrain by dominant unit class, weather, and
// fortifications. All lookups are pure; unrecognized terrain is neutral.

// terrainWeights maps terrain type to the fraction of TerrainModifierMax
// granted (or taken) per unit class. Anything absent is 0.
var terrainWeights = map[string]map[UnitClass]float64{
	"plains":    {Cavalry: 0.5},
	"grassland": {Cavalry: 0.5},
	"forest":    {Infantry: 0.3, Cavalry: -0.5},
	"jungle":    {Infantry: 0.3, Cavalry: -0.5},
	"hills":     {Infantry: 0.4, Cavalry: -0.6},
	"mountains": {Infantry: 0.4, Cavalry: -0.6},
}

// DominantUnitClass is the class with the largest summed current manpower.
// An empty army defaults to infantry.
func DominantUnitClass(a *Army) UnitClass {
	var counts [4]int
	for _, u := range a.Units {
		if u.CurrentStrength > 0 && int(u.Class) >= 0 && int(u.Class) < len(counts) {
			counts[u.Class] += u.CurrentStrength
		}
	}

	dominant := Infantry
	max := 0
	for class, count := range counts {
		if count > max {
			max = count
			dominant = UnitClass(class)
		}
	}
	return dominant
}

// TerrainModifier looks up the bonus or penalty for fighting on the given
// terrain with the army's dominant unit class.
func TerrainModifier(terrainType string, a *Army, cfg Config) float64 {
	weights, ok := terrainWeights[terrainType]
	if !ok {
		return 0
	}
	return cfg.TerrainModifierMax * weights[DominantUnitClass(a)]
}

// WeatherModifier maps the weather scalar (0 = terrible, 1 = ideal) to a
// flat strength modifier shared by both sides.
func WeatherModifier(weather float64) float64 {
	weather = clamp01(weather)
	switch {
	case weather < 0.3:
		return -0.2
	case weather > 0.7:
		return 0.1
	default:
		return 0
	}
}

// EnvironmentModifier composes the per-battle flat modifier, the terrain
// lookup for this army, and the weather into one side's terrain term.
func EnvironmentModifier(ctx Context, a *Army, cfg Config) float64 {
	return ctx.TerrainModifier + TerrainModifier(ctx.TerrainType, a, cfg) + WeatherModifier(ctx.Weather)
}

// FortificationBonus is the defender-only strength bonus from defensive
// works: a weighted sum of the works' levels scaled by their condition.
// A nil fortification contributes exactly zero.
func FortificationBonus(f *Fortification, cfg Config) float64 {
	if f == nil {
		return 0
	}

	strength := float64(f.WallsLevel)*0.2 +
		float64(f.TowersLevel)*0.15 +
		float64(f.CitadelLevel)*0.3 +
		float64(f.MoatLevel)*0.1

	strength *= clamp01(f.StructuralIntegrity)
	strength *= clamp01(f.SiegeResistance)

	return nonNegative(strength) * cfg.FortificationDefenseMultiplier
}
