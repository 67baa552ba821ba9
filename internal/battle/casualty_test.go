package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCasualtyRateDisadvantageOnlyAdds(t *testing.T) {
	cfg := DefaultConfig()

	base := CasualtyRate(1.0, 1.0, 1.0, cfg)
	assert.Equal(t, cfg.BaseCasualtyRate, base)

	// advantage never discounts below base
	assert.Equal(t, base, CasualtyRate(3.0, 3.0, 1.0, cfg))

	// disadvantage adds
	assert.Greater(t, CasualtyRate(0.5, 1.0, 1.0, cfg), base)
	assert.Greater(t, CasualtyRate(1.0, 0.5, 1.0, cfg), base)

	// low morale adds
	assert.InDelta(t, base+0.5*cfg.MoraleCasualtyMultiplier*0.1, CasualtyRate(1.0, 1.0, 0.5, cfg), 1e-9)
}

func TestBattleDurationBounds(t *testing.T) {
	cfg := DefaultConfig()

	// dead-even fight runs the longest
	assert.InDelta(t, cfg.MaxBattleDuration, BattleDuration(500, 500, cfg), 1e-9)

	// lopsided fight collapses toward the base duration
	short := BattleDuration(1e6, 10, cfg)
	assert.Less(t, short, cfg.BaseBattleDuration+0.1)
	assert.GreaterOrEqual(t, short, cfg.BaseBattleDuration)

	assert.InDelta(t, cfg.BaseBattleDuration, BattleDuration(0, 0, cfg), 1e-9)
}

func TestCasualtiesFloorAndCap(t *testing.T) {
	cfg := DefaultConfig()

	// cap: a badly outmatched side in a longish fight never loses more
	// than 80% in one resolution
	attCas, defCas := Casualties(100, 300, 1000, 1000, BattleDuration(100, 300, cfg), cfg)
	assert.Equal(t, 800, attCas)
	assert.LessOrEqual(t, defCas, 800)

	// floor: even an overwhelming winner pays at least 5%
	low := cfg
	low.BaseCasualtyRate = 0.01
	attCas, defCas = Casualties(1e6, 1, 1000, 1000, low.BaseBattleDuration, low)
	assert.Equal(t, 50, attCas)
	assert.GreaterOrEqual(t, defCas, 50)
}

func TestCasualtiesNeverExceedManpower(t *testing.T) {
	cfg := DefaultConfig()

	attCas, defCas := Casualties(10, 10000, 40, 40, cfg.MaxBattleDuration, cfg)
	assert.LessOrEqual(t, attCas, 40)
	assert.LessOrEqual(t, defCas, 40)
	assert.GreaterOrEqual(t, attCas, 0)
	assert.GreaterOrEqual(t, defCas, 0)
}

func TestCasualtiesZeroManpower(t *testing.T) {
	cfg := DefaultConfig()

	attCas, defCas := Casualties(100, 100, 0, 1000, 1.0, cfg)
	assert.Zero(t, attCas)
	assert.Greater(t, defCas, 0)
}

func TestCasualtiesIndependentSides(t *testing.T) {
	cfg := DefaultConfig()

	// the two sides' totals are not a shared pool: scaling one side's
	// manpower leaves the other side's count unchanged
	_, defCas1 := Casualties(500, 500, 1000, 1000, 2.0, cfg)
	_, defCas2 := Casualties(500, 500, 9000, 1000, 2.0, cfg)
	assert.Equal(t, defCas1, defCas2)
}
