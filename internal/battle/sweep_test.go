package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepGridShape(t *testing.T) {
	cfg := DefaultConfig()
	att := testArmy(1000, 0.75)
	def := testArmy(1000, 0.75)

	p := SweepParams{
		MoraleMin: 0.2, MoraleMax: 0.9, MoraleSteps: 5,
		ScaleMin: 0.5, ScaleMax: 2.0, ScaleSteps: 4,
	}

	res, err := Sweep(&att, &def, neutralContext(), nil, nil, nil, p, cfg)
	require.NoError(t, err)

	assert.Equal(t, 20, res.Cells)

	total := 0
	for _, n := range res.Outcomes {
		total += n
	}
	assert.Equal(t, res.Cells, total, "every cell lands in exactly one outcome bucket")

	assert.Len(t, res.AttackerCasualtyFraction.Samples, res.Cells)
	assert.Len(t, res.DefenderCasualtyFraction.Samples, res.Cells)
}

func TestSweepDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	att := testArmy(800, 0.6)
	def := testArmy(1200, 0.7)

	p := SweepParams{
		MoraleMin: 0.1, MoraleMax: 1.0, MoraleSteps: 4,
		ScaleMin: 1.0, ScaleMax: 3.0, ScaleSteps: 3,
	}

	first, err := Sweep(&att, &def, neutralContext(), nil, nil, nil, p, cfg)
	require.NoError(t, err)
	second, err := Sweep(&att, &def, neutralContext(), nil, nil, nil, p, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSweepDoesNotMutateBaseArmy(t *testing.T) {
	cfg := DefaultConfig()
	att := testArmy(1000, 0.75)
	def := testArmy(1000, 0.75)
	men := att.Units[0].CurrentStrength
	morale := att.Morale

	p := SweepParams{
		MoraleMin: 0.1, MoraleMax: 0.9, MoraleSteps: 3,
		ScaleMin: 0.5, ScaleMax: 4.0, ScaleSteps: 3,
	}
	_, err := Sweep(&att, &def, neutralContext(), nil, nil, nil, p, cfg)
	require.NoError(t, err)

	assert.Equal(t, men, att.Units[0].CurrentStrength)
	assert.Equal(t, morale, att.Morale)
}

func TestSweepSingleStepPinsAxis(t *testing.T) {
	cfg := DefaultConfig()
	att := testArmy(1000, 0.75)
	def := testArmy(1000, 0.75)

	p := SweepParams{
		MoraleMin: 0.75, MoraleMax: 0.75, MoraleSteps: 1,
		ScaleMin: 1.0, ScaleMax: 1.0, ScaleSteps: 1,
	}
	res, err := Sweep(&att, &def, neutralContext(), nil, nil, nil, p, cfg)
	require.NoError(t, err)
	require.Equal(t, 1, res.Cells)

	// the single cell is exactly the unscaled battle
	single := Resolve(&att, &def, neutralContext(), nil, nil, nil, cfg)
	assert.Equal(t, 1, res.Outcomes[single.Outcome.String()])
	frac := casualtyFraction(single.AttackerCasualties, att.Manpower())
	assert.InDelta(t, frac, res.AttackerCasualtyFraction.Mean, 1e-9)
	assert.InDelta(t, frac, res.AttackerCasualtyFraction.P50, 1e-9)
	assert.Zero(t, res.AttackerCasualtyFraction.Var)
}

func TestSweepParamValidation(t *testing.T) {
	cfg := DefaultConfig()
	att := testArmy(1000, 0.75)
	def := testArmy(1000, 0.75)

	bad := []SweepParams{
		{MoraleMin: 0, MoraleMax: 1, MoraleSteps: 0, ScaleMin: 1, ScaleMax: 2, ScaleSteps: 2},
		{MoraleMin: 0, MoraleMax: 1, MoraleSteps: 2, ScaleMin: 1, ScaleMax: 2, ScaleSteps: 0},
		{MoraleMin: 0.9, MoraleMax: 0.1, MoraleSteps: 2, ScaleMin: 1, ScaleMax: 2, ScaleSteps: 2},
		{MoraleMin: 0, MoraleMax: 1, MoraleSteps: 2, ScaleMin: 2, ScaleMax: 1, ScaleSteps: 2},
		{MoraleMin: 0, MoraleMax: 1, MoraleSteps: 2, ScaleMin: 0, ScaleMax: 2, ScaleSteps: 2},
	}
	for i, p := range bad {
		_, err := Sweep(&att, &def, neutralContext(), nil, nil, nil, p, cfg)
		assert.ErrorIs(t, err, ErrSweepParams, "case %d", i)
	}
}

func TestSweepMoraleShiftsOutcomes(t *testing.T) {
	cfg := DefaultConfig()
	att := testArmy(1500, 0.5)
	def := testArmy(1000, 0.75)

	p := SweepParams{
		MoraleMin: 0.05, MoraleMax: 0.95, MoraleSteps: 10,
		ScaleMin: 1.0, ScaleMax: 1.0, ScaleSteps: 1,
	}
	res, err := Sweep(&att, &def, neutralContext(), nil, nil, nil, p, cfg)
	require.NoError(t, err)

	// a morale axis spanning broken to fanatical cannot produce a single
	// uniform outcome for a 1.5x attacker
	assert.Greater(t, len(res.Outcomes), 1)
}
