package battle

import (
	"errors"
	"math"
	"sort"
)

// Parameter sweeps for tuning. Unlike a stochastic simulator, the resolver
// is deterministic, so coverage comes from sweeping a grid of inputs
// rather than repeating trials: the sweep scales the attacker's morale and
// manpower across configured ranges, resolves each cell, and summarizes
// outcome frequencies and casualty distributions.

var ErrSweepParams = errors.New("invalid sweep parameters")

// SweepParams describes the grid. Steps counts of 1 pin that axis to its
// Min value.
type SweepParams struct {
	MoraleMin   float64 `json:"morale_min"`
	MoraleMax   float64 `json:"morale_max"`
	MoraleSteps int     `json:"morale_steps"`

	// Manpower scale applied to the attacker (defender is fixed).
	ScaleMin   float64 `json:"scale_min"`
	ScaleMax   float64 `json:"scale_max"`
	ScaleSteps int     `json:"scale_steps"`
}

func (p SweepParams) validate() error {
	if p.MoraleSteps < 1 || p.ScaleSteps < 1 {
		return ErrSweepParams
	}
	if p.MoraleMax < p.MoraleMin || p.ScaleMax < p.ScaleMin {
		return ErrSweepParams
	}
	if p.ScaleMin <= 0 {
		return ErrSweepParams
	}
	return nil
}

// Stats summarizes one metric across all sweep cells.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// Raw samples for callers that build histograms; omitted on the wire.
	Samples []float64 `json:"-"`
}

// SweepResult tallies outcomes and casualty distributions over the grid.
type SweepResult struct {
	Cells    int            `json:"cells"`
	Outcomes map[string]int `json:"outcomes"`

	AttackerCasualtyFraction Stats `json:"attacker_casualty_fraction"`
	DefenderCasualtyFraction Stats `json:"defender_casualty_fraction"`
}

// Sweep resolves the battle once per grid cell and aggregates the results.
// The base armies are never mutated; each cell works on a scaled copy of
// the attacker.
func Sweep(attacker, defender *Army, ctx Context, attackerCommander, defenderCommander *Commander, fortification *Fortification, p SweepParams, cfg Config) (SweepResult, error) {
	if err := p.validate(); err != nil {
		return SweepResult{}, err
	}

	cells := p.MoraleSteps * p.ScaleSteps
	attackerFractions := make([]float64, 0, cells)
	defenderFractions := make([]float64, 0, cells)
	outcomes := make(map[string]int)

	for i := 0; i < p.MoraleSteps; i++ {
		morale := gridValue(p.MoraleMin, p.MoraleMax, p.MoraleSteps, i)
		for j := 0; j < p.ScaleSteps; j++ {
			scale := gridValue(p.ScaleMin, p.ScaleMax, p.ScaleSteps, j)

			scaled := scaleArmy(attacker, scale)
			scaled.Morale = clamp01(morale)

			r := Resolve(&scaled, defender, ctx, attackerCommander, defenderCommander, fortification, cfg)

			outcomes[r.Outcome.String()]++
			attackerFractions = append(attackerFractions, casualtyFraction(r.AttackerCasualties, scaled.Manpower()))
			defenderFractions = append(defenderFractions, casualtyFraction(r.DefenderCasualties, defender.Manpower()))
		}
	}

	return SweepResult{
		Cells:                    cells,
		Outcomes:                 outcomes,
		AttackerCasualtyFraction: calcStats(attackerFractions),
		DefenderCasualtyFraction: calcStats(defenderFractions),
	}, nil
}

// gridValue interpolates axis step i of n between lo and hi.
func gridValue(lo, hi float64, n, i int) float64 {
	if n <= 1 {
		return lo
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}

// scaleArmy copies an army with every unit's manpower scaled.
func scaleArmy(a *Army, scale float64) Army {
	out := *a
	out.Units = make([]Unit, len(a.Units))
	total := 0
	for i, u := range a.Units {
		u.CurrentStrength = int(float64(u.CurrentStrength) * scale)
		out.Units[i] = u
		total += u.CurrentStrength
	}
	out.TotalStrength = total
	return out
}

// calcStats computes mean/variance/percentiles for the samples.
func calcStats(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	percentile := func(p float64) float64 {
		if n == 1 {
			return cp[0]
		}
		if p <= 0 {
			return cp[0]
		}
		if p >= 1 {
			return cp[n-1]
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return cp[i]
		}
		return cp[i]*(1-f) + cp[i+1]*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}
