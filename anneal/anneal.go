// Package anneal implements the simulated-annealing wall optimizer of
// spec.md §4.4: it toggles one wall per step, replays the fixed
// seven-phase group script, and accepts or rejects the toggle against a
// stretched-exponential (or linear-tolerance) temperature schedule.
//
// Grounded on original_source/pycho.py's solve() main loop.
package anneal

import (
	"math"
	"time"

	"github.com/niceyeti/groupmove/model"
	"github.com/niceyeti/groupmove/mtrand"
	"github.com/niceyeti/groupmove/optimizer"
)

const n = model.N

// Params bundles the tunables a caller may override (config.go/§4.9); the
// zero value is not valid, use DefaultParams.
type Params struct {
	// Seed is the MT19937 seed. Spec default: 1.
	Seed uint32
	// TimeScale multiplies the base wall-clock budget. Spec default: 1.0.
	TimeScale float64
}

// DefaultParams returns the spec's exact constants (§4.4): seed 1, scale
// 1.0.
func DefaultParams() Params {
	return Params{Seed: 1, TimeScale: 1.0}
}

// baseTimeLimit is the wall-clock budget in seconds at TimeScale=1.0.
const baseTimeLimit = 1.85278

// regime holds the K-dependent constants of spec.md §4.4.
type regime struct {
	t0, tn, tempo, removedFactor float64
}

func regimeFor(k int) regime {
	if k > 55 {
		return regime{t0: 27.46494, tn: 0.01022, tempo: 2.8584, removedFactor: 0.05508}
	}
	return regime{t0: 12.51129, tn: 0.01347, tempo: 1.15281, removedFactor: 0.11375}
}

// Result reports what the search did, for logging.
type Result struct {
	Steps int
	Best  int
}

// Run drives the annealing loop against o until the wall-clock budget
// expires, leaving o's wall planes, wall-run index, and Best mutually
// consistent (spec.md §5: no partial state is ever observable at an
// iteration boundary).
func Run(o *optimizer.Optimizer, params Params) Result {
	reg := regimeFor(len(o.Agents))
	ttype := len(o.Agents) > 55
	timeLimit := baseTimeLimit * params.TimeScale

	rng := mtrand.New(params.Seed)
	start := time.Now()
	t := reg.t0
	step := 0

	for {
		step++
		if step&511 == 0 {
			elapsed := time.Since(start).Seconds() / timeLimit
			if elapsed > 1.0 {
				break
			}
			t = reg.t0 * math.Pow(reg.tn/reg.t0, math.Pow(elapsed, reg.tempo))
		}

		typeOp := rng.Next(2)
		var r, c int
		var removed, ok bool

		switch typeOp {
		case 0:
			r = rng.Next(n)
			c = rng.Next(n - 1)
			removed, ok = o.Grid.ToggleWallV(r, c+1)
			if !ok {
				continue
			}
			o.Index.RebuildRow(o.Grid, r)
		default:
			r = rng.Next(n - 1)
			c = rng.Next(n)
			removed, ok = o.Grid.ToggleWallH(r+1, c)
			if !ok {
				continue
			}
			o.Index.RebuildCol(o.Grid, c)
		}

		o.FastReset()
		av := o.RunScript()

		if accept(ttype, av, o.Best, removed, t, reg.removedFactor, rng) {
			o.Best = av
			continue
		}

		// Reject: re-toggle the same wall and rebuild the same row/column,
		// restoring the prior state exactly (the revert law of spec.md §8).
		switch typeOp {
		case 0:
			o.Grid.ToggleWallV(r, c+1)
			o.Index.RebuildRow(o.Grid, r)
		default:
			o.Grid.ToggleWallH(r+1, c)
			o.Index.RebuildCol(o.Grid, c)
		}
	}

	return Result{Steps: step, Best: o.Best}
}

// accept implements the two acceptance forms of spec.md §4.4, preserving
// the exact short-circuit order of the source algorithm: the number and
// sequence of RNG draws per iteration is part of the search's behavior,
// not an implementation detail.
func accept(ttype bool, av, bv int, removed bool, t, removedFactor float64, rng *mtrand.Rand) bool {
	if av < bv {
		return true
	}

	gate := removed
	if !gate {
		gate = rng.NextDouble() < removedFactor
	}
	if !gate {
		return false
	}

	if ttype {
		return float64(av) < float64(bv)+rng.NextDouble()*t
	}
	return rng.NextDouble() < math.Exp(float64(bv-av)/t)
}
