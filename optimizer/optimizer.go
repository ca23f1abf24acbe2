// Package optimizer defines the Optimizer value: the single struct that
// owns every piece of mutable scratch state used by the search (the wall
// planes, the wall-run index, the agents' source/destination/current
// position, the occupancy grid, and the wall-touch marks). Spec.md §9's
// design note calls for exactly this — no module-level globals, no hidden
// state, one value threaded through the annealer, the pruner, and the
// emitter.
//
// Grounded on original_source/pycho.py's MazeOptimizer class, which plays
// the same role.
package optimizer

import (
	"github.com/niceyeti/groupmove/grid"
	"github.com/niceyeti/groupmove/model"
	"github.com/niceyeti/groupmove/simulate"
	"github.com/niceyeti/groupmove/wallindex"
)

const n = model.N

// Optimizer owns every array the search touches.
type Optimizer struct {
	Grid  *grid.Store
	Index *wallindex.Index
	Mover *simulate.Mover

	Agents []model.Agent
	Pos    []model.Pos
	Cell   [n][n]bool
	Marks  simulate.Marks

	// MaxU/D/L/R are the seven-phase script's per-direction step counts,
	// derived once from the extrema of (dst-src), per spec.md §3/§4.3.1.
	MaxU, MaxD, MaxL, MaxR int

	// Best is the smallest total residual Manhattan distance observed so
	// far by the annealer.
	Best int
}

// New builds an Optimizer for the given agents and wall store. The wall
// store's boundary and original-wall masks must already be set (the
// parser's job); New only derives the wall-run index and script
// parameters and places every agent at its source.
func New(agents []model.Agent, store *grid.Store) *Optimizer {
	o := &Optimizer{
		Grid:   store,
		Index:  wallindex.New(store),
		Mover:  simulate.NewMover(),
		Agents: agents,
		Pos:    make([]model.Pos, len(agents)),
	}
	o.MaxU, o.MaxD, o.MaxL, o.MaxR = scriptParams(agents)
	o.Reset()
	o.Best = 1_000_000_000
	return o
}

// scriptParams derives maxU/maxD/maxL/maxR from the extrema of (dst-src)
// coordinate differences, adjusted by the K-dependent delta and clamped at
// zero (spec.md §3, §9).
func scriptParams(agents []model.Agent) (maxU, maxD, maxL, maxR int) {
	for _, a := range agents {
		if d := a.Dst.Y - a.Src.Y; d > maxU {
			maxU = d
		}
		if d := a.Src.Y - a.Dst.Y; d > maxD {
			maxD = d
		}
		if d := a.Dst.X - a.Src.X; d > maxL {
			maxL = d
		}
		if d := a.Src.X - a.Dst.X; d > maxR {
			maxR = d
		}
	}
	delta := -2
	if len(agents) >= 33 {
		delta = -1
	}
	maxU = clampZero(maxU + delta)
	maxD = clampZero(maxD + delta)
	maxL = clampZero(maxL + delta)
	maxR = clampZero(maxR + delta)
	return
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Reset restores every agent to its source cell and rebuilds the
// occupancy grid from scratch. Used before a mark-wall replay, where Cell
// must be accurate throughout.
func (o *Optimizer) Reset() {
	o.Cell = [n][n]bool{}
	for i, a := range o.Agents {
		o.Pos[i] = a.Src
		o.Cell[a.Src.Y][a.Src.X] = true
	}
}

// FastReset restores every agent's position to its source without
// touching Cell, since the fast-move variant never reads or writes it.
// Used once per annealing iteration, on the hot path.
func (o *Optimizer) FastReset() {
	for i, a := range o.Agents {
		o.Pos[i] = a.Src
	}
}

// RunScript replays the fixed seven-phase group script (spec.md §4.3.1)
// with the fast move variant and returns the resulting residual score.
// Callers must have already called FastReset or Reset.
func (o *Optimizer) RunScript() int {
	m, idx, pos := o.Mover, o.Index, o.Pos
	m.MoveUp(pos, idx, o.MaxU/2)
	m.MoveLeft(pos, idx, o.MaxL/2)
	m.MoveDown(pos, idx, o.MaxD/2)
	m.MoveRight(pos, idx, o.MaxR)
	m.MoveDown(pos, idx, o.MaxD-o.MaxD/2)
	m.MoveLeft(pos, idx, o.MaxL-o.MaxL/2)
	m.MoveUp(pos, idx, o.MaxU-o.MaxU/2)

	total := 0
	for i, a := range o.Agents {
		total += model.ManhattanTo(pos[i], a.Dst)
	}
	return total
}

// ScriptStepCounts returns the per-direction step count of each of the
// seven script phases in emission order, matching RunScript's sequence.
func (o *Optimizer) ScriptStepCounts() []struct {
	Dir   model.Direction
	Steps int
} {
	return []struct {
		Dir   model.Direction
		Steps int
	}{
		{model.Up, o.MaxU / 2},
		{model.Left, o.MaxL / 2},
		{model.Down, o.MaxD / 2},
		{model.Right, o.MaxR},
		{model.Down, o.MaxD - o.MaxD/2},
		{model.Left, o.MaxL - o.MaxL/2},
		{model.Up, o.MaxU - o.MaxU/2},
	}
}

// ReplayMarkWall runs the seven-phase script one unit step at a time via
// the mark-wall variant (spec.md §4.3.2), starting from a full Reset and
// clean marks. Used by the pruner.
func (o *Optimizer) ReplayMarkWall() {
	o.Reset()
	o.Marks.Clear()
	for _, phase := range o.ScriptStepCounts() {
		for i := 0; i < phase.Steps; i++ {
			o.stepMark(phase.Dir)
		}
	}
}

func (o *Optimizer) stepMark(dir model.Direction) {
	switch dir {
	case model.Up:
		o.Mover.StepMarkUp(o.Pos, &o.Cell, o.Grid, &o.Marks)
	case model.Down:
		o.Mover.StepMarkDown(o.Pos, &o.Cell, o.Grid, &o.Marks)
	case model.Left:
		o.Mover.StepMarkLeft(o.Pos, &o.Cell, o.Grid, &o.Marks)
	case model.Right:
		o.Mover.StepMarkRight(o.Pos, &o.Cell, o.Grid, &o.Marks)
	}
}
