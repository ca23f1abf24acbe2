// Package prune implements the wall pruner of spec.md §4.5: after
// annealing, replay the seven-phase script twice with the collision-aware
// mark-wall primitives, then remove every non-original wall no agent ever
// touched.
//
// Two passes are used because removing a wall in pass one can expose a
// new set of untouched walls for pass two to find.
//
// Grounded on original_source/pycho.py's solve() "Final optimization with
// wall removal" loop.
package prune

import "github.com/niceyeti/groupmove/optimizer"

const passes = 2

// Result reports how many walls were cleared, for logging.
type Result struct {
	WallsRemoved int
}

// Run prunes o's wall planes in place.
func Run(o *optimizer.Optimizer) Result {
	removed := 0
	for pass := 0; pass < passes; pass++ {
		o.ReplayMarkWall()
		removed += clearUntouched(o)
	}
	return Result{WallsRemoved: removed}
}

func clearUntouched(o *optimizer.Optimizer) int {
	cleared := 0
	g := o.Grid
	for r := range g.WallV {
		for c := range g.WallV[r] {
			if !o.Marks.V[r][c] && g.WallV[r][c] && !g.OWallV[r][c] {
				g.WallV[r][c] = false
				cleared++
			}
		}
	}
	for r := range g.WallH {
		for c := range g.WallH[r] {
			if !o.Marks.H[r][c] && g.WallH[r][c] && !g.OWallH[r][c] {
				g.WallH[r][c] = false
				cleared++
			}
		}
	}
	return cleared
}
