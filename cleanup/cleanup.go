// Package cleanup is the external collaborator of spec.md §6 point 6 and
// §9's open question: after the group script and the pruner run, some
// agents are still misplaced (a swap is the canonical example, §8
// scenario 3). This package walks them toward their destinations one
// individual move at a time under the frozen wall grid, emitting `i`
// operations.
//
// spec.md §9 explicitly declines to specify the BFS-phase scoring
// heuristic and says not to guess it. What is specified, and what this
// package implements, is the simplified straight-line walk
// original_source/pycho.py actually runs (find_path: all vertical moves
// then all horizontal, picked agent-by-agent in residual-distance
// order), bounded by the spec's 100000-step cap, plus the source's
// trailing one-move-per-agent pass — itself folded into the same step
// budget here, rather than left uncapped as in the source.
package cleanup

import (
	"sort"

	"github.com/niceyeti/groupmove/model"
	"github.com/niceyeti/groupmove/optimizer"
)

// DefaultStepCap is the spec's bound on individual-move steps (§9).
const DefaultStepCap = 100000

// Move is one individual-move operation against a single agent.
type Move struct {
	AgentID int
	Dir     model.Direction
}

// Run walks o's misplaced agents toward their destinations, respecting
// walls and cell occupancy, until every agent has arrived, stepCap
// single moves have been spent, or a full round makes no progress (a
// straight-line deadlock, as in a two-agent adjacent swap — no amount of
// additional straight-line attempts would resolve it, so Run stops
// rather than spin). Callers must run this immediately after the
// pruner, while o.Pos and o.Cell are still in sync (prune.Run's last
// ReplayMarkWall leaves them that way).
//
// It returns the emitted moves in execution order, followed by the
// source's trailing pass: one declared-direction move per agent still
// out of place, emitted without re-checking that it succeeds, exactly
// as original_source/pycho.py's tail loop does. Unlike the source,
// that trailing pass is bounded by whatever step budget the capped
// loop above left unspent, so Run as a whole never emits more than
// stepCap moves.
func Run(o *optimizer.Optimizer, stepCap int) []Move {
	var moves []Move
	step := 0

	for step < stepCap {
		allGood := true
		progressed := false
		for _, i := range residualOrder(o) {
			if o.Pos[i] == o.Agents[i].Dst {
				continue
			}
			allGood = false

			dir, ok := nextStepDir(o.Pos[i], o.Agents[i].Dst)
			if !ok {
				continue
			}
			if np, moved := stepAgent(o, i, dir); moved {
				o.Pos[i] = np
				step++
				progressed = true
				moves = append(moves, Move{AgentID: i, Dir: dir})
				if step >= stepCap {
					break
				}
			}
		}
		if allGood || step >= stepCap {
			break
		}
		// A round where every still-misplaced agent was blocked (the
		// straight-line paths deadlock, as in a two-agent swap) can never
		// make further progress; stop rather than spin until stepCap.
		if !progressed {
			break
		}
	}

	for i, a := range o.Agents {
		if step >= stepCap {
			break
		}
		if o.Pos[i] == a.Dst {
			continue
		}
		if dir, ok := nextStepDir(o.Pos[i], a.Dst); ok {
			moves = append(moves, Move{AgentID: i, Dir: dir})
			step++
		}
	}

	return moves
}

// residualOrder returns agent indices sorted by ascending current
// Manhattan distance to destination, matching the source's per-round
// reordering.
func residualOrder(o *optimizer.Optimizer) []int {
	order := make([]int, len(o.Agents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da := model.ManhattanTo(o.Pos[order[a]], o.Agents[order[a]].Dst)
		db := model.ManhattanTo(o.Pos[order[b]], o.Agents[order[b]].Dst)
		return da < db
	})
	return order
}

// nextStepDir picks the next direction on a straight vertical-then-
// horizontal path from pos to dst, matching find_path's move ordering.
func nextStepDir(pos, dst model.Pos) (model.Direction, bool) {
	dy := dst.Y - pos.Y
	dx := dst.X - pos.X
	switch {
	case dy > 0:
		return model.Down, true
	case dy < 0:
		return model.Up, true
	case dx > 0:
		return model.Right, true
	case dx < 0:
		return model.Left, true
	default:
		return 0, false
	}
}

// stepAgent moves agent i one cell in dir if no wall or occupant blocks
// it, keeping o.Cell in sync. Returns the unchanged position and false
// if blocked.
func stepAgent(o *optimizer.Optimizer, i int, dir model.Direction) (model.Pos, bool) {
	pos := o.Pos[i]
	var np model.Pos
	var blocked bool

	switch dir {
	case model.Up:
		blocked = o.Grid.WallH[pos.Y][pos.X]
		np = model.Pos{Y: pos.Y - 1, X: pos.X}
	case model.Down:
		blocked = o.Grid.WallH[pos.Y+1][pos.X]
		np = model.Pos{Y: pos.Y + 1, X: pos.X}
	case model.Left:
		blocked = o.Grid.WallV[pos.Y][pos.X]
		np = model.Pos{Y: pos.Y, X: pos.X - 1}
	case model.Right:
		blocked = o.Grid.WallV[pos.Y][pos.X+1]
		np = model.Pos{Y: pos.Y, X: pos.X + 1}
	}

	if blocked || o.Cell[np.Y][np.X] {
		return pos, false
	}
	o.Cell[pos.Y][pos.X] = false
	o.Cell[np.Y][np.X] = true
	return np, true
}
