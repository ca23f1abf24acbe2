// Package simulate implements the two bulk-move primitives of spec.md
// §4.3: the fast variant used inside the annealing hot loop, and the
// mark-wall variant used by the pruner to discover which walls a script
// actually exercises.
//
// Grounded on original_source/pycho.py's fmoveu_xfast/fmoved_xfast/
// fmovel_xfast/fmover_xfast and fmoveu_markwall/fmoved_markwall/
// fmovel_markwall/fmover_markwall.
package simulate

import (
	"github.com/niceyeti/groupmove/grid"
	"github.com/niceyeti/groupmove/model"
	"github.com/niceyeti/groupmove/wallindex"
)

const n = model.N

// Mover owns the fixed-size scratch buckets used to process agents in the
// sweep order the bulk-move contract requires (spec.md §4.3.1's "order
// dependence" invariant), so no allocation occurs on the hot annealing
// path. It holds no wall or position state itself — those are passed in by
// the caller (the Optimizer) on every call.
type Mover struct {
	order  [n][model.MaxK]int
	nOrder [n]int
}

// NewMover returns a ready-to-use Mover.
func NewMover() *Mover {
	return &Mover{}
}

// MoveUp shifts every agent up (decreasing Y) by at most steps cells,
// stopping each agent at a wall, the grid edge, or the agent ahead of it
// (already processed this call). Agents are bucketed by row and processed
// smallest-row-first so higher agents settle before those below, per the
// fixed sweep order spec.md §4.3.1 mandates.
func (m *Mover) MoveUp(pos []model.Pos, idx *wallindex.Index, steps int) {
	for i := range m.nOrder {
		m.nOrder[i] = 0
	}
	for i := range pos {
		y := pos[i].Y
		m.order[y][m.nOrder[y]] = i
		m.nOrder[y]++
	}

	var nextPos [n]int
	for x := range nextPos {
		nextPos[x] = -1
	}

	for row := 0; row < n; row++ {
		for k := 0; k < m.nOrder[row]; k++ {
			i := m.order[row][k]
			y, x := pos[i].Y, pos[i].X
			newY := maxInt(y-steps, maxInt(nextPos[x]+1, idx.NextWallU[y][x]))
			pos[i] = model.Pos{Y: newY, X: x}
			nextPos[x] = newY
		}
	}
}

// MoveDown shifts every agent down (increasing Y) by at most steps cells.
// Agents are bucketed by N-1-row, processing the lowest agents first.
func (m *Mover) MoveDown(pos []model.Pos, idx *wallindex.Index, steps int) {
	for i := range m.nOrder {
		m.nOrder[i] = 0
	}
	for i := range pos {
		y := pos[i].Y
		key := n - 1 - y
		m.order[key][m.nOrder[key]] = i
		m.nOrder[key]++
	}

	var nextPos [n]int
	for x := range nextPos {
		nextPos[x] = n
	}

	for key := 0; key < n; key++ {
		for k := 0; k < m.nOrder[key]; k++ {
			i := m.order[key][k]
			y, x := pos[i].Y, pos[i].X
			newY := minInt(y+steps, minInt(nextPos[x]-1, idx.NextWallD[y][x]))
			pos[i] = model.Pos{Y: newY, X: x}
			nextPos[x] = newY
		}
	}
}

// MoveLeft shifts every agent left (decreasing X) by at most steps cells.
func (m *Mover) MoveLeft(pos []model.Pos, idx *wallindex.Index, steps int) {
	for i := range m.nOrder {
		m.nOrder[i] = 0
	}
	for i := range pos {
		x := pos[i].X
		m.order[x][m.nOrder[x]] = i
		m.nOrder[x]++
	}

	var nextPos [n]int
	for y := range nextPos {
		nextPos[y] = -1
	}

	for col := 0; col < n; col++ {
		for k := 0; k < m.nOrder[col]; k++ {
			i := m.order[col][k]
			y, x := pos[i].Y, pos[i].X
			newX := maxInt(x-steps, maxInt(nextPos[y]+1, idx.NextWallL[y][x]))
			pos[i] = model.Pos{Y: y, X: newX}
			nextPos[y] = newX
		}
	}
}

// MoveRight shifts every agent right (increasing X) by at most steps
// cells. Agents are bucketed by N-1-column, processing rightmost first.
func (m *Mover) MoveRight(pos []model.Pos, idx *wallindex.Index, steps int) {
	for i := range m.nOrder {
		m.nOrder[i] = 0
	}
	for i := range pos {
		x := pos[i].X
		key := n - 1 - x
		m.order[key][m.nOrder[key]] = i
		m.nOrder[key]++
	}

	var nextPos [n]int
	for y := range nextPos {
		nextPos[y] = n
	}

	for key := 0; key < n; key++ {
		for k := 0; k < m.nOrder[key]; k++ {
			i := m.order[key][k]
			y, x := pos[i].Y, pos[i].X
			newX := minInt(x+steps, minInt(nextPos[y]-1, idx.NextWallR[y][x]))
			pos[i] = model.Pos{Y: y, X: newX}
			nextPos[y] = newX
		}
	}
}

// Score returns the sum of Manhattan distances from pos to dst, the
// objective the annealer minimizes (spec.md §4.3.1).
func Score(pos, dst []model.Pos) int {
	total := 0
	for i := range pos {
		total += model.ManhattanTo(pos[i], dst[i])
	}
	return total
}

// Marks records, for every interior wall edge, whether the mark-wall
// variant tested it during a script replay (spec.md §4.3.2/§4.5).
type Marks struct {
	V [n][n + 1]bool
	H [n + 1][n]bool
}

// Clear resets all marks to untouched.
func (mk *Marks) Clear() {
	mk.V = [n][n + 1]bool{}
	mk.H = [n + 1][n]bool{}
}

// StepMarkUp moves every agent at most one cell up, marking the wall edge
// each agent tests regardless of whether it actually moves. cell must
// reflect the agents' current occupancy and is updated in place.
func (m *Mover) StepMarkUp(pos []model.Pos, cell *[n][n]bool, s *grid.Store, mk *Marks) {
	for i := range m.nOrder {
		m.nOrder[i] = 0
	}
	for i := range pos {
		y := pos[i].Y
		m.order[y][m.nOrder[y]] = i
		m.nOrder[y]++
	}

	for row := 0; row < n; row++ {
		for k := 0; k < m.nOrder[row]; k++ {
			i := m.order[row][k]
			y, x := pos[i].Y, pos[i].X
			mk.H[y][x] = true
			if !s.WallH[y][x] && !cell[y-1][x] {
				cell[y][x] = false
				pos[i] = model.Pos{Y: y - 1, X: x}
				cell[y-1][x] = true
			}
		}
	}
}

// StepMarkDown is the mark-wall analog of MoveDown.
func (m *Mover) StepMarkDown(pos []model.Pos, cell *[n][n]bool, s *grid.Store, mk *Marks) {
	for i := range m.nOrder {
		m.nOrder[i] = 0
	}
	for i := range pos {
		y := pos[i].Y
		key := n - 1 - y
		m.order[key][m.nOrder[key]] = i
		m.nOrder[key]++
	}

	for key := 0; key < n; key++ {
		for k := 0; k < m.nOrder[key]; k++ {
			i := m.order[key][k]
			y, x := pos[i].Y, pos[i].X
			mk.H[y+1][x] = true
			if !s.WallH[y+1][x] && !cell[y+1][x] {
				cell[y][x] = false
				pos[i] = model.Pos{Y: y + 1, X: x}
				cell[y+1][x] = true
			}
		}
	}
}

// StepMarkLeft is the mark-wall analog of MoveLeft.
func (m *Mover) StepMarkLeft(pos []model.Pos, cell *[n][n]bool, s *grid.Store, mk *Marks) {
	for i := range m.nOrder {
		m.nOrder[i] = 0
	}
	for i := range pos {
		x := pos[i].X
		m.order[x][m.nOrder[x]] = i
		m.nOrder[x]++
	}

	for col := 0; col < n; col++ {
		for k := 0; k < m.nOrder[col]; k++ {
			i := m.order[col][k]
			y, x := pos[i].Y, pos[i].X
			mk.V[y][x] = true
			if !s.WallV[y][x] && !cell[y][x-1] {
				cell[y][x] = false
				pos[i] = model.Pos{Y: y, X: x - 1}
				cell[y][x-1] = true
			}
		}
	}
}

// StepMarkRight is the mark-wall analog of MoveRight.
func (m *Mover) StepMarkRight(pos []model.Pos, cell *[n][n]bool, s *grid.Store, mk *Marks) {
	for i := range m.nOrder {
		m.nOrder[i] = 0
	}
	for i := range pos {
		x := pos[i].X
		key := n - 1 - x
		m.order[key][m.nOrder[key]] = i
		m.nOrder[key]++
	}

	for key := 0; key < n; key++ {
		for k := 0; k < m.nOrder[key]; k++ {
			i := m.order[key][k]
			y, x := pos[i].Y, pos[i].X
			mk.V[y][x+1] = true
			if !s.WallV[y][x+1] && !cell[y][x+1] {
				cell[y][x] = false
				pos[i] = model.Pos{Y: y, X: x + 1}
				cell[y][x+1] = true
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
