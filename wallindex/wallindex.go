// Package wallindex precomputes, for every cell, the row/column of the
// nearest wall in each of the four cardinal directions — the "wall-run
// index" of spec.md §4.2 — so the bulk-move simulator can jump an agent to
// its stopping point in O(1) instead of walking cell-by-cell.
//
// Grounded on original_source/pycho.py's rebuild_next_wall_col /
// rebuild_next_wall_row.
package wallindex

import "github.com/niceyeti/groupmove/grid"

const n = 30

// Index holds, for every cell, the stop coordinate an agent sliding
// unboundedly in each direction (ignoring other agents) would reach.
//
// NextWallU[r][c]: largest r' <= r such that a horizontal wall sits on the
// top edge of (r',c); always >= 0 given the boundary wall.
// NextWallD[r][c]: smallest r' >= r such that a horizontal wall sits on the
// bottom edge of (r',c).
// NextWallL, NextWallR: symmetric, over columns within a row.
type Index struct {
	NextWallU [n][n]int
	NextWallD [n][n]int
	NextWallL [n][n]int
	NextWallR [n][n]int
}

// New builds a fully populated Index from the current wall planes.
func New(s *grid.Store) *Index {
	idx := &Index{}
	for c := 0; c < n; c++ {
		idx.RebuildCol(s, c)
	}
	for r := 0; r < n; r++ {
		idx.RebuildRow(s, r)
	}
	return idx
}

// RebuildCol recomputes NextWallU/NextWallD for column c in O(N), after a
// horizontal-wall toggle in that column.
func (idx *Index) RebuildCol(s *grid.Store, c int) {
	for r := 0; r < n; r++ {
		if r == 0 {
			if s.WallH[r][c] {
				idx.NextWallU[r][c] = r
			} else {
				idx.NextWallU[r][c] = -1
			}
		} else if s.WallH[r][c] {
			idx.NextWallU[r][c] = r
		} else {
			idx.NextWallU[r][c] = idx.NextWallU[r-1][c]
		}
	}
	for r := n - 1; r >= 0; r-- {
		if r == n-1 {
			if s.WallH[r+1][c] {
				idx.NextWallD[r][c] = r
			} else {
				idx.NextWallD[r][c] = n
			}
		} else if s.WallH[r+1][c] {
			idx.NextWallD[r][c] = r
		} else {
			idx.NextWallD[r][c] = idx.NextWallD[r+1][c]
		}
	}
}

// RebuildRow recomputes NextWallL/NextWallR for row r in O(N), after a
// vertical-wall toggle in that row.
func (idx *Index) RebuildRow(s *grid.Store, r int) {
	for c := 0; c < n; c++ {
		if c == 0 {
			if s.WallV[r][c] {
				idx.NextWallL[r][c] = c
			} else {
				idx.NextWallL[r][c] = -1
			}
		} else if s.WallV[r][c] {
			idx.NextWallL[r][c] = c
		} else {
			idx.NextWallL[r][c] = idx.NextWallL[r][c-1]
		}
	}
	for c := n - 1; c >= 0; c-- {
		if c == n-1 {
			if s.WallV[r][c+1] {
				idx.NextWallR[r][c] = c
			} else {
				idx.NextWallR[r][c] = n
			}
		} else if s.WallV[r][c+1] {
			idx.NextWallR[r][c] = c
		} else {
			idx.NextWallR[r][c] = idx.NextWallR[r][c+1]
		}
	}
}
