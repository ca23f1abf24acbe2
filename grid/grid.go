// Package grid holds the wall planes of the fixed N=30 board: which
// interior edges are walled, which of those were present in the original
// input (and so can never be removed), and the boundary wall that always
// surrounds the board.
//
// Grounded on the wall-array setup in original_source/pycho.py's
// MazeOptimizer.__init__/solve (owallv/owallh/wallv/wallh), re-expressed
// with the shapes the spec gives directly (WallV is [N][N+1], WallH is
// [N+1][N]) instead of the Python's N+2-padded, off-by-one indexing.
package grid

import "github.com/niceyeti/groupmove/model"

const n = model.N

// Store holds the two wall planes and their original-wall masks.
//
// WallV[r][c], c in [0,N]: a vertical wall on the left edge of cell (r,c).
// Columns 0 and N are always true (the boundary).
//
// WallH[r][c], r in [0,N]: a horizontal wall on the top edge of cell (r,c).
// Rows 0 and N are always true (the boundary).
type Store struct {
	WallV  [n][n + 1]bool
	WallH  [n + 1][n]bool
	OWallV [n][n + 1]bool
	OWallH [n + 1][n]bool
}

// NewStore returns a Store with only the boundary walls set.
func NewStore() *Store {
	s := &Store{}
	for i := 0; i < n; i++ {
		s.WallV[i][0] = true
		s.WallV[i][n] = true
		s.OWallV[i][0] = true
		s.OWallV[i][n] = true
	}
	for c := 0; c < n; c++ {
		s.WallH[0][c] = true
		s.WallH[n][c] = true
		s.OWallH[0][c] = true
		s.OWallH[n][c] = true
	}
	return s
}

// SetOriginalV marks an interior vertical wall as present in the input,
// at r in [0,N), c in [1,N-1]. It also sets the live wall, since
// wall >= owall always.
func (s *Store) SetOriginalV(r, c int) {
	s.OWallV[r][c] = true
	s.WallV[r][c] = true
}

// SetOriginalH marks an interior horizontal wall as present in the input,
// at r in [1,N-1], c in [0,N). It also sets the live wall.
func (s *Store) SetOriginalH(r, c int) {
	s.OWallH[r][c] = true
	s.WallH[r][c] = true
}

// ToggleWallV flips the interior vertical wall at (r,c), c in [1,N-1].
// Returns ok=false without modifying anything if c is an original wall;
// per spec.md §4.1/§7, proposing such a toggle is a no-op, not an error.
// Returns removed=true if the wall's new value is false (it was cleared).
func (s *Store) ToggleWallV(r, c int) (removed, ok bool) {
	if s.OWallV[r][c] {
		return false, false
	}
	s.WallV[r][c] = !s.WallV[r][c]
	return !s.WallV[r][c], true
}

// ToggleWallH flips the interior horizontal wall at (r,c), r in [1,N-1].
// Same no-op/removed contract as ToggleWallV.
func (s *Store) ToggleWallH(r, c int) (removed, ok bool) {
	if s.OWallH[r][c] {
		return false, false
	}
	s.WallH[r][c] = !s.WallH[r][c]
	return !s.WallH[r][c], true
}
