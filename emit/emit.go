// Package emit produces the three pieces of deterministic output spec.md
// §4.6/§6 describe: the final wall grid in wire encoding, a group-
// assignment vector (every agent in a single group 0), and the group-move
// script that expands the optimizer's seven phases into individual
// `g 0 <dir>` lines.
//
// Grounded on original_source/pycho.py's solve() output section.
package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/niceyeti/groupmove/grid"
	"github.com/niceyeti/groupmove/model"
	"github.com/niceyeti/groupmove/optimizer"
)

// Kind distinguishes the two operation shapes spec.md's design notes call
// for: a group move or an individual move.
type Kind int

const (
	GroupKind Kind = iota
	IndividualKind
)

// Operation is the tagged variant of one output movement line.
type Operation struct {
	Kind Kind
	// ID is the group id (GroupKind) or agent id (IndividualKind).
	ID  int
	Dir model.Direction
}

// GroupScript expands the optimizer's seven-phase script into one
// Operation per group-move step, all against group 0 (the single group
// every agent belongs to), in script order.
func GroupScript(o *optimizer.Optimizer) []Operation {
	var ops []Operation
	for _, phase := range o.ScriptStepCounts() {
		for i := 0; i < phase.Steps; i++ {
			ops = append(ops, Operation{Kind: GroupKind, ID: 0, Dir: phase.Dir})
		}
	}
	return ops
}

// Groups returns the K-length group-assignment vector: every agent in
// group 0, since the optimizer only ever builds a single group script.
func Groups(k int) []int {
	return make([]int, k)
}

// WallLines renders the final wall planes in the §6 wire encoding: N
// lines of N-1 characters for the vertical walls, then N-1 lines of N
// characters for the horizontal walls.
func WallLines(s *grid.Store) (vLines, hLines []string) {
	n := model.N
	vLines = make([]string, n)
	for r := 0; r < n; r++ {
		buf := make([]byte, n-1)
		for c := 0; c < n-1; c++ {
			buf[c] = bit(s.WallV[r][c+1])
		}
		vLines[r] = string(buf)
	}

	hLines = make([]string, n-1)
	for r := 0; r < n-1; r++ {
		buf := make([]byte, n)
		for c := 0; c < n; c++ {
			buf[c] = bit(s.WallH[r+1][c])
		}
		hLines[r] = string(buf)
	}
	return
}

func bit(set bool) byte {
	if set {
		return '1'
	}
	return '0'
}

// WriteSolution writes the complete output: walls, groups, the group
// script, then any additional operations (the cleanup walker's
// individual moves), in the exact order and format spec.md §6 specifies.
func WriteSolution(w io.Writer, s *grid.Store, k int, script []Operation, cleanup []Operation) error {
	bw := bufio.NewWriter(w)

	vLines, hLines := WallLines(s)
	for _, line := range vLines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	for _, line := range hLines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	groups := Groups(k)
	for i, g := range groups {
		if i > 0 {
			if _, err := fmt.Fprint(bw, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, g); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	for _, op := range script {
		if err := writeOp(bw, op); err != nil {
			return err
		}
	}
	for _, op := range cleanup {
		if err := writeOp(bw, op); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeOp(w io.Writer, op Operation) error {
	switch op.Kind {
	case GroupKind:
		_, err := fmt.Fprintf(w, "g %d %s\n", op.ID, op.Dir)
		return err
	default:
		_, err := fmt.Fprintf(w, "i %d %s\n", op.ID, op.Dir)
		return err
	}
}
