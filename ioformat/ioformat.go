// Package ioformat is the external-collaborator input parser of
// spec.md §6: it turns the whitespace-token input stream into a
// grid.Store plus an agent list, and is also where a malformed-input
// error is surfaced (the core itself is total over well-formed input,
// per spec.md §7).
//
// Grounded on original_source/pycho.py's input-reading section of
// solve(), re-expressed with explicit error returns instead of letting
// a malformed token crash the process.
package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/niceyeti/groupmove/grid"
	"github.com/niceyeti/groupmove/model"
)

// ParseResult bundles the two things a well-formed input yields.
type ParseResult struct {
	Grid   *grid.Store
	Agents []model.Agent
}

// Parse reads the §6 input format from r. It returns an error naming the
// first malformed token it finds; spec.md §7 assigns that job to this
// package, not to the core.
func Parse(r io.Reader) (*ParseResult, error) {
	sc := newScanner(r)

	n, err := sc.int()
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading N: %w", err)
	}
	if n != model.N {
		return nil, fmt.Errorf("ioformat: N=%d, want %d", n, model.N)
	}

	k, err := sc.int()
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading K: %w", err)
	}
	if k <= 0 || k > model.MaxK {
		return nil, fmt.Errorf("ioformat: K=%d out of range [1,%d]", k, model.MaxK)
	}

	agents := make([]model.Agent, k)
	for i := 0; i < k; i++ {
		sy, err := sc.int()
		if err != nil {
			return nil, fmt.Errorf("ioformat: agent %d sy: %w", i, err)
		}
		sx, err := sc.int()
		if err != nil {
			return nil, fmt.Errorf("ioformat: agent %d sx: %w", i, err)
		}
		dy, err := sc.int()
		if err != nil {
			return nil, fmt.Errorf("ioformat: agent %d dy: %w", i, err)
		}
		dx, err := sc.int()
		if err != nil {
			return nil, fmt.Errorf("ioformat: agent %d dx: %w", i, err)
		}
		if !inRange(sy) || !inRange(sx) || !inRange(dy) || !inRange(dx) {
			return nil, fmt.Errorf("ioformat: agent %d coordinate out of [0,%d)", i, model.N)
		}
		agents[i] = model.Agent{Src: model.Pos{Y: sy, X: sx}, Dst: model.Pos{Y: dy, X: dx}}
	}

	store := grid.NewStore()

	for r := 0; r < model.N; r++ {
		line, err := sc.token()
		if err != nil {
			return nil, fmt.Errorf("ioformat: vertical wall row %d: %w", r, err)
		}
		if len(line) != model.N-1 {
			return nil, fmt.Errorf("ioformat: vertical wall row %d has %d chars, want %d", r, len(line), model.N-1)
		}
		for c, ch := range line {
			if ch != '0' && ch != '1' {
				return nil, fmt.Errorf("ioformat: vertical wall row %d col %d: invalid char %q", r, c, ch)
			}
			if ch == '1' {
				store.SetOriginalV(r, c+1)
			}
		}
	}

	for r := 0; r < model.N-1; r++ {
		line, err := sc.token()
		if err != nil {
			return nil, fmt.Errorf("ioformat: horizontal wall row %d: %w", r, err)
		}
		if len(line) != model.N {
			return nil, fmt.Errorf("ioformat: horizontal wall row %d has %d chars, want %d", r, len(line), model.N)
		}
		for c, ch := range line {
			if ch != '0' && ch != '1' {
				return nil, fmt.Errorf("ioformat: horizontal wall row %d col %d: invalid char %q", r, c, ch)
			}
			if ch == '1' {
				store.SetOriginalH(r+1, c)
			}
		}
	}

	return &ParseResult{Grid: store, Agents: agents}, nil
}

func inRange(v int) bool {
	return v >= 0 && v < model.N
}

// scanner is a minimal whitespace-token reader, since bufio.Scanner
// with the ScanWords split function is exactly what this wire format
// needs and the teacher's codebase reaches for bufio directly rather
// than a parsing library for line/token-oriented formats.
type scanner struct {
	sc *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	bs := bufio.NewScanner(r)
	bs.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	bs.Split(bufio.ScanWords)
	return &scanner{sc: bs}
}

func (s *scanner) token() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return s.sc.Text(), nil
}

func (s *scanner) int() (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	var v int
	if _, err := fmt.Sscanf(tok, "%d", &v); err != nil {
		return 0, fmt.Errorf("not an integer: %q", tok)
	}
	return v, nil
}
