// Package solve implements backtracking search: always branch on the
// most-constrained empty cell, try digits in ascending order, and stop as
// soon as cap solutions have been found. The solver itself carries no error
// kind; SolvePuzzle is the boundary that turns an empty result into
// errs.Unsolvable.
package solve

import (
	"sudokuengine/errs"
	"sudokuengine/internal/bitset"
	"sudokuengine/internal/grid"
	"sudokuengine/internal/validate"
)

// MostConstrained returns the empty cell with the largest popcount of
// forbidden bits (fewest remaining candidates), breaking ties by lowest
// index. It returns -1 if no empty cell exists.
//
// The comparator starts at -1 rather than 0 so that a fully-unconstrained
// empty cell (mask 0, popcount 0) is still picked over "no cell at all".
func MostConstrained(g grid.Grid) int {
	tables := bitset.For(g.N)
	best := -1
	bestPop := -1
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.Filled {
			continue
		}
		pop := tables.Popcount(c.Mask)
		if pop > bestPop {
			bestPop = pop
			best = i
		}
	}
	return best
}

// Solve returns up to cap completed-solution strings for g, found by
// recursive backtracking on the most-constrained cell. Digits are tried in
// ascending order so the search order, and hence which solutions are
// "first", is deterministic.
func Solve(g grid.Grid, cap int) []string {
	i := MostConstrained(g)
	if i < 0 {
		return []string{g.String()}
	}

	full := uint32(1)<<uint(g.N) - 1
	mask := g.Cells[i].Mask
	if mask == full {
		return nil
	}

	var solutions []string
	for d := 1; d <= g.N; d++ {
		bit := uint32(1) << uint(d-1)
		if mask&bit != 0 {
			continue
		}
		solutions = append(solutions, Solve(g.Place(i, d), cap)...)
		if len(solutions) >= cap {
			return solutions[:cap]
		}
	}
	return solutions
}

// SolvePuzzle validates s, decodes it, and searches for up to two
// solutions. It returns errs.BadLength/BadChar/DuplicateInHouse from
// validation, or errs.Unsolvable if propagation or search rules out every
// completion.
func SolvePuzzle(s string, w int) ([]string, error) {
	if err := validate.Puzzle(s, w); err != nil {
		return nil, err
	}
	g, err := grid.Decode(s, w)
	if err != nil {
		return nil, err
	}
	if g.HasDeadCell() {
		return nil, errs.New(errs.Unsolvable, "propagation left a cell with no legal digits")
	}
	solutions := Solve(g, 2)
	if len(solutions) == 0 {
		return nil, errs.New(errs.Unsolvable, "search exhausted every branch")
	}
	return solutions, nil
}

// HasUniqueSolution reports whether s has exactly one solution.
func HasUniqueSolution(s string, w int) bool {
	solutions, err := SolvePuzzle(s, w)
	return err == nil && len(solutions) == 1
}
