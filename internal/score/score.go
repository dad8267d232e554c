// Package score implements the difficulty scorer and the hidden-single /
// set-oriented-freedom hint. The hint is exported on its own; neither
// EvaluateDifficulty nor the generator calls it.
package score

import (
	"sudokuengine/errs"
	"sudokuengine/internal/bitset"
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
	"sudokuengine/internal/solve"
	"sudokuengine/internal/validate"
)

// EvaluateDifficulty scores puzzle. If solution is empty, it is derived by
// solving puzzle; a non-unique or unsolvable puzzle then fails with
// errs.NonUnique / errs.Unsolvable. The final score is E + 100*sum((k-1)^2)
// over the forced walk to solution, where E is the initial empty-cell count
// and k is the branching factor at each step.
func EvaluateDifficulty(puzzle, solution string, w int) (int, error) {
	if err := validate.Puzzle(puzzle, w); err != nil {
		return 0, err
	}
	if solution == "" {
		solutions, err := solve.SolvePuzzle(puzzle, w)
		if err != nil {
			return 0, err
		}
		if len(solutions) > 1 {
			return 0, errs.New(errs.NonUnique, "puzzle has more than one solution")
		}
		solution = solutions[0]
	} else if err := validate.Solution(solution, w); err != nil {
		return 0, err
	}

	g, err := grid.Decode(puzzle, w)
	if err != nil {
		return 0, err
	}

	empty := 0
	for _, c := range g.Cells {
		if !c.Filled {
			empty++
		}
	}

	tables := bitset.For(g.N)
	branchScore := 0
	for {
		i := solve.MostConstrained(g)
		if i < 0 {
			break
		}
		k := g.N - tables.Popcount(g.Cells[i].Mask)
		branchScore += (k - 1) * (k - 1) * 100

		d, ok := grid.CharToDigit(solution[i], g.N)
		if !ok || d == 0 {
			return 0, errs.New(errs.Internal, "solution missing a digit at a cell the walk needed to fill")
		}
		g = g.Place(i, d)
	}

	if g.String() != solution {
		return 0, errs.New(errs.Internal, "reconstructed solution disagreed with the supplied one")
	}

	return empty + branchScore, nil
}

// FewestCandidateSOFASet finds the digit with the fewest legal empty
// positions in some house, among digits with at least one and fewer than
// upperLimit legal positions. It returns ok=false if no such digit exists.
// It early-exits as soon as some digit has exactly one legal position in a
// house, since no later house can do better than a singleton.
func FewestCandidateSOFASet(g grid.Grid, upperLimit int) (digit int, positions []int, ok bool) {
	geo := geometry.For(g.W)

	for _, house := range geo.Houses() {
		d, posInHouse, found := sofaFindCandidate(g, house, upperLimit)
		if !found {
			continue
		}
		digit = d
		positions = make([]int, len(posInHouse))
		for i, p := range posInHouse {
			positions[i] = house[p]
		}
		if len(posInHouse) == 1 {
			return digit, positions, true
		}
		upperLimit = len(posInHouse)
	}
	return digit, positions, positions != nil
}

// sofaFindCandidate checks one house for the digit with fewest legal empty
// positions under upperLimit, scanning digits in ascending order.
func sofaFindCandidate(g grid.Grid, house []int, upperLimit int) (digit int, positionsInHouse []int, ok bool) {
	for d := 1; d <= g.N; d++ {
		bit := uint32(1) << uint(d-1)
		var seen []int
		for pos, idx := range house {
			c := g.Cells[idx]
			if c.Filled {
				continue
			}
			if c.Mask&bit == 0 {
				seen = append(seen, pos)
			}
			if len(seen) >= upperLimit {
				break
			}
		}
		if len(seen) > 0 && len(seen) < upperLimit {
			digit, positionsInHouse, ok = d, seen, true
			upperLimit = len(seen)
		}
		if len(seen) == 1 {
			return digit, positionsInHouse, ok
		}
	}
	return digit, positionsInHouse, ok
}
