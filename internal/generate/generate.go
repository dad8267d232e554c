// Package generate builds puzzles: fill a random valid grid, punch
// symmetric holes while preserving uniqueness, then hill-climb toward a
// target difficulty. All randomness flows through an injected rng.Source so
// the same seed reproduces the same triple.
package generate

import (
	"sudokuengine/errs"
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
	"sudokuengine/internal/rng"
	"sudokuengine/internal/score"
	"sudokuengine/internal/solve"
)

const (
	holePunchAttempts = 100
	hillClimbRounds   = 200
	convergenceBand   = 50
)

// GeneratePuzzle produces a (puzzle, solution, score) triple for block
// width w. target is the difficulty the hill-climb aims for; minDifficulty
// is reserved for callers that want to reject puzzles softer than a floor
// (0 disables the check).
func GeneratePuzzle(w, target, minDifficulty int, source rng.Source) (puzzle, solution string, difficulty int, err error) {
	geo := geometry.For(w)

	solved, ok := seedSolution(geo, source)
	if !ok {
		return "", "", 0, errs.New(errs.GenerationError, "failed to fill a random solution grid")
	}
	solution = solved.String()

	base, ok := punchHoles(geo, solution, source)
	if !ok {
		return "", "", 0, errs.New(errs.GenerationError, "could not find a symmetric unique-solution puzzle within the retry budget")
	}

	puzzle, difficulty, err = hillClimb(geo, base, solution, target, source)
	if err != nil {
		return "", "", 0, err
	}
	if minDifficulty > 0 && difficulty < minDifficulty {
		return "", "", 0, errs.New(errs.GenerationError, "generated puzzle fell below the requested minimum difficulty")
	}
	return puzzle, solution, difficulty, nil
}

// seedSolution shuffles 1..N into the first row, then completes the grid by
// always branching on the most-constrained cell and trying its legal
// digits in a shuffled order, taking the first full completion found.
func seedSolution(geo *geometry.Geometry, source rng.Source) (grid.Grid, bool) {
	firstRow := make([]int, geo.N)
	for i := range firstRow {
		firstRow[i] = i + 1
	}
	source.Shuffle(len(firstRow), func(i, j int) { firstRow[i], firstRow[j] = firstRow[j], firstRow[i] })

	g := grid.New(geo.W)
	for idx, d := range firstRow {
		g = g.Place(idx, d)
	}
	return randomComplete(g, source)
}

func randomComplete(g grid.Grid, source rng.Source) (grid.Grid, bool) {
	i := solve.MostConstrained(g)
	if i < 0 {
		return g, true
	}
	full := uint32(1)<<uint(g.N) - 1
	mask := g.Cells[i].Mask
	if mask == full {
		return grid.Grid{}, false
	}

	digits := make([]int, 0, g.N)
	for d := 1; d <= g.N; d++ {
		if mask&(uint32(1)<<uint(d-1)) == 0 {
			digits = append(digits, d)
		}
	}
	source.Shuffle(len(digits), func(a, b int) { digits[a], digits[b] = digits[b], digits[a] })

	for _, d := range digits {
		if completed, ok := randomComplete(g.Place(i, d), source); ok {
			return completed, true
		}
	}
	return grid.Grid{}, false
}

// punchHoles repeatedly removes a symmetric set of cells from solution and
// accepts the result as soon as it still has a unique solution.
func punchHoles(geo *geometry.Geometry, solution string, source rng.Source) (string, bool) {
	halfSize := geo.C / 2
	k := geo.N * geo.W / 2

	for attempt := 0; attempt < holePunchAttempts; attempt++ {
		half := make([]int, halfSize)
		for i := range half {
			half[i] = i
		}
		source.Shuffle(len(half), func(i, j int) { half[i], half[j] = half[j], half[i] })
		if k > len(half) {
			k = len(half)
		}
		picked := half[:k]

		remove := make(map[int]bool, 2*len(picked))
		for _, idx := range picked {
			remove[idx] = true
			remove[geo.C-1-idx] = true
		}

		candidate := []byte(solution)
		for idx := range remove {
			candidate[idx] = '.'
		}
		p := string(candidate)
		if solve.HasUniqueSolution(p, geo.W) {
			return p, true
		}
	}
	return "", false
}

// hillClimb nudges puzzle toward target difficulty by removing or
// reinstating one cell at a time, keeping an edit only when it strictly
// closes the gap to target and preserves a unique solution.
func hillClimb(geo *geometry.Geometry, puzzle, solution string, target int, source rng.Source) (string, int, error) {
	current := []byte(puzzle)
	currentScore, err := score.EvaluateDifficulty(string(current), solution, geo.W)
	if err != nil {
		return "", 0, err
	}

	for round := 0; round < hillClimbRounds; round++ {
		if distance(currentScore, target) < convergenceBand {
			break
		}

		candidate := make([]byte, len(current))
		copy(candidate, current)

		if currentScore < target {
			idx := pickIndex(candidate, geo.C, source, filled)
			if idx < 0 {
				break
			}
			candidate[idx] = '.'
		} else {
			idx := pickIndex(candidate, geo.C, source, empty)
			if idx < 0 {
				break
			}
			candidate[idx] = solution[idx]
		}

		if !solve.HasUniqueSolution(string(candidate), geo.W) {
			continue
		}
		candidateScore, err := score.EvaluateDifficulty(string(candidate), solution, geo.W)
		if err != nil {
			continue
		}
		if distance(candidateScore, target) < distance(currentScore, target) {
			current = candidate
			currentScore = candidateScore
		}
	}

	return string(current), currentScore, nil
}

func distance(score, target int) int {
	d := score - target
	if d < 0 {
		d = -d
	}
	return d
}

func filled(ch byte) bool { return ch != '.' && ch != '0' }
func empty(ch byte) bool  { return ch == '.' || ch == '0' }

// pickIndex returns a uniformly random index among the cells of candidate
// satisfying pred, or -1 if none qualify.
func pickIndex(candidate []byte, c int, source rng.Source, pred func(byte) bool) int {
	var matches []int
	for i := 0; i < c; i++ {
		if pred(candidate[i]) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return -1
	}
	return matches[source.Intn(len(matches))]
}
