// Package sudoku is the engine's public library surface: validation,
// solving, difficulty scoring, and puzzle generation for square Sudoku
// boards of arbitrary block width w (an N=w^2 side, C=w^4 cells). It wraps
// the internal packages that hold the actual algorithms.
package sudoku

import (
	"sudokuengine/errs"
	"sudokuengine/internal/generate"
	"sudokuengine/internal/rng"
	"sudokuengine/internal/score"
	"sudokuengine/internal/solve"
	"sudokuengine/internal/validate"
)

// Re-exported so callers never need to import the errs package directly.
type (
	// Kind discriminates why an operation failed.
	Kind = errs.Kind
	// Error is the error type every operation below returns on failure.
	Error = errs.Error
	// RNGSource is the injectable randomness contract GeneratePuzzle uses.
	RNGSource = rng.Source
)

const (
	BadLength        = errs.BadLength
	BadChar          = errs.BadChar
	DuplicateInHouse = errs.DuplicateInHouse
	Unsolvable       = errs.Unsolvable
	NonUnique        = errs.NonUnique
	GenerationError  = errs.GenerationError
	Internal         = errs.Internal
)

// NewRNG returns a deterministic RNGSource seeded from seed; the same seed
// always produces the same sequence, and hence the same GeneratePuzzle
// output.
func NewRNG(seed uint64) RNGSource {
	return rng.New(seed)
}

// ValidatePuzzle checks a puzzle string of block width w: exact length,
// alphabet, and no duplicate clue in any row/column/block.
func ValidatePuzzle(s string, w int) error {
	return validate.Puzzle(s, w)
}

// ValidateSolution checks s as a complete, conflict-free solution of block
// width w (every cell filled, no duplicates).
func ValidateSolution(s string, w int) error {
	return validate.Solution(s, w)
}

// SolvePuzzle returns up to two solutions to the puzzle string s of block
// width w. It returns *Error with Kind BadLength/BadChar/DuplicateInHouse if
// s fails validation, or Unsolvable if no completion exists.
func SolvePuzzle(s string, w int) ([]string, error) {
	return solve.SolvePuzzle(s, w)
}

// HasUniqueSolution reports whether s has exactly one solution.
func HasUniqueSolution(s string, w int) bool {
	return solve.HasUniqueSolution(s, w)
}

// EvaluateDifficulty scores puzzle. If solution is "", it is derived by
// solving puzzle, failing with NonUnique if more than one solution exists.
func EvaluateDifficulty(puzzle, solution string, w int) (int, error) {
	return score.EvaluateDifficulty(puzzle, solution, w)
}

// GeneratePuzzle produces a puzzle, its unique solution, and the puzzle's
// difficulty score, hill-climbing toward target (and, if minDifficulty > 0,
// rejecting a result that falls short of it). Given the same source seed,
// target, and minDifficulty, the result is reproducible.
func GeneratePuzzle(w, target, minDifficulty int, source RNGSource) (puzzle, solution string, difficultyScore int, err error) {
	return generate.GeneratePuzzle(w, target, minDifficulty, source)
}
