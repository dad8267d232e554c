package generate

import (
	"testing"

	"sudokuengine/errs"
	"sudokuengine/internal/rng"
	"sudokuengine/internal/solve"
	"sudokuengine/internal/validate"
)

func TestGeneratePuzzleProducesConsistentTriple(t *testing.T) {
	source := rng.New(1)
	puzzle, solution, difficulty, err := GeneratePuzzle(3, 500, 0, source)
	if err != nil {
		t.Fatalf("GeneratePuzzle returned error: %v", err)
	}

	if err := validate.Puzzle(puzzle, 3); err != nil {
		t.Errorf("generated puzzle failed validation: %v", err)
	}
	if err := validate.Solution(solution, 3); err != nil {
		t.Errorf("generated solution failed validation: %v", err)
	}
	if !solve.HasUniqueSolution(puzzle, 3) {
		t.Errorf("generated puzzle should have a unique solution")
	}
	for i := 0; i < len(puzzle); i++ {
		if puzzle[i] != '.' && puzzle[i] != solution[i] {
			t.Errorf("cell %d: puzzle clue %q disagrees with solution %q", i, puzzle[i], solution[i])
		}
	}
	if difficulty <= 0 {
		t.Errorf("difficulty = %d, want positive", difficulty)
	}
}

func TestGeneratePuzzleSameSeedIsDeterministic(t *testing.T) {
	p1, s1, d1, err1 := GeneratePuzzle(3, 400, 0, rng.New(99))
	p2, s2, d2, err2 := GeneratePuzzle(3, 400, 0, rng.New(99))
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if p1 != p2 || s1 != s2 || d1 != d2 {
		t.Fatalf("same seed diverged: (%q,%q,%d) vs (%q,%q,%d)", p1, s1, d1, p2, s2, d2)
	}
}

func TestGeneratePuzzleMinDifficultyFloor(t *testing.T) {
	_, _, difficulty, err := GeneratePuzzle(3, 50, 0, rng.New(3))
	if err != nil {
		t.Fatalf("baseline generation failed: %v", err)
	}

	_, _, _, err = GeneratePuzzle(3, 50, difficulty+100000, rng.New(3))
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.GenerationError {
		t.Fatalf("want errs.GenerationError for an unreachable minimum, got %v", err)
	}
}

func TestGeneratePuzzleBlockWidth2(t *testing.T) {
	puzzle, solution, _, err := GeneratePuzzle(2, 10, 0, rng.New(5))
	if err != nil {
		t.Fatalf("GeneratePuzzle returned error: %v", err)
	}
	if len(puzzle) != 16 || len(solution) != 16 {
		t.Fatalf("want 16-char strings for w=2, got puzzle=%d solution=%d", len(puzzle), len(solution))
	}
}
