// Package validate implements puzzle-string parsing and checking:
// length/alphabet/uniqueness for a puzzle, and the stricter all-filled check
// for a claimed solution. Checks run length, then alphabet, then
// house duplicates, so the first violation found determines the error Kind.
package validate

import (
	"fmt"

	"sudokuengine/errs"
	"sudokuengine/internal/bitset"
	"sudokuengine/internal/geometry"
	"sudokuengine/internal/grid"
)

// Conflict is a pair of cells holding the same digit inside a shared house.
type Conflict struct {
	Cell1, Cell2 int
	Digit        int
	House        string // "row", "column", or "block"
}

// Puzzle checks s as a puzzle string of block width w: exact length C,
// every character in {'.', '0'..char(N)}, and no duplicate digit inside any
// row/column/block. Empty and zero cells are interchangeable "no clue"
// markers.
func Puzzle(s string, w int) error {
	geo := geometry.For(w)
	if len(s) != geo.C {
		return errs.New(errs.BadLength, fmt.Sprintf("puzzle must have exactly %d characters, got %d", geo.C, len(s)))
	}
	for i := 0; i < len(s); i++ {
		if _, ok := grid.CharToDigit(s[i], geo.N); !ok {
			return errs.New(errs.BadChar, fmt.Sprintf("invalid character %q at position %d", s[i], i))
		}
	}
	if !housesHoldUniqueDigits(s, geo) {
		conflicts := FindConflicts(s, w)
		c := conflicts[0]
		return errs.New(errs.DuplicateInHouse, fmt.Sprintf("digit %d repeats in %s at cells %d and %d", c.Digit, c.House, c.Cell1, c.Cell2))
	}
	return nil
}

// housesHoldUniqueDigits is a fast pre-check: it confirms every house's
// filled digits are pairwise distinct without building the full conflict
// list FindConflicts needs for its cell-pair/house detail.
func housesHoldUniqueDigits(s string, geo *geometry.Geometry) bool {
	digits := make([]int, 0, geo.N)
	for _, house := range geo.Houses() {
		digits = digits[:0]
		for _, idx := range house {
			d, ok := grid.CharToDigit(s[idx], geo.N)
			if !ok || d == 0 {
				continue
			}
			digits = append(digits, d)
		}
		if !bitset.AllUnique(digits) {
			return false
		}
	}
	return true
}

// Solution checks s as a complete solution string: same checks as Puzzle,
// plus every cell must hold a digit in 1..N (no empties).
func Solution(s string, w int) error {
	geo := geometry.For(w)
	if len(s) != geo.C {
		return errs.New(errs.BadLength, fmt.Sprintf("solution must have exactly %d characters, got %d", geo.C, len(s)))
	}
	for i := 0; i < len(s); i++ {
		d, ok := grid.CharToDigit(s[i], geo.N)
		if !ok || d == 0 {
			return errs.New(errs.BadChar, fmt.Sprintf("solution must only contain digits 1-%d, found %q at position %d", geo.N, s[i], i))
		}
	}
	return Puzzle(s, w)
}

// FindConflicts returns every pair of cells in s that share a house and
// hold the same non-empty digit. s is assumed to already have the right
// length and alphabet; callers that have not checked that should call
// Puzzle first.
func FindConflicts(s string, w int) []Conflict {
	geo := geometry.For(w)
	var conflicts []Conflict
	seen := make(map[[3]int]bool)

	houseName := func(idx int) string {
		switch {
		case idx < geo.N:
			return "row"
		case idx < 2*geo.N:
			return "column"
		default:
			return "block"
		}
	}

	for hi, house := range geo.Houses() {
		positions := make(map[int][]int)
		for _, idx := range house {
			if idx >= len(s) {
				continue
			}
			d, ok := grid.CharToDigit(s[idx], geo.N)
			if !ok || d == 0 {
				continue
			}
			positions[d] = append(positions[d], idx)
		}
		for d, cells := range positions {
			if len(cells) < 2 {
				continue
			}
			for a := 0; a < len(cells); a++ {
				for b := a + 1; b < len(cells); b++ {
					c1, c2 := cells[a], cells[b]
					if c1 > c2 {
						c1, c2 = c2, c1
					}
					key := [3]int{c1, c2, d}
					if seen[key] {
						continue
					}
					seen[key] = true
					conflicts = append(conflicts, Conflict{Cell1: c1, Cell2: c2, Digit: d, House: houseName(hi)})
				}
			}
		}
	}
	return conflicts
}
