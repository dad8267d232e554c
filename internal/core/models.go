// Package core documents the data shapes a persistence or presentation
// collaborator would target, without implementing either. Nothing in this
// module constructs these types; they exist so a caller storing or
// rendering a generated puzzle has an agreed-upon row to fill in.
package core

import "time"

// Difficulty buckets a puzzle's numeric score into the bands a UI or
// leaderboard would group by. The engine itself only ever returns the raw
// int score from EvaluateDifficulty; bucketing into these bands is left to
// the collaborator that owns presentation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

// PuzzleRecord is the shape a persistence layer would store per generated
// puzzle: the engine's own output (Puzzle, Solution, Difficulty) plus the
// board Size (= 9 for the common w=3 board) a row needs to decode either
// string back into a grid.
type PuzzleRecord struct {
	ID         string     `json:"id"`
	Puzzle     string     `json:"puzzle"`
	Solution   string     `json:"solution"`
	Difficulty int        `json:"difficulty"`
	Band       Difficulty `json:"band,omitempty"`
	Size       int        `json:"size"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AttemptRecord is the shape a collaborator tracking solver sessions against
// a PuzzleRecord would store; the engine has no notion of sessions or users.
type AttemptRecord struct {
	ID        string    `json:"id"`
	PuzzleID  string    `json:"puzzle_id"`
	TimeMs    int       `json:"time_ms"`
	Mistakes  int       `json:"mistakes"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
