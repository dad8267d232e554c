// Package errs defines the typed error kinds returned across the sudoku
// engine's package boundary. Callers pattern-match on Kind rather than on
// error strings.
package errs

import "fmt"

// Kind discriminates the reasons a core operation can fail.
type Kind int

const (
	// BadLength means a puzzle/solution string's length did not match C = w^4.
	BadLength Kind = iota
	// BadChar means a character outside {'.', '0'..char(N)} was found.
	BadChar
	// DuplicateInHouse means a digit repeats inside some row/column/block.
	DuplicateInHouse
	// Unsolvable means propagation found a dead cell, or search exhausted
	// every branch without completing the grid.
	Unsolvable
	// NonUnique means the scorer required exactly one solution but found more.
	NonUnique
	// GenerationError means hole-punching could not find a unique-solution
	// puzzle within its retry budget.
	GenerationError
	// Internal means a reconstructed solution disagreed with the one
	// supplied to the scorer. Indicates a bug in the caller or the engine.
	Internal
)

func (k Kind) String() string {
	switch k {
	case BadLength:
		return "BadLength"
	case BadChar:
		return "BadChar"
	case DuplicateInHouse:
		return "DuplicateInHouse"
	case Unsolvable:
		return "Unsolvable"
	case NonUnique:
		return "NonUnique"
	case GenerationError:
		return "GenerationError"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the single error type every exported operation returns on
// failure. Detail carries a human-readable explanation; Kind is what
// callers should switch on.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// New builds an *Error, the only constructor engine packages should use.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Is reports whether err is an *Error of the given kind. It lets callers
// write errs.Is(err, errs.Unsolvable) instead of a manual type assertion.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
