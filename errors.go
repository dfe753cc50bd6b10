package satisfy

import "fmt"

// Position identifies a location in source text, used by ParseError.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Col    int // 1-based
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Col)
}

// ParseError reports invalid syntax encountered while reading an infix
// formula or a DIMACS CNF file. It is surfaced to the caller untouched; the
// solver is never invoked.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

// EncodingError indicates that CNF normalization or the Tseitin encoder
// produced a structurally invalid formula. This is always an internal bug,
// never a consequence of bad input, and the solver must not attempt to
// recover from it.
type EncodingError struct {
	Msg string
}

func (e *EncodingError) Error() string {
	return "encoding error: " + e.Msg
}

// InvariantViolation indicates that a solver invariant (propagation, trail
// consistency, conflict analysis termination) failed. Like EncodingError,
// this is always a bug and is never recovered from.
type InvariantViolation struct {
	Where string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation in " + e.Where
}
