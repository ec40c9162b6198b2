// Package errors provides sentinel errors and error types for the
// wildebeest rules engine. It defines the move-failure taxonomy and a
// structured error type that preserves context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three move-failure causes.
// Use these with errors.Is() to check for a specific cause.
var (
	// ErrNoPiece indicates the source square holds no piece.
	ErrNoPiece = errors.New("no piece on source square")

	// ErrUnreachableTarget indicates the target square is out of bounds
	// or occupied by a piece of the mover's own colour.
	ErrUnreachableTarget = errors.New("unreachable target square")

	// ErrIllegalMove indicates the target is reachable but not in the
	// piece's legal-move set (a blocked slide, a king stepping into
	// check, a pawn moving diagonally onto an empty square, and so on).
	ErrIllegalMove = errors.New("illegal move")

	// ErrBadMoveSyntax indicates user input that does not name two squares.
	ErrBadMoveSyntax = errors.New("expected a move of the form \"<from> <to>\"")

	// ErrBadSquare indicates user input that does not name a board square.
	ErrBadSquare = errors.New("invalid square")
)

// MoveError wraps a move-failure sentinel with the squares and piece
// involved. It implements the error interface and supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err     error  // The underlying sentinel
	Piece   string // The piece that was asked to move, if any
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	from := fmt.Sprintf("(%d,%d)", e.FromRow, e.FromCol)
	to := fmt.Sprintf("(%d,%d)", e.ToRow, e.ToCol)
	if e.Piece != "" {
		return fmt.Sprintf("move %s %s -> %s: %v", e.Piece, from, to, e.Err)
	}
	return fmt.Sprintf("move %s -> %s: %v", from, to, e.Err)
}

// Unwrap returns the underlying sentinel, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
