// Package chess implements the rules of Wildebeest Chess: a 10x11 board,
// the orthodox pieces, and the camel, wildebeest, and unicorn fairy pieces.
// It provides board state, per-piece legal-move generation, and king-safety
// enforcement. Rendering and game-flow orchestration are left to callers.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// forward returns the pawn advance direction for a colour: White pawns
// start on row 1 and advance towards higher rows, Black pawns the reverse.
func (c Colour) forward() int {
	if c == White {
		return 1
	}
	return -1
}
