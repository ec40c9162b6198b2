// Package render turns board state into text for display. It is a
// consumer of the rules engine, not part of it: an empty (nil) occupant
// is rendered as an empty square, never treated as an error.
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mboyd/wildebeest/internal/chess"
)

// EmptySquare is the glyph used for a square with no occupant.
const EmptySquare = '·'

// The orthodox pieces use the Unicode figurines, outlined for White and
// filled for Black. The fairy pieces have no figurine; they render as
// their kind letter, upper case for White and lower case for Black.
var glyphs = map[chess.Kind][2]rune{
	chess.Pawn:   {'♟', '♙'},
	chess.Knight: {'♞', '♘'},
	chess.Bishop: {'♝', '♗'},
	chess.Rook:   {'♜', '♖'},
	chess.Queen:  {'♛', '♕'},
	chess.King:   {'♚', '♔'},
}

// Glyph returns the display rune for a piece.
func Glyph(p chess.Piece) rune {
	if g, ok := glyphs[p.Kind()]; ok {
		if p.Colour() == chess.White {
			return g[1]
		}
		return g[0]
	}
	letter := rune(p.Kind().Letter())
	if p.Colour() == chess.Black {
		return unicode.ToLower(letter)
	}
	return letter
}

// Square returns the display rune for a board occupant, which may be nil.
func Square(p chess.Piece) rune {
	if p == nil {
		return EmptySquare
	}
	return Glyph(p)
}

// File returns the letter ('a' onward) naming a board column.
func File(col int) rune {
	return rune('a' + col)
}

// Text renders the whole board, Black's back rank at the top, with rank
// numbers on the left and file letters underneath.
func Text(b *chess.Board) string {
	var sb strings.Builder
	for row := chess.BoardRows - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%2d ", row+1)
		for col := 0; col < chess.BoardCols; col++ {
			sb.WriteRune(Square(b.GetSquare(chess.Position{Row: row, Col: col})))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for col := 0; col < chess.BoardCols; col++ {
		sb.WriteRune(File(col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}
