package chess

import (
	"github.com/mboyd/wildebeest/internal/errors"
)

// Board dimensions for Wildebeest Chess. The setup and mirroring code is
// written against these constants, but the variant is not resizable.
const (
	BoardRows = 10
	BoardCols = 11
)

// backRow is White's back rank from column 0 upward. Black's back rank is
// the left-right mirror of this layout.
var backRow = [BoardCols]func(Colour, Position) Piece{
	NewRook, NewKnight, NewCamel, NewCamel, NewWildebeest, NewQueen,
	NewKing, NewBishop, NewBishop, NewKnight, NewRook,
}

// Board owns the 10x11 grid of piece occupants (nil = empty). A piece's
// stored position always equals the grid coordinates of the slot holding
// it; Move is the only operation that changes either, and it updates both
// together. The board provides no internal locking: callers must
// serialize all moves against a given instance.
type Board struct {
	squares [BoardRows][BoardCols]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Reset repopulates the grid with the starting position: each colour's
// back rank plus a full pawn row, every other square empty.
func (b *Board) Reset() {
	b.squares = [BoardRows][BoardCols]Piece{}

	for col, newPiece := range backRow {
		b.Place(newPiece(White, Position{Row: 0, Col: col}))
		b.Place(newPiece(Black, Position{Row: BoardRows - 1, Col: BoardCols - 1 - col}))
	}
	for col := 0; col < BoardCols; col++ {
		b.Place(NewPawn(White, Position{Row: 1, Col: col}))
		b.Place(NewPawn(Black, Position{Row: BoardRows - 2, Col: col}))
	}
}

// IsValidSquare reports whether pos names a square on the board.
func (b *Board) IsValidSquare(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardRows && pos.Col >= 0 && pos.Col < BoardCols
}

// GetSquare returns the occupant at pos, or nil if the square is empty.
// Out-of-bounds reads also return nil rather than an error.
func (b *Board) GetSquare(pos Position) Piece {
	if !b.IsValidSquare(pos) {
		return nil
	}
	return b.squares[pos.Row][pos.Col]
}

// SetSquare writes an occupant (or nil) at pos. Writes outside the board
// are ignored.
func (b *Board) SetSquare(pos Position, p Piece) {
	if b.IsValidSquare(pos) {
		b.squares[pos.Row][pos.Col] = p
	}
}

// Place writes a piece at its own stored position.
func (b *Board) Place(p Piece) {
	b.SetSquare(p.Position(), p)
}

// IsEmptySquare reports whether pos holds no piece. Out-of-bounds squares
// count as empty, never as occupied; use IsValidSquare to exclude them
// from actual moves.
func (b *Board) IsEmptySquare(pos Position) bool {
	return b.GetSquare(pos) == nil
}

// Pieces returns every piece on the board in row-major scan order. The
// slice is built fresh on each call.
func (b *Board) Pieces() []Piece {
	var out []Piece
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			if p := b.squares[row][col]; p != nil {
				out = append(out, p)
			}
		}
	}
	return out
}

// PiecesOf returns every piece of the given colour in row-major scan order.
func (b *Board) PiecesOf(colour Colour) []Piece {
	var out []Piece
	for _, p := range b.Pieces() {
		if p.Colour() == colour {
			out = append(out, p)
		}
	}
	return out
}

// Threatened returns the union of squares threatened by every piece of
// the given colour, recomputed from current occupancy. The king's move
// generation consumes this; game-flow callers can build check detection
// on it.
func (b *Board) Threatened(by Colour) map[Position]bool {
	set := make(map[Position]bool)
	for _, p := range b.PiecesOf(by) {
		for _, t := range p.Threatens(b) {
			set[t] = true
		}
	}
	return set
}

// Move moves the piece at from to to. It validates fully before mutating:
// on any failure the board is unchanged and the returned error unwraps to
// one of errors.ErrNoPiece, errors.ErrUnreachableTarget, or
// errors.ErrIllegalMove. On success the source square is cleared, the
// destination is overwritten (capturing any occupant), and the piece's
// stored position and moved flag are updated.
func (b *Board) Move(from, to Position) error {
	p := b.GetSquare(from)
	if p == nil {
		return moveError(errors.ErrNoPiece, "", from, to)
	}
	if !p.isPossibleTarget(b, to) {
		return moveError(errors.ErrUnreachableTarget, p.String(), from, to)
	}
	if !containsPosition(p.ValidMoves(b), to) {
		return moveError(errors.ErrIllegalMove, p.String(), from, to)
	}

	b.SetSquare(from, nil)
	b.SetSquare(to, p)
	p.relocate(to)
	return nil
}

func moveError(cause error, pieceName string, from, to Position) error {
	return &errors.MoveError{
		Err:     cause,
		Piece:   pieceName,
		FromRow: from.Row,
		FromCol: from.Col,
		ToRow:   to.Row,
		ToCol:   to.Col,
	}
}

func containsPosition(positions []Position, target Position) bool {
	for _, pos := range positions {
		if pos == target {
			return true
		}
	}
	return false
}
