package chess

// pawn has bespoke rules not expressible through the shared movers:
// forward steps only onto empty squares, diagonal steps only onto enemies,
// and a double or triple first advance along a clear path.
type pawn struct {
	piece
}

// NewPawn returns a pawn advancing in its colour's forward direction.
func NewPawn(colour Colour, pos Position) Piece {
	return &pawn{piece{kind: Pawn, colour: colour, pos: pos}}
}

func (p *pawn) ValidMoves(b *Board) []Position {
	var out []Position
	forward := p.colour.forward()

	// Forward advances require every intermediate square to be empty, so a
	// blocked single step also rules out the longer ones. The double and
	// triple steps are only available before the pawn's first move.
	steps := 1
	if !p.moved {
		steps = 3
	}
	for n := 1; n <= steps; n++ {
		t := Position{Row: p.pos.Row + n*forward, Col: p.pos.Col}
		if !b.IsValidSquare(t) || !b.IsEmptySquare(t) {
			break
		}
		out = append(out, t)
	}

	// Diagonal steps are captures only.
	for _, dc := range []int{-1, 1} {
		t := Position{Row: p.pos.Row + forward, Col: p.pos.Col + dc}
		if occ := b.GetSquare(t); occ != nil && occ.Colour() != p.colour {
			out = append(out, t)
		}
	}
	return out
}

// Threatens returns the two forward diagonals regardless of whether a
// capture is currently available there.
func (p *pawn) Threatens(b *Board) []Position {
	var out []Position
	for _, dc := range []int{-1, 1} {
		t := Position{Row: p.pos.Row + p.colour.forward(), Col: p.pos.Col + dc}
		if b.IsValidSquare(t) {
			out = append(out, t)
		}
	}
	return out
}
