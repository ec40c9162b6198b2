package chess

// king moves one step in any direction, excluding squares the opposing
// side threatens.
type king struct {
	piece
}

// NewKing returns a king.
func NewKing(colour Colour, pos Position) Piece {
	return &king{piece{kind: King, colour: colour, pos: pos}}
}

func (k *king) ValidMoves(b *Board) []Position {
	unsafe := b.Threatened(k.colour.Opposite())
	var out []Position
	for _, d := range royalDirs {
		t := k.pos.Offset(d)
		if k.isPossibleTarget(b, t) && !unsafe[t] {
			out = append(out, t)
		}
	}
	return out
}

// Threatens returns the raw one-step neighbourhood filtered by bounds
// only. It deliberately ignores occupancy and king safety: a defended
// square is still threatened, and skipping the safety check here is what
// keeps two adjacent kings from scanning each other forever.
func (k *king) Threatens(b *Board) []Position {
	var out []Position
	for _, d := range royalDirs {
		if t := k.pos.Offset(d); b.IsValidSquare(t) {
			out = append(out, t)
		}
	}
	return out
}
