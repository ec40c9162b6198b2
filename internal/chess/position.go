package chess

// Position identifies a square on the board. Row 0 is White's back rank,
// row BoardRows-1 is Black's. Positions outside the board are representable;
// Board.IsValidSquare decides whether one names a real square.
type Position struct {
	Row int
	Col int
}

// Offset returns the position reached by applying a direction vector.
func (p Position) Offset(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Direction is a relative (row, col) step. A slider interprets it as a ray
// direction, a leaper as a complete relative offset.
type Direction struct {
	DRow int
	DCol int
}

var (
	orthogonalDirs = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	// royalDirs is the king's (and queen's) full one-step neighbourhood.
	royalDirs = append(append([]Direction{}, orthogonalDirs...), diagonalDirs...)

	knightOffsets = leaperOffsets(1, 2)
	camelOffsets  = leaperOffsets(1, 3)
)

// leaperOffsets expands an (a, b) leap into all eight signed permutations.
func leaperOffsets(a, b int) []Direction {
	return []Direction{
		{a, b}, {a, -b}, {-a, b}, {-a, -b},
		{b, a}, {b, -a}, {-b, a}, {-b, -a},
	}
}
