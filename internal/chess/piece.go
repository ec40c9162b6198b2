package chess

// Kind identifies a piece variant.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	Camel
	Wildebeest
	Unicorn
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King",
		"Camel", "Wildebeest", "Unicorn"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K', 'C', 'W', 'U'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the contract shared by every piece variant. All queries are
// pure functions of the board passed in: results are built fresh per call
// and never cached across board mutations.
//
// The interface carries unexported methods, so implementations live in
// this package; callers obtain pieces from the New* constructors or from
// board queries.
type Piece interface {
	Kind() Kind
	Colour() Colour
	Position() Position
	HasMoved() bool

	// ValidMoves returns the variant's legal destinations given current
	// occupancy. For the king this already excludes enemy-threatened
	// squares.
	ValidMoves(b *Board) []Position

	// Threatens returns the squares this piece attacks, for king-safety
	// scanning. For most variants it equals ValidMoves; pawns threaten
	// only their forward diagonals, and kings report their raw one-step
	// neighbourhood without recursing into a safety check.
	Threatens(b *Board) []Position

	String() string

	// isPossibleTarget is the baseline reachability test: in bounds, and
	// empty or enemy-occupied. Stricter per-variant rules are enforced by
	// ValidMoves, not here.
	isPossibleTarget(b *Board, target Position) bool

	// relocate updates the stored position and sets the moved flag.
	// Only Board.Move calls it, after full validation.
	relocate(to Position)
}

// piece is the shared state and behaviour of every variant. The generic
// variants (everything but pawn and king) are plain piece values carrying
// their movement composition as a mover set.
type piece struct {
	kind   Kind
	colour Colour
	pos    Position
	moved  bool
	movers []mover
}

func (p *piece) Kind() Kind         { return p.kind }
func (p *piece) Colour() Colour     { return p.colour }
func (p *piece) Position() Position { return p.pos }
func (p *piece) HasMoved() bool     { return p.moved }

func (p *piece) String() string {
	return p.colour.String() + " " + p.kind.String()
}

func (p *piece) isPossibleTarget(b *Board, target Position) bool {
	if !b.IsValidSquare(target) {
		return false
	}
	occ := b.GetSquare(target)
	return occ == nil || occ.Colour() != p.colour
}

func (p *piece) ValidMoves(b *Board) []Position {
	var out []Position
	for _, m := range p.movers {
		out = append(out, m.targets(b, p)...)
	}
	return out
}

func (p *piece) Threatens(b *Board) []Position {
	return p.ValidMoves(b)
}

func (p *piece) relocate(to Position) {
	p.pos = to
	p.moved = true
}

// NewBishop returns a bishop: diagonal sliding.
func NewBishop(colour Colour, pos Position) Piece {
	return &piece{kind: Bishop, colour: colour, pos: pos,
		movers: []mover{slide{diagonalDirs}}}
}

// NewRook returns a rook: orthogonal sliding.
func NewRook(colour Colour, pos Position) Piece {
	return &piece{kind: Rook, colour: colour, pos: pos,
		movers: []mover{slide{orthogonalDirs}}}
}

// NewQueen returns a queen: sliding in all eight directions.
func NewQueen(colour Colour, pos Position) Piece {
	return &piece{kind: Queen, colour: colour, pos: pos,
		movers: []mover{slide{royalDirs}}}
}

// NewKnight returns a knight: the (1,2) leap.
func NewKnight(colour Colour, pos Position) Piece {
	return &piece{kind: Knight, colour: colour, pos: pos,
		movers: []mover{leap{knightOffsets}}}
}

// NewCamel returns a camel: the (1,3) leap.
func NewCamel(colour Colour, pos Position) Piece {
	return &piece{kind: Camel, colour: colour, pos: pos,
		movers: []mover{leap{camelOffsets}}}
}

// NewWildebeest returns a wildebeest: the union of the knight and camel
// leaps.
func NewWildebeest(colour Colour, pos Position) Piece {
	return &piece{kind: Wildebeest, colour: colour, pos: pos,
		movers: []mover{leap{knightOffsets}, leap{camelOffsets}}}
}

// NewUnicorn returns a unicorn: the knight leap plus sliding repeatedly
// along the same (1,2) vectors.
func NewUnicorn(colour Colour, pos Position) Piece {
	return &piece{kind: Unicorn, colour: colour, pos: pos,
		movers: []mover{leap{knightOffsets}, slide{knightOffsets}}}
}
