package chess

import (
	"testing"

	"github.com/mboyd/wildebeest/internal/testutil"
)

func TestPawnInitialMoves(t *testing.T) {
	// On a freshly reset board a pawn may advance one, two, or three
	// squares; both diagonal targets are empty, so no captures appear.
	b := NewBoard()
	b.Reset()

	t.Run("white pawn advances towards higher rows", func(t *testing.T) {
		p := b.GetSquare(Position{Row: 1, Col: 0})
		want := []Position{{2, 0}, {3, 0}, {4, 0}}
		testutil.AssertEqual(t, sortPositions(p.ValidMoves(b)), want)
	})

	t.Run("black pawn advances towards lower rows", func(t *testing.T) {
		p := b.GetSquare(Position{Row: 8, Col: 4})
		want := []Position{{5, 4}, {6, 4}, {7, 4}}
		testutil.AssertEqual(t, sortPositions(p.ValidMoves(b)), want)
	})
}

func TestPawnLongStepsOnlyBeforeFirstMove(t *testing.T) {
	b := NewBoard()
	b.Reset()

	testutil.AssertNoError(t, b.Move(Position{1, 0}, Position{3, 0}))

	p := b.GetSquare(Position{Row: 3, Col: 0})
	if !p.HasMoved() {
		t.Fatal("HasMoved() = false after a move; want true")
	}
	want := []Position{{4, 0}}
	testutil.AssertEqual(t, sortPositions(p.ValidMoves(b)), want,
		"a moved pawn keeps only the single step")
}

func TestPawnBlockedAdvances(t *testing.T) {
	tests := []struct {
		name    string
		blocker Position
		colour  Colour
		want    []Position
	}{
		{"blocked immediately", Position{4, 3}, Black, nil},
		{"blocked immediately by own colour", Position{4, 3}, White, nil},
		{"blocked at the double step", Position{5, 3}, Black, []Position{{4, 3}}},
		{"blocked at the triple step", Position{6, 3}, White, []Position{{4, 3}, {5, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			p := NewPawn(White, Position{Row: 3, Col: 3})
			b.Place(p)
			b.Place(NewRook(tt.colour, tt.blocker))
			testutil.AssertEqual(t, sortPositions(p.ValidMoves(b)), tt.want)
		})
	}
}

func TestPawnCaptureExclusivity(t *testing.T) {
	t.Run("diagonals only onto enemies", func(t *testing.T) {
		b := NewBoard()
		p := NewPawn(White, Position{Row: 3, Col: 3})
		b.Place(p)
		b.Place(NewKnight(Black, Position{Row: 4, Col: 2})) // capturable
		b.Place(NewKnight(White, Position{Row: 4, Col: 4})) // own piece

		moves := p.ValidMoves(b)
		if !containsPosition(moves, Position{4, 2}) {
			t.Error("ValidMoves missing the enemy diagonal")
		}
		if containsPosition(moves, Position{4, 4}) {
			t.Error("ValidMoves contains the own-colour diagonal")
		}
	})

	t.Run("never captures straight ahead", func(t *testing.T) {
		b := NewBoard()
		p := NewPawn(White, Position{Row: 3, Col: 3})
		b.Place(p)
		b.Place(NewKnight(Black, Position{Row: 4, Col: 3}))

		if moves := p.ValidMoves(b); containsPosition(moves, Position{4, 3}) {
			t.Error("ValidMoves contains an occupied forward square")
		}
	})

	t.Run("never moves diagonally onto an empty square", func(t *testing.T) {
		b := NewBoard()
		p := NewPawn(White, Position{Row: 3, Col: 3})
		b.Place(p)

		moves := p.ValidMoves(b)
		for _, never := range []Position{{4, 2}, {4, 4}} {
			if containsPosition(moves, never) {
				t.Errorf("ValidMoves contains empty diagonal %v", never)
			}
		}
	})
}

func TestPawnThreatens(t *testing.T) {
	t.Run("both diagonals regardless of occupancy", func(t *testing.T) {
		b := NewBoard()
		p := NewPawn(White, Position{Row: 3, Col: 3})
		b.Place(p)
		want := []Position{{4, 2}, {4, 4}}
		testutil.AssertEqual(t, sortPositions(p.Threatens(b)), want)
	})

	t.Run("edge pawn threatens a single square", func(t *testing.T) {
		b := NewBoard()
		p := NewPawn(Black, Position{Row: 5, Col: 0})
		b.Place(p)
		want := []Position{{4, 1}}
		testutil.AssertEqual(t, sortPositions(p.Threatens(b)), want)
	})

	t.Run("forward squares are never threatened", func(t *testing.T) {
		b := NewBoard()
		b.Reset()
		p := b.GetSquare(Position{Row: 1, Col: 5})
		if threats := p.Threatens(b); containsPosition(threats, Position{2, 5}) {
			t.Error("Threatens contains the straight-forward square")
		}
	})
}
