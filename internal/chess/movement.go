package chess

// A mover is one movement strategy attached to a piece. A variant's move
// set is the union of the targets yielded by each of its movers; the
// strategies are evaluated independently so duplicates between them are
// harmless (callers only test membership).
type mover interface {
	targets(b *Board, p *piece) []Position
}

// slide steps outward along each direction one square at a time, yielding
// every reachable square. A capture square is yielded and then ends that
// ray; an off-board or own-colour square ends the ray without being
// yielded. Rays are independent: blocking one never stops the others.
type slide struct {
	dirs []Direction
}

func (s slide) targets(b *Board, p *piece) []Position {
	var out []Position
	for _, d := range s.dirs {
		for t := p.pos.Offset(d); p.isPossibleTarget(b, t); t = t.Offset(d) {
			out = append(out, t)
			if !b.IsEmptySquare(t) {
				break // captured piece blocks further travel
			}
		}
	}
	return out
}

// leap yields the single absolute target for each offset, ignoring
// intervening occupancy entirely.
type leap struct {
	offsets []Direction
}

func (l leap) targets(b *Board, p *piece) []Position {
	var out []Position
	for _, d := range l.offsets {
		if t := p.pos.Offset(d); p.isPossibleTarget(b, t) {
			out = append(out, t)
		}
	}
	return out
}
