// input.go - parsing of user-entered squares and moves
package main

import (
	"strconv"
	"strings"

	"github.com/mboyd/wildebeest/internal/chess"
	"github.com/mboyd/wildebeest/internal/errors"
)

// parseMove parses a line of the form "<from> <to>", e.g. "a2 a5".
func parseMove(line string) (from, to chess.Position, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return from, to, errors.Wrapf(errors.ErrBadMoveSyntax, "%q", line)
	}
	if from, err = parseSquare(fields[0]); err != nil {
		return from, to, err
	}
	to, err = parseSquare(fields[1])
	return from, to, err
}

// parseSquare parses algebraic square notation: a file letter followed by
// a 1-based rank number, e.g. "a2" or "k10".
func parseSquare(s string) (chess.Position, error) {
	if len(s) < 2 {
		return chess.Position{}, errors.Wrapf(errors.ErrBadSquare, "%q", s)
	}
	file := s[0]
	if file < 'a' || file >= 'a'+chess.BoardCols {
		return chess.Position{}, errors.Wrapf(errors.ErrBadSquare, "%q: bad file %q", s, file)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 || rank > chess.BoardRows {
		return chess.Position{}, errors.Wrapf(errors.ErrBadSquare, "%q: bad rank %q", s, s[1:])
	}
	return chess.Position{Row: rank - 1, Col: int(file - 'a')}, nil
}
