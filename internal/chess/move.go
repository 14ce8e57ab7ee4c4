package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Move is a move in long algebraic form: origin, destination and the
// piece a pawn promotes to (NoPiece otherwise).
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// ParseMove parses long algebraic move text such as "e2e4" or "a7a8Q".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: want 4 or 5 characters: %w", text, errors.ErrIllegalFormat)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	m := NewMove(from, to)
	if len(text) == 5 {
		if m.Promotion, err = ParsePromotion(text[4]); err != nil {
			return Move{}, errors.Wrapf(err, "move %q", text)
		}
	}
	return m, nil
}

// ParseMoves parses a whitespace separated list of moves.
func ParseMoves(text string) ([]Move, error) {
	fields := strings.Fields(text)
	moves := make([]Move, 0, len(fields))
	for _, field := range fields {
		m, err := ParseMove(field)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// String returns the long algebraic text of the move.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter())
	}
	return s
}

// FormatMoves joins moves with single spaces.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
