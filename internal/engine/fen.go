package engine

import (
	"strconv"
	"strings"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN returns the position as a FEN string: placement, side to move,
// castling, en-passant target, half-move clock and full-move number.
func (s GameState) FEN() string {
	var sb strings.Builder

	sb.WriteString(s.board.PiecePlacement())
	sb.WriteByte(' ')
	sb.WriteByte(s.turn.FENChar())
	sb.WriteByte(' ')
	sb.WriteString(s.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(s.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.pliesWithoutProgress))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.FullMoveNumber()))

	return sb.String()
}
