package codec

import (
	"slices"
	"strings"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/engine"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Encode compresses moves played from the standard start.
func Encode(moves []chess.Move) (string, error) {
	var sb strings.Builder
	sb.Grow(2 * len(moves))

	state := engine.NewGameState()
	for i, m := range moves {
		if err := encodeMove(&sb, state, m); err != nil {
			return "", &errors.PlyError{
				Err:      err,
				Ply:      i + 1,
				Colour:   state.Turn().String(),
				MoveText: m.String(),
			}
		}
		state, _ = state.Apply(m)
	}
	return sb.String(), nil
}

// EncodeText parses a long algebraic move list and encodes it.
func EncodeText(text string) (string, error) {
	moves, err := chess.ParseMoves(text)
	if err != nil {
		return "", err
	}
	return Encode(moves)
}

func encodeMove(sb *strings.Builder, state engine.GameState, m chess.Move) error {
	castling, err := state.LooksLikeCastling(m)
	if err != nil {
		return err
	}
	if castling {
		if m.Promotion != chess.NoPiece {
			return errors.Newf(errors.ErrIllegalFormat, "castling %s cannot promote", m)
		}
		sb.WriteByte(SquareChar(m.From))
		sb.WriteByte(SquareChar(m.To))
		return nil
	}

	if err := checkPromotion(state, m); err != nil {
		return err
	}

	origins, err := state.ReachableOrigins(m.To)
	if err != nil {
		return err
	}
	switch {
	case !slices.Contains(origins, m.From):
		return errors.Newf(errors.ErrIllegalMove, "%s cannot reach %s (reachable from %d squares)", m.From, m.To, len(origins))
	case len(origins) == 1:
		sb.WriteByte(SquareChar(m.To))
	default:
		sb.WriteByte(SquareChar(m.From))
		sb.WriteByte(SquareChar(m.To))
	}
	if m.Promotion != chess.NoPiece {
		sb.WriteByte(m.Promotion.Letter())
	}
	return nil
}

// checkPromotion requires a promotion kind exactly on pawn moves to the
// last rank.
func checkPromotion(state engine.GameState, m chess.Move) error {
	needed := state.LooksLikePromotion(m)
	switch {
	case needed && m.Promotion == chess.NoPiece:
		return errors.Newf(errors.ErrIllegalFormat, "%s reaches the last rank without a promotion", m)
	case !needed && m.Promotion != chess.NoPiece:
		return errors.Newf(errors.ErrIllegalFormat, "%s is not a promotion", m)
	}
	return nil
}
