// Package san imports games written in Standard Algebraic Notation. Move
// text is replayed through github.com/notnil/chess, which knows full move
// legality, and converted to long algebraic moves with castling written as
// the king stepping onto its rook.
package san

import (
	"fmt"
	"regexp"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

var (
	commentPattern    = regexp.MustCompile(`\{[^}]*\}|;[^\n]*`)
	moveNumberPattern = regexp.MustCompile(`^\d+\.+`)
)

var promotionKinds = map[notnil.PieceType]chess.Piece{
	notnil.Queen:  chess.Queen,
	notnil.Rook:   chess.Rook,
	notnil.Bishop: chess.Bishop,
	notnil.Knight: chess.Knight,
}

// Parse replays SAN movetext such as "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. O-O"
// from the standard start. Move numbers, comments, NAGs and a trailing
// result are ignored.
func Parse(text string) ([]chess.Move, error) {
	game := notnil.NewGame()
	for ply, token := range Tokens(text) {
		if err := game.MoveStr(token); err != nil {
			colour := "White"
			if ply%2 == 1 {
				colour = "Black"
			}
			return nil, &errors.PlyError{
				Err:      fmt.Errorf("%v: %w", err, errors.ErrIllegalMove),
				Ply:      ply + 1,
				Colour:   colour,
				MoveText: token,
			}
		}
	}

	played := game.Moves()
	moves := make([]chess.Move, len(played))
	for i, m := range played {
		moves[i] = FromMove(m)
	}
	return moves, nil
}

// Tokens splits movetext into bare SAN moves.
func Tokens(text string) []string {
	text = commentPattern.ReplaceAllString(text, " ")

	var tokens []string
	for _, field := range strings.Fields(text) {
		field = moveNumberPattern.ReplaceAllString(field, "")
		if field == "" || isResult(field) || strings.HasPrefix(field, "$") {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func isResult(token string) bool {
	switch token {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// FromMove converts a notnil/chess move. The two libraries number squares
// the same way (a1 = 0, h8 = 63).
func FromMove(m *notnil.Move) chess.Move {
	move := chess.NewMove(chess.Square(m.S1()), chess.Square(m.S2()))
	switch {
	case m.HasTag(notnil.KingSideCastle):
		move.To, _ = chess.NewSquare(chess.KingSide.RookFile(), move.From.Rank())
	case m.HasTag(notnil.QueenSideCastle):
		move.To, _ = chess.NewSquare(chess.QueenSide.RookFile(), move.From.Rank())
	}
	move.Promotion = promotionKinds[m.Promo()]
	return move
}
