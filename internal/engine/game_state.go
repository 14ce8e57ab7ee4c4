package engine

import (
	"fmt"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// GameState is an immutable position together with everything needed to
// continue the game: side to move, castling latches, en-passant target,
// cached king squares and ply counters. Apply returns a new GameState and
// never modifies its receiver.
type GameState struct {
	board                chess.Board
	turn                 chess.Colour
	castling             chess.CastlingRights
	enPassant            chess.Square
	kings                [2]chess.Square // indexed by chess.Colour
	plies                int
	pliesWithoutProgress int
}

// NewGameState returns the standard starting position.
func NewGameState() GameState {
	return GameState{
		board:     chess.NewStandardBoard(),
		turn:      chess.White,
		enPassant: chess.NoSquare,
		kings:     [2]chess.Square{chess.Black: chess.E8, chess.White: chess.E1},
	}
}

// Board returns a copy of the board.
func (s GameState) Board() chess.Board {
	return s.board
}

// Turn returns the side to move.
func (s GameState) Turn() chess.Colour {
	return s.turn
}

// EnPassant returns the en-passant target square, or chess.NoSquare.
func (s GameState) EnPassant() chess.Square {
	return s.enPassant
}

// KingSquare returns the cached square of colour's king.
func (s GameState) KingSquare(colour chess.Colour) chess.Square {
	return s.kings[colour]
}

// CastlingRights returns a copy of the castling latches.
func (s GameState) CastlingRights() chess.CastlingRights {
	return s.castling
}

// PliesPlayed returns the number of half-moves since the game began.
func (s GameState) PliesPlayed() int {
	return s.plies
}

// PliesWithoutProgress returns the half-moves since the last pawn move or
// capture.
func (s GameState) PliesWithoutProgress() int {
	return s.pliesWithoutProgress
}

// FullMoveNumber returns the FEN full-move number.
func (s GameState) FullMoveNumber() int {
	return s.plies/2 + 1
}

// IsCheck reports whether the side to move is in check.
func (s GameState) IsCheck() bool {
	return IsAttacked(&s.board, s.kings[s.turn])
}

// ReachableOrigins returns the squares from which a piece of the side to
// move reaches target. A target holding a piece of the side to move, or a
// king of either colour, can never be a destination and is an
// ErrIllegalMove.
func (s GameState) ReachableOrigins(target chess.Square) ([]chess.Square, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("target %s: %w", target, errors.ErrIllegalFormat)
	}
	p := s.board.Get(target)
	if !p.IsEmpty() && (p.Colour == s.turn || p.Piece == chess.King) {
		return nil, errors.Newf(errors.ErrIllegalMove, "%s on %s cannot be a destination for %s", p, target, s.turn)
	}
	return ReachableOrigins(&s.board, target, s.turn, s.enPassant), nil
}

// LooksLikeCastling reports whether move is a king of the side to move
// stepping onto its own rook. A king moving two or more files along its home
// rank onto anything else is an ErrIllegalFormat: castling is written as
// king takes own rook.
func (s GameState) LooksLikeCastling(move chess.Move) (bool, error) {
	if !s.board.Contains(move.From, chess.King, s.turn) {
		return false, nil
	}
	if s.board.Contains(move.To, chess.Rook, s.turn) {
		return true, nil
	}
	home := s.turn.HomeRank()
	if move.From.Rank() == home && move.To.Rank() == home && move.From.FileDistance(move.To) > 1 {
		return false, errors.Newf(errors.ErrIllegalFormat, "king move %s must name the castling rook's square", move)
	}
	return false, nil
}

// LooksLikePromotion reports whether move takes a pawn of the side to move
// to its last rank.
func (s GameState) LooksLikePromotion(move chess.Move) bool {
	return s.board.Contains(move.From, chess.Pawn, s.turn) && move.To.Rank() == s.turn.PromotionRank()
}

// VerifyKingSquares compares the cached king squares against the board.
func (s GameState) VerifyKingSquares() error {
	for _, c := range chess.Colours {
		found := s.board.Find(chess.ColouredPiece{Piece: chess.King, Colour: c})
		if len(found) != 1 {
			return errors.Newf(errors.ErrIllegalConfig, "%d %s kings on the board", len(found), c)
		}
		if found[0] != s.kings[c] {
			return errors.Newf(errors.ErrIllegalConfig, "%s king cached on %s but stands on %s", c, s.kings[c], found[0])
		}
	}
	return nil
}
