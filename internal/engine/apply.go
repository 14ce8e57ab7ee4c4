package engine

import (
	"fmt"

	"github.com/lgbarn/chesscodec-go/internal/chess"
)

// Apply plays move and returns the resulting state with a record of what
// happened. The receiver is left untouched. The origin square must hold a
// piece, the destination must not hold a king and the cached king squares
// must match the board; anything else is a caller bug and panics. No further
// legality checks are made.
func (s GameState) Apply(move chess.Move) (GameState, MoveRecord) {
	mover := s.board.Get(move.From)
	if mover.IsEmpty() {
		panic(fmt.Sprintf("engine: apply %s from empty square", move))
	}
	for _, c := range chess.Colours {
		if !s.board.Contains(s.kings[c], chess.King, c) {
			panic(fmt.Sprintf("engine: %s king cached on %s is not on the board", c, s.kings[c]))
		}
		if move.To == s.kings[c] {
			panic(fmt.Sprintf("engine: apply %s onto the %s king", move, c))
		}
	}

	record := MoveRecord{
		Move:      move,
		Piece:     mover.Piece,
		Ambiguity: ClassifyOrigin(&s.board, move),
		SANOrigin: SANOrigin(&s.board, move),
	}

	next := s
	next.enPassant = chess.NoSquare
	next.updateCastlingRights(move, mover)

	switch mover.Piece {
	case chess.King:
		if s.board.Contains(move.To, chess.Rook, mover.Colour) {
			castle := next.applyCastle(move)
			next.kings[mover.Colour] = castle.KingMove.To
			record.Shape = castle
		} else {
			record.Captured = next.applyPieceMove(move)
			next.kings[mover.Colour] = move.To
			record.Shape = Normal{}
		}

	case chess.Pawn:
		record.Captured, record.Shape = next.applyPawnMove(move, s.enPassant)

	default:
		record.Captured = next.applyPieceMove(move)
		record.Shape = Normal{}
	}

	next.plies++
	if mover.Piece == chess.Pawn || record.IsCapture() {
		next.pliesWithoutProgress = 0
	} else {
		next.pliesWithoutProgress++
	}
	next.turn = s.turn.Opposite()
	record.Check = IsAttacked(&next.board, next.kings[next.turn])

	return next, record
}

// updateCastlingRights closes the latches a move touches: a rook's home
// square used as origin or destination, or any king move.
func (s *GameState) updateCastlingRights(move chess.Move, mover chess.ColouredPiece) {
	for _, c := range chess.Colours {
		for _, side := range chess.CastlingSides {
			home := side.RookHome(c)
			if move.From == home || move.To == home {
				s.castling.Disallow(c, side)
			}
		}
	}
	if mover.Piece == chess.King {
		s.castling.DisallowAll(mover.Colour)
	}
}
