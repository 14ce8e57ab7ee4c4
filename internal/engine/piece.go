package engine

import "github.com/lgbarn/chesscodec-go/internal/chess"

// applyPieceMove relocates a non-pawn piece and returns the captured kind.
func (s *GameState) applyPieceMove(move chess.Move) chess.Piece {
	piece := s.board.Clear(move.From)
	prev, _ := s.board.Set(move.To, piece)
	return prev.Piece
}
