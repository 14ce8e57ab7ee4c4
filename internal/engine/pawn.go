package engine

import "github.com/lgbarn/chesscodec-go/internal/chess"

// applyPawnMove applies a pawn move: promotion, double step, en-passant
// capture or plain step. enPassant is the target square before the move.
func (s *GameState) applyPawnMove(move chess.Move, enPassant chess.Square) (chess.Piece, MoveShape) {
	pawn := s.board.Clear(move.From)

	switch {
	case move.Promotion != chess.NoPiece:
		prev, _ := s.board.Set(move.To, chess.ColouredPiece{Piece: move.Promotion, Colour: pawn.Colour})
		return prev.Piece, Promotion{To: move.Promotion}

	case move.From.RankDistance(move.To) == 2:
		s.board.Set(move.To, pawn)
		s.enPassant, _ = move.From.Step(pawn.Colour.PawnDirection())
		return chess.NoPiece, Normal{}

	case move.To == enPassant && move.To.File() != move.From.File():
		// The captured pawn stands beside the origin, behind the destination.
		capturedOn, _ := chess.NewSquare(move.To.File(), move.From.Rank())
		captured := s.board.Clear(capturedOn)
		s.board.Set(move.To, pawn)
		return captured.Piece, EnPassant{CapturedOn: capturedOn}
	}

	prev, _ := s.board.Set(move.To, pawn)
	return prev.Piece, Normal{}
}
