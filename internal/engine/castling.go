package engine

import "github.com/lgbarn/chesscodec-go/internal/chess"

// applyCastle applies a castling move written as the king moving onto its
// own rook. The king ends on the g or c file and the rook next to it on the
// inner side.
func (s *GameState) applyCastle(move chess.Move) Castling {
	side := chess.QueenSide
	if move.To.File() > move.From.File() {
		side = chess.KingSide
	}
	rank := move.From.Rank()
	kingTo, _ := chess.NewSquare(side.KingDestinationFile(), rank)
	rookTo, _ := chess.NewSquare(side.RookDestinationFile(), rank)

	king := s.board.Clear(move.From)
	rook := s.board.Clear(move.To)
	s.board.Set(kingTo, king)
	s.board.Set(rookTo, rook)

	return Castling{
		Side:     side,
		KingMove: FromTo{From: move.From, To: kingTo},
		RookMove: FromTo{From: move.To, To: rookTo},
	}
}
