package engine

import (
	"fmt"

	"github.com/lgbarn/chesscodec-go/internal/chess"
)

// IsAttacked returns true if the king standing on kingSquare is attacked by
// an enemy rook, bishop, queen, knight or pawn. The square must hold a king.
func IsAttacked(board *chess.Board, kingSquare chess.Square) bool {
	king := board.Get(kingSquare)
	if king.Piece != chess.King {
		panic(fmt.Sprintf("engine: IsAttacked on %s which holds %v", kingSquare, king))
	}
	attacker := king.Colour.Opposite()

	// Check sliding pieces along straight lines
	for _, dir := range chess.StraightDirections {
		if found, ok := FirstPieceAlongRay(board, kingSquare, dir, attacker); ok {
			if found.Piece == chess.Rook || found.Piece == chess.Queen {
				return true
			}
		}
	}

	// Check sliding pieces along diagonals
	for _, dir := range chess.DiagonalDirections {
		if found, ok := FirstPieceAlongRay(board, kingSquare, dir, attacker); ok {
			if found.Piece == chess.Bishop || found.Piece == chess.Queen {
				return true
			}
		}
	}

	// Check knight attacks
	for _, sq := range chess.KnightJumps(kingSquare) {
		if board.Contains(sq, chess.Knight, attacker) {
			return true
		}
	}

	// Check pawn attacks: enemy pawns sit one rank ahead of the king.
	ahead, ok := kingSquare.Step(king.Colour.PawnDirection())
	if !ok {
		return false
	}
	for _, side := range []chess.Direction{chess.Left, chess.Right} {
		if sq, ok := ahead.Step(side); ok && board.Contains(sq, chess.Pawn, attacker) {
			return true
		}
	}
	return false
}
