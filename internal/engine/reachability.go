// Package engine implements the chess rules core: reachability, check
// detection, notation ambiguity and the immutable game state with its
// Apply transition.
package engine

import "github.com/lgbarn/chesscodec-go/internal/chess"

// Found is a piece kind discovered on a square by a ray walk.
type Found struct {
	Piece  chess.Piece
	Square chess.Square
}

// FirstPieceAlongRay walks from start (exclusive) in direction dir and
// returns the first occupied square. The result is reported only when that
// piece belongs to colour; a piece of the other colour, or running off the
// board, yields false. Rays never see through pieces.
func FirstPieceAlongRay(board *chess.Board, start chess.Square, dir chess.Direction, colour chess.Colour) (Found, bool) {
	sq, ok := start.Step(dir)
	for ok {
		if p := board.Get(sq); !p.IsEmpty() {
			if p.Colour != colour {
				return Found{}, false
			}
			return Found{Piece: p.Piece, Square: sq}, true
		}
		sq, ok = sq.Step(dir)
	}
	return Found{}, false
}

// ReachableOrigins returns every square holding a piece of colour whose raw
// movement geometry reaches target: sliders along open rays, a king one step
// away, knights a jump away and pawns by push, double push, capture or en
// passant. Pins are ignored. Pass chess.NoSquare when there is no en-passant
// target.
func ReachableOrigins(board *chess.Board, target chess.Square, colour chess.Colour, enPassant chess.Square) []chess.Square {
	var origins []chess.Square

	origins = appendRayOrigins(origins, board, target, colour, chess.StraightDirections[:], chess.Rook)
	origins = appendRayOrigins(origins, board, target, colour, chess.DiagonalDirections[:], chess.Bishop)

	for _, sq := range chess.KnightJumps(target) {
		if board.Contains(sq, chess.Knight, colour) {
			origins = append(origins, sq)
		}
	}

	return appendPawnOrigins(origins, board, target, colour, enPassant)
}

// appendRayOrigins collects sliders of kind slider (or queens) and an
// adjacent king along each of dirs.
func appendRayOrigins(origins []chess.Square, board *chess.Board, target chess.Square, colour chess.Colour, dirs []chess.Direction, slider chess.Piece) []chess.Square {
	for _, dir := range dirs {
		found, ok := FirstPieceAlongRay(board, target, dir, colour)
		if !ok {
			continue
		}
		switch found.Piece {
		case slider, chess.Queen:
			origins = append(origins, found.Square)
		case chess.King:
			if found.Square.Distance(target) == 1 {
				origins = append(origins, found.Square)
			}
		}
	}
	return origins
}

func appendPawnOrigins(origins []chess.Square, board *chess.Board, target chess.Square, colour chess.Colour, enPassant chess.Square) []chess.Square {
	// A pawn can never arrive on its own first two ranks.
	if colour == chess.White && target.Rank() < 2 || colour == chess.Black && target.Rank() > 5 {
		return origins
	}

	back := colour.PawnDirection().Reverse()

	if board.IsEmpty(target) {
		behind, _ := target.Step(back)
		switch {
		case board.Contains(behind, chess.Pawn, colour):
			origins = append(origins, behind)
		case board.IsEmpty(behind) && target.Rank() == doubleStepRank(colour):
			if start, _ := behind.Step(back); board.Contains(start, chess.Pawn, colour) {
				origins = append(origins, start)
			}
		}
	}

	if board.ContainsColour(target, colour.Opposite()) || target == enPassant {
		for _, side := range []chess.Direction{chess.Left, chess.Right} {
			sq, ok := target.Step(back)
			if ok {
				sq, ok = sq.Step(side)
			}
			if ok && board.Contains(sq, chess.Pawn, colour) {
				origins = append(origins, sq)
			}
		}
	}
	return origins
}

// doubleStepRank is the rank index a pawn lands on after a double step.
func doubleStepRank(colour chess.Colour) int {
	if colour == chess.White {
		return 3
	}
	return 4
}
