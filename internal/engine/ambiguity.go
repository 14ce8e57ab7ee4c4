package engine

import (
	"slices"

	"github.com/lgbarn/chesscodec-go/internal/chess"
)

// Ambiguity tells how much of a move's origin notation has to spell out.
type Ambiguity int

const (
	Unambiguous Ambiguity = iota
	ColumnAmbiguous
	RowAmbiguous
	ColumnAndRowAmbiguous
)

func (a Ambiguity) String() string {
	switch a {
	case Unambiguous:
		return "unambiguous"
	case ColumnAmbiguous:
		return "column"
	case RowAmbiguous:
		return "row"
	case ColumnAndRowAmbiguous:
		return "column and row"
	}
	return "unknown"
}

// ClassifyOrigin reports whether the piece moving in move is the only piece
// of its kind and colour able to reach the destination on the pre-move board.
// King moves and straight pawn pushes are never ambiguous; a diagonal pawn
// move is column ambiguous when a pawn of the same colour on the mirrored
// file could capture onto the same square.
func ClassifyOrigin(board *chess.Board, move chess.Move) Ambiguity {
	mover := board.Get(move.From)

	switch mover.Piece {
	case chess.NoPiece:
		return ColumnAndRowAmbiguous
	case chess.King:
		return Unambiguous
	case chess.Pawn:
		return classifyPawn(board, move, mover.Colour)
	}

	candidates := sameKindOrigins(board, move.To, mover)
	if !slices.Contains(candidates, move.From) {
		candidates = append(candidates, move.From)
	}
	if len(candidates) < 2 {
		return Unambiguous
	}

	files := make(map[int]bool)
	ranks := make(map[int]bool)
	for _, sq := range candidates {
		files[sq.File()] = true
		ranks[sq.Rank()] = true
	}

	switch {
	case len(files) > 1 && len(ranks) > 1:
		return ColumnAndRowAmbiguous
	case len(files) > 1:
		return ColumnAmbiguous
	case len(ranks) > 1:
		return RowAmbiguous
	}
	return Unambiguous
}

// SANOrigin returns the part of the origin square that Standard Algebraic
// Notation spells out for a piece move: nothing when no other piece of the
// same kind and colour reaches the destination, else the file if it is
// unique among them, else the rank if that is unique, else the full square.
// Pawn and king moves yield "".
func SANOrigin(board *chess.Board, move chess.Move) string {
	mover := board.Get(move.From)
	switch mover.Piece {
	case chess.NoPiece, chess.Pawn, chess.King:
		return ""
	}

	others, sameFile, sameRank := 0, false, false
	for _, sq := range sameKindOrigins(board, move.To, mover) {
		if sq == move.From {
			continue
		}
		others++
		sameFile = sameFile || sq.File() == move.From.File()
		sameRank = sameRank || sq.Rank() == move.From.Rank()
	}

	from := move.From.String()
	switch {
	case others == 0:
		return ""
	case !sameFile:
		return from[:1]
	case !sameRank:
		return from[1:]
	}
	return from
}

func classifyPawn(board *chess.Board, move chess.Move, colour chess.Colour) Ambiguity {
	df := move.To.File() - move.From.File()
	if df == 0 {
		return Unambiguous
	}
	mirrored, err := chess.NewSquare(move.From.File()+2*df, move.From.Rank())
	if err == nil && board.Contains(mirrored, chess.Pawn, colour) {
		return ColumnAmbiguous
	}
	return Unambiguous
}

// sameKindOrigins restricts the reachability resolver to one piece kind.
func sameKindOrigins(board *chess.Board, target chess.Square, mover chess.ColouredPiece) []chess.Square {
	var origins []chess.Square

	if mover.Piece == chess.Knight {
		for _, sq := range chess.KnightJumps(target) {
			if board.Contains(sq, chess.Knight, mover.Colour) {
				origins = append(origins, sq)
			}
		}
		return origins
	}

	var dirs []chess.Direction
	if mover.Piece != chess.Bishop {
		dirs = append(dirs, chess.StraightDirections[:]...)
	}
	if mover.Piece != chess.Rook {
		dirs = append(dirs, chess.DiagonalDirections[:]...)
	}
	for _, dir := range dirs {
		if found, ok := FirstPieceAlongRay(board, target, dir, mover.Colour); ok && found.Piece == mover.Piece {
			origins = append(origins, found.Square)
		}
	}
	return origins
}
