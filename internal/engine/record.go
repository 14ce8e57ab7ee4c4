package engine

import "github.com/lgbarn/chesscodec-go/internal/chess"

// MoveShape is the closed set of move kinds: Normal, Promotion, EnPassant
// and Castling.
type MoveShape interface {
	isMoveShape()
}

// FromTo is one piece relocation.
type FromTo struct {
	From chess.Square
	To   chess.Square
}

// Normal is any move without side effects on other squares.
type Normal struct{}

// Promotion is a pawn reaching the last rank and turning into To.
type Promotion struct {
	To chess.Piece
}

// EnPassant is a pawn capture that removed the pawn standing on CapturedOn.
type EnPassant struct {
	CapturedOn chess.Square
}

// Castling records where king and rook actually went, which differs from
// the king-onto-rook input move.
type Castling struct {
	Side     chess.CastlingSide
	KingMove FromTo
	RookMove FromTo
}

func (Normal) isMoveShape()    {}
func (Promotion) isMoveShape() {}
func (EnPassant) isMoveShape() {}
func (Castling) isMoveShape()  {}

// MoveRecord describes one applied move.
type MoveRecord struct {
	Move      chess.Move
	Piece     chess.Piece // kind that moved
	Captured  chess.Piece // NoPiece when nothing was taken
	Shape     MoveShape
	Ambiguity Ambiguity // against the pre-move board
	SANOrigin string    // origin text SAN needs, see SANOrigin
	Check     bool      // the side now to move is in check
}

// IsCapture reports whether the move took a piece.
func (r MoveRecord) IsCapture() bool {
	return r.Captured != chess.NoPiece
}

// IsCastling reports whether the move was a castling.
func (r MoveRecord) IsCastling() bool {
	_, ok := r.Shape.(Castling)
	return ok
}
