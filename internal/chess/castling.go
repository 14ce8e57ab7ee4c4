package chess

import "strings"

// Latch is a flag that starts allowed and can only ever be disallowed.
// The zero value is allowed.
type Latch struct {
	disallowed bool
}

// Disallow closes the latch for good.
func (l *Latch) Disallow() {
	l.disallowed = true
}

// IsAllowed reports whether the latch is still open.
func (l Latch) IsAllowed() bool {
	return !l.disallowed
}

// CastlingSide is the wing a king castles towards.
type CastlingSide int

const (
	KingSide CastlingSide = iota
	QueenSide
)

// CastlingSides lists both sides in FEN order.
var CastlingSides = [2]CastlingSide{KingSide, QueenSide}

func (cs CastlingSide) String() string {
	if cs == KingSide {
		return "king-side"
	}
	return "queen-side"
}

// RookFile returns the file the castling rook starts on.
func (cs CastlingSide) RookFile() int {
	if cs == KingSide {
		return BoardSize - 1
	}
	return 0
}

// KingDestinationFile returns the file the king lands on.
func (cs CastlingSide) KingDestinationFile() int {
	if cs == KingSide {
		return 6
	}
	return 2
}

// RookDestinationFile returns the file the rook lands on.
func (cs CastlingSide) RookDestinationFile() int {
	if cs == KingSide {
		return 5
	}
	return 3
}

// RookHome returns the starting square of the castling rook.
func (cs CastlingSide) RookHome(colour Colour) Square {
	return squareAt(cs.RookFile(), colour.HomeRank())
}

// KingHome returns the starting square of a colour's king.
func KingHome(colour Colour) Square {
	return squareAt(4, colour.HomeRank())
}

// CastlingRights holds the four castling latches.
type CastlingRights struct {
	latches [2][2]Latch // [Colour][CastlingSide]
}

// NoCastlingRights returns rights with every latch already disallowed.
func NoCastlingRights() CastlingRights {
	var cr CastlingRights
	for _, c := range Colours {
		cr.DisallowAll(c)
	}
	return cr
}

// IsAllowed reports whether colour may still castle on side.
func (cr CastlingRights) IsAllowed(colour Colour, side CastlingSide) bool {
	return cr.latches[colour][side].IsAllowed()
}

// Disallow closes one latch.
func (cr *CastlingRights) Disallow(colour Colour, side CastlingSide) {
	cr.latches[colour][side].Disallow()
}

// DisallowAll closes both latches of a colour.
func (cr *CastlingRights) DisallowAll(colour Colour) {
	for _, side := range CastlingSides {
		cr.Disallow(colour, side)
	}
}

// String returns the FEN castling field, "-" when nothing is allowed.
func (cr CastlingRights) String() string {
	var sb strings.Builder
	for _, c := range Colours {
		for _, side := range CastlingSides {
			if !cr.IsAllowed(c, side) {
				continue
			}
			piece := King
			if side == QueenSide {
				piece = Queen
			}
			sb.WriteByte(ColouredPiece{Piece: piece, Colour: c}.FENLetter())
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
