// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, white first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENChar returns the side-to-move character used in FEN.
func (c Colour) FENChar() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// HomeRank returns the rank index (0-7) of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PromotionRank returns the rank index a pawn of this colour promotes on.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PawnDirection returns the direction in which this colour's pawns advance.
func (c Colour) PawnDirection() Direction {
	if c == White {
		return Up
	}
	return Down
}

// ParseColour accepts "white"/"black" in any case, or the FEN letters w/b.
func ParseColour(text string) (Colour, error) {
	switch text {
	case "w", "W", "white", "White", "WHITE":
		return White, nil
	case "b", "B", "black", "Black", "BLACK":
		return Black, nil
	}
	return Black, fmt.Errorf("unknown colour %q: %w", text, errors.ErrIllegalFormat)
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSlider reports whether the piece moves along rays.
func (p Piece) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// IsPromotionTarget reports whether a pawn may promote to p.
func (p Piece) IsPromotionTarget() bool {
	return p == Knight || p == Bishop || p == Rook || p == Queen
}

// ParsePiece converts an upper or lower case letter to a piece kind.
func ParsePiece(letter byte) (Piece, error) {
	switch unicode.ToUpper(rune(letter)) {
	case 'P':
		return Pawn, nil
	case 'N':
		return Knight, nil
	case 'B':
		return Bishop, nil
	case 'R':
		return Rook, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	}
	return NoPiece, fmt.Errorf("unknown piece letter %q: %w", letter, errors.ErrIllegalFormat)
}

// ParsePromotion converts a promotion letter (Q, R, N or B) to a piece kind.
func ParsePromotion(letter byte) (Piece, error) {
	p, err := ParsePiece(letter)
	if err != nil || !p.IsPromotionTarget() || letter != p.Letter() {
		return NoPiece, fmt.Errorf("unknown promotion %q: %w", letter, errors.ErrIllegalFormat)
	}
	return p, nil
}

// ColouredPiece is a piece kind together with its colour. The zero value
// is an empty square.
type ColouredPiece struct {
	Piece  Piece
	Colour Colour
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return ColouredPiece{Piece: piece, Colour: White}
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return ColouredPiece{Piece: piece, Colour: Black}
}

// IsEmpty reports whether cp denotes no piece at all.
func (cp ColouredPiece) IsEmpty() bool {
	return cp.Piece == NoPiece
}

// Is reports whether cp is the given kind of the given colour.
func (cp ColouredPiece) Is(piece Piece, colour Colour) bool {
	return cp.Piece == piece && cp.Colour == colour && piece != NoPiece
}

// FENLetter returns the FEN letter: uppercase for white, lowercase for black.
func (cp ColouredPiece) FENLetter() byte {
	letter := cp.Piece.Letter()
	if cp.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

var whiteSymbols = []rune{' ', '♙', '♘', '♗', '♖', '♕', '♔'}
var blackSymbols = []rune{' ', '♟', '♞', '♝', '♜', '♛', '♚'}

// Symbol returns the Unicode chess figure for the piece.
func (cp ColouredPiece) Symbol() rune {
	if cp.Piece < 0 || int(cp.Piece) >= len(whiteSymbols) {
		return '?'
	}
	if cp.Colour == White {
		return whiteSymbols[cp.Piece]
	}
	return blackSymbols[cp.Piece]
}

func (cp ColouredPiece) String() string {
	if cp.IsEmpty() {
		return "empty"
	}
	return cp.Colour.String() + " " + cp.Piece.String()
}

// ParseColouredPiece accepts a Unicode figure or a FEN letter.
func ParseColouredPiece(r rune) (ColouredPiece, error) {
	for p := Pawn; p <= King; p++ {
		if whiteSymbols[p] == r {
			return W(p), nil
		}
		if blackSymbols[p] == r {
			return B(p), nil
		}
	}
	if r < unicode.MaxASCII {
		if p, err := ParsePiece(byte(r)); err == nil {
			if unicode.IsUpper(r) {
				return W(p), nil
			}
			return B(p), nil
		}
	}
	return ColouredPiece{}, fmt.Errorf("unknown piece %q: %w", r, errors.ErrIllegalFormat)
}
