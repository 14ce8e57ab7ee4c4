package chess

import (
	"fmt"
	"strings"
)

// Board is the 64-slot occupancy grid. The occupied-slot count is kept in
// step with the slots by Set and Clear. Board is a value: assigning it copies
// the whole grid.
type Board struct {
	squares [BoardSize * BoardSize]ColouredPiece
	count   int
}

// NewBoard creates an empty board.
func NewBoard() Board {
	return Board{}
}

var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard creates a board holding the standard starting position.
func NewStandardBoard() Board {
	b := NewBoard()
	for file := 0; file < BoardSize; file++ {
		b.Set(squareAt(file, 0), W(backRank[file]))
		b.Set(squareAt(file, 1), W(Pawn))
		b.Set(squareAt(file, 6), B(Pawn))
		b.Set(squareAt(file, 7), B(backRank[file]))
	}
	return b
}

// Get returns the piece on sq; the zero ColouredPiece when the slot is empty.
func (b *Board) Get(sq Square) ColouredPiece {
	return b.squares[sq]
}

// Set places p on sq and returns the previous occupant, with captured
// reporting whether there was one.
func (b *Board) Set(sq Square, p ColouredPiece) (prev ColouredPiece, captured bool) {
	if p.IsEmpty() {
		panic(fmt.Sprintf("board: set of empty piece on %s", sq))
	}
	prev = b.squares[sq]
	if prev.IsEmpty() {
		b.count++
	}
	b.squares[sq] = p
	return prev, !prev.IsEmpty()
}

// Clear empties sq and returns the piece that stood there. Clearing an
// empty slot is a caller bug and panics.
func (b *Board) Clear(sq Square) ColouredPiece {
	prev := b.squares[sq]
	if prev.IsEmpty() {
		panic(fmt.Sprintf("board: clear of empty square %s", sq))
	}
	b.squares[sq] = ColouredPiece{}
	b.count--
	return prev
}

// IsEmpty reports whether no piece stands on sq.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq].IsEmpty()
}

// Contains reports whether sq holds the given kind of the given colour.
func (b *Board) Contains(sq Square, piece Piece, colour Colour) bool {
	return b.squares[sq].Is(piece, colour)
}

// ContainsColour reports whether sq holds any piece of colour.
func (b *Board) ContainsColour(sq Square, colour Colour) bool {
	p := b.squares[sq]
	return !p.IsEmpty() && p.Colour == colour
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	return b.count
}

// Find returns every square holding p, in index order.
func (b *Board) Find(p ColouredPiece) []Square {
	var found []Square
	for sq := A1; sq <= H8; sq++ {
		if b.squares[sq] == p {
			found = append(found, sq)
		}
	}
	return found
}

// AreSquaresBetweenClear walks from from towards to in direction dir and
// reports whether every square strictly between them is empty. A ray that
// leaves the board before reaching to yields false.
func (b *Board) AreSquaresBetweenClear(from Square, dir Direction, to Square) bool {
	sq, ok := from.Step(dir)
	for ok && sq != to {
		if !b.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Step(dir)
	}
	return ok
}

// HasSufficientMaterial reports whether either side could still mate.
// Only lone kings, a king with one minor piece, or a king with two knights
// are insufficient.
func (b *Board) HasSufficientMaterial() bool {
	if b.count > 6 {
		return true
	}

	var bishops, knights [2]int
	for _, p := range b.squares {
		switch p.Piece {
		case Pawn, Rook, Queen:
			return true
		case Bishop:
			bishops[p.Colour]++
		case Knight:
			knights[p.Colour]++
		}
	}

	for _, c := range Colours {
		if bishops[c] > 1 {
			return true
		}
		if bishops[c] > 0 && knights[c] > 0 {
			return true
		}
		if knights[c] > 2 {
			return true
		}
	}
	return false
}

// PiecePlacement returns the piece placement field of FEN.
func (b *Board) PiecePlacement() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < BoardSize; file++ {
			p := b.squares[squareAt(file, rank)]
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String returns a text diagram, rank 8 first, with file and rank labels.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(' ')
			p := b.squares[squareAt(file, rank)]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FENLetter())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
