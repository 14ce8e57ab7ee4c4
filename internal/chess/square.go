package chess

import (
	"fmt"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// BoardSize is the number of files and of ranks.
const BoardSize = 8

// Square identifies one of the 64 squares: index = rank*8 + file, a1 = 0.
type Square int8

// NoSquare marks the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

// Named squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square at the given file and rank (both 0-7).
func NewSquare(file, rank int) (Square, error) {
	if !onBoard(file, rank) {
		return NoSquare, fmt.Errorf("square (%d, %d) off the board: %w", file, rank, errors.ErrIllegalFormat)
	}
	return squareAt(file, rank), nil
}

// squareAt builds a square without checking its coordinates.
func squareAt(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// ParseSquare parses a square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrIllegalFormat)
	}
	file := int(text[0]) - 'a'
	rank := int(text[1]) - '1'
	if !onBoard(file, rank) {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrIllegalFormat)
	}
	return squareAt(file, rank), nil
}

// File returns the file (column) index 0-7, a = 0.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank (row) index 0-7, rank 1 = 0.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// IsValid reports whether s is on the board.
func (s Square) IsValid() bool {
	return s >= A1 && s <= H8
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// Step returns the neighbouring square in direction d, or false when that
// would leave the board.
func (s Square) Step(d Direction) (Square, bool) {
	return s.offset(d.FileDelta(), d.RankDelta())
}

func (s Square) offset(df, dr int) (Square, bool) {
	file, rank := s.File()+df, s.Rank()+dr
	if !onBoard(file, rank) {
		return NoSquare, false
	}
	return squareAt(file, rank), true
}

// Distance returns the number of king steps between two squares.
func (s Square) Distance(other Square) int {
	return max(s.FileDistance(other), s.RankDistance(other))
}

// FileDistance returns how many files apart two squares are.
func (s Square) FileDistance(other Square) int {
	return abs(s.File() - other.File())
}

// RankDistance returns how many ranks apart two squares are.
func (s Square) RankDistance(other Square) int {
	return abs(s.Rank() - other.Rank())
}

// Direction is one of the eight unit ray vectors.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var directionDeltas = [8][2]int{
	Up:        {0, 1},
	Down:      {0, -1},
	Left:      {-1, 0},
	Right:     {1, 0},
	UpLeft:    {-1, 1},
	UpRight:   {1, 1},
	DownLeft:  {-1, -1},
	DownRight: {1, -1},
}

var directionNames = [8]string{"up", "down", "left", "right", "up-left", "up-right", "down-left", "down-right"}

// StraightDirections are the rook rays.
var StraightDirections = [4]Direction{Up, Down, Left, Right}

// DiagonalDirections are the bishop rays.
var DiagonalDirections = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}

// FileDelta returns the file change of one step.
func (d Direction) FileDelta() int {
	return directionDeltas[d][0]
}

// RankDelta returns the rank change of one step.
func (d Direction) RankDelta() int {
	return directionDeltas[d][1]
}

// IsDiagonal reports whether d changes both file and rank.
func (d Direction) IsDiagonal() bool {
	return d.FileDelta() != 0 && d.RankDelta() != 0
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	df, dr := -d.FileDelta(), -d.RankDelta()
	for i, delta := range directionDeltas {
		if delta[0] == df && delta[1] == dr {
			return Direction(i)
		}
	}
	panic(fmt.Sprintf("no reverse for direction %d", d))
}

func (d Direction) String() string {
	return directionNames[d]
}

// Knight move offsets as (file, rank) pairs.
var knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// KnightJumps returns every on-board square a knight jump away from s.
func KnightJumps(s Square) []Square {
	jumps := make([]Square, 0, len(knightOffsets))
	for _, o := range knightOffsets {
		if to, ok := s.offset(o[0], o[1]); ok {
			jumps = append(jumps, to)
		}
	}
	return jumps
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
