package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/engine"
)

// MustParseMoves parses a whitespace separated long algebraic move list.
// It calls t.Fatal if any token is malformed.
func MustParseMoves(t testing.TB, text string) []chess.Move {
	t.Helper()
	moves, err := chess.ParseMoves(text)
	if err != nil {
		t.Fatalf("failed to parse moves %q: %v", text, err)
	}
	return moves
}

// MustSetup builds a game state from setup text (see engine.ParseSetup).
// It calls t.Fatal if the setup is rejected.
func MustSetup(t testing.TB, text string) engine.GameState {
	t.Helper()
	state, err := engine.ParseSetup(text)
	if err != nil {
		t.Fatalf("failed to set up %q: %v", text, err)
	}
	return state
}

// MustReplay replays a move list from the standard start and returns the
// final state with one record per move.
func MustReplay(t testing.TB, text string) (engine.GameState, []engine.MoveRecord) {
	t.Helper()
	state, records, err := engine.ReplayMoves(text)
	if err != nil {
		t.Fatalf("failed to replay %q: %v", text, err)
	}
	return state, records
}

// MustSquare parses a square name and calls t.Fatal on failure.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// MustSquares parses a comma or space separated square list.
func MustSquares(t testing.TB, list string) []chess.Square {
	t.Helper()
	var squares []chess.Square
	for _, name := range strings.FieldsFunc(list, isListSeparator) {
		squares = append(squares, MustSquare(t, name))
	}
	return squares
}

func isListSeparator(r rune) bool {
	return r == ',' || r == ' '
}
