package engine

import (
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/chesscodec-go/internal/chess"
)

// mustSetup parses setup text or fails the test.
func mustSetup(t testing.TB, text string) GameState {
	t.Helper()
	state, err := ParseSetup(text)
	if err != nil {
		t.Fatalf("ParseSetup(%q) failed: %v", text, err)
	}
	return state
}

func mustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) failed: %v", text, err)
	}
	return m
}

func mustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", text, err)
	}
	return sq
}

// squareNames renders squares sorted and comma separated for comparison.
func squareNames(squares []chess.Square) string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
