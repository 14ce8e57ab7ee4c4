package engine

import (
	"testing"

	"github.com/lgbarn/chesscodec-go/internal/chess"
)

const benchGame = "e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5a4 g8f6 e1h1 f8e7 f1e1 b7b5 a4b3 d7d6 c2c3 e8h8"

func BenchmarkApply(b *testing.B) {
	cases := []struct {
		name  string
		setup string
		move  string
	}{
		{"PawnMove", "", "e2e4"},
		{"PieceMove", "", "g1f3"},
		{"Castling", "white ♖a1 ♔e1 ♖h1 ♜a8 ♚e8 ♜h8", "e1h1"},
		{"EnPassant", "a2a4 h7h6 a4a5 b7b5", "a5b6"},
		{"Promotion", "white ♔b6 ♙a7 ♚h6", "a7a8Q"},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			state := mustSetup(b, tc.setup)
			move := mustMove(b, tc.move)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				state.Apply(move)
			}
		})
	}
}

func BenchmarkReplay(b *testing.B) {
	moves, err := chess.ParseMoves(benchGame)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Replay(NewGameState(), moves); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReachableOrigins(b *testing.B) {
	state := mustSetup(b, benchGame)
	board := state.Board()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for target := chess.A1; target <= chess.H8; target++ {
			ReachableOrigins(&board, target, state.Turn(), state.EnPassant())
		}
	}
}

func BenchmarkIsAttacked(b *testing.B) {
	state := mustSetup(b, benchGame)
	board := state.Board()
	king := state.KingSquare(state.Turn())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsAttacked(&board, king)
	}
}

func BenchmarkFEN(b *testing.B) {
	state := mustSetup(b, benchGame)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = state.FEN()
	}
}
