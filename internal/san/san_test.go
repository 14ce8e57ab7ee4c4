package san

import (
	"testing"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	chesserrors "github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		san  string
		want string
	}{
		{"empty", "", ""},
		{"bare moves", "e4 e5 Nf3", "e2e4 e7e5 g1f3"},
		{"move numbers", "1. e4 e5 2. Nf3 Nc6", "e2e4 e7e5 g1f3 b8c6"},
		{"black continuation", "1. e4 1... e5", "e2e4 e7e5"},
		{"castling king side", "1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O Nf6 5. d3 O-O", "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5 e1h1 g8f6 d2d3 e8h8"},
		{"castling queen side", "1. d4 d5 2. Nc3 Nc6 3. Bf4 Bf5 4. Qd2 Qd7 5. O-O-O O-O-O", "d2d4 d7d5 b1c3 b8c6 c1f4 c8f5 d1d2 d8d7 e1a1 e8a8"},
		{"en passant", "1. e4 a6 2. e5 d5 3. exd6", "e2e4 a7a6 e4e5 d7d5 e5d6"},
		{"promotion", "1. a4 b5 2. axb5 a6 3. bxa6 Bb7 4. a7 Bc6 5. axb8=N", "a2a4 b7b5 a4b5 a7a6 b5a6 c8b7 a6a7 b7c6 a7b8N"},
		{"checks and comments", "1. e4 {best by test} f5 2. Qh5+ g6 $1 3. Qxg6+ 1-0", "e2e4 f7f5 d1h5 g7g6 h5g6"},
		{"disambiguation", "1. Nf3 Nf6 2. Nc3 Nc6 3. Nd4 Nd5 4. Ncb5", "g1f3 g8f6 b1c3 b8c6 f3d4 f6d5 c3b5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := Parse(tt.san)
			testutil.AssertNoError(t, err)
			if got := chess.FormatMoves(moves); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.san, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		san  string
		ply  int
	}{
		{"illegal first move", "e5", 1},
		{"illegal black move", "1. e4 e5 2. Ke2 Ke6", 4},
		{"garbage", "1. e4 xyz", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.san)
			testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

			var plyErr *chesserrors.PlyError
			if !chesserrors.As(err, &plyErr) {
				t.Fatalf("error %v is not a PlyError", err)
			}
			if plyErr.Ply != tt.ply {
				t.Errorf("Ply = %d, want %d", plyErr.Ply, tt.ply)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("1. e4 {opening; king pawn} e5 2. Nf3 ; rest of line\n2... Nc6 $14 3. Bb5 a6 1/2-1/2")
	want := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"}
	testutil.AssertEqual(t, got, want)
}
