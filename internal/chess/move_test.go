package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chesscodec-go/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text    string
		want    Move
		wantErr bool
	}{
		{"e2e4", Move{From: E2, To: E4}, false},
		{"g1f3", Move{From: G1, To: F3}, false},
		{"a7a8Q", Move{From: A7, To: A8, Promotion: Queen}, false},
		{"h2h1N", Move{From: H2, To: H1, Promotion: Knight}, false},
		{"b7c8R", Move{From: B7, To: C8, Promotion: Rook}, false},
		{"d2d1B", Move{From: D2, To: D1, Promotion: Bishop}, false},
		{"a7a8K", Move{}, true},
		{"a7a8P", Move{}, true},
		{"a7a8q", Move{}, true},
		{"e2e9", Move{}, true},
		{"e2", Move{}, true},
		{"e2e4e5", Move{}, true},
		{"", Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrIllegalFormat) {
					t.Errorf("ParseMove(%q) error = %v; want ErrIllegalFormat", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
			if got.String() != tt.text {
				t.Errorf("ParseMove(%q).String() = %q", tt.text, got.String())
			}
		})
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("  e2e4 e7e5\n g1f3\t")
	if err != nil {
		t.Fatalf("ParseMoves() error: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("len(moves) = %d; want 3", len(moves))
	}
	if got := FormatMoves(moves); got != "e2e4 e7e5 g1f3" {
		t.Errorf("FormatMoves() = %q", got)
	}

	if moves, err := ParseMoves(""); err != nil || len(moves) != 0 {
		t.Errorf("ParseMoves(\"\") = %v, %v; want empty", moves, err)
	}
	if _, err := ParseMoves("e2e4 zz"); err == nil {
		t.Error("ParseMoves with a bad token succeeded")
	}
}

func TestParseColouredPiece(t *testing.T) {
	tests := []struct {
		in   rune
		want ColouredPiece
	}{
		{'♔', W(King)},
		{'♚', B(King)},
		{'♙', W(Pawn)},
		{'♞', B(Knight)},
		{'Q', W(Queen)},
		{'r', B(Rook)},
		{'b', B(Bishop)},
	}
	for _, tt := range tests {
		got, err := ParseColouredPiece(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseColouredPiece(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if tt.in > 127 && got.Symbol() != tt.in {
			t.Errorf("%v.Symbol() = %q; want %q", got, got.Symbol(), tt.in)
		}
	}
	if _, err := ParseColouredPiece('x'); !errors.Is(err, chesserrors.ErrIllegalFormat) {
		t.Errorf("ParseColouredPiece('x') error = %v; want ErrIllegalFormat", err)
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() wrong")
	}
	if White.FENChar() != 'w' || Black.FENChar() != 'b' {
		t.Error("FENChar() wrong")
	}
	if White.HomeRank() != 0 || Black.HomeRank() != 7 {
		t.Error("HomeRank() wrong")
	}
	if White.PromotionRank() != 7 || Black.PromotionRank() != 0 {
		t.Error("PromotionRank() wrong")
	}
	if White.PawnDirection() != Up || Black.PawnDirection() != Down {
		t.Error("PawnDirection() wrong")
	}
	for _, text := range []string{"white", "w", "White"} {
		if c, err := ParseColour(text); err != nil || c != White {
			t.Errorf("ParseColour(%q) = %v, %v", text, c, err)
		}
	}
	if _, err := ParseColour("red"); err == nil {
		t.Error("ParseColour(\"red\") succeeded")
	}
}

func TestFENLetter(t *testing.T) {
	if W(Knight).FENLetter() != 'N' || B(Knight).FENLetter() != 'n' {
		t.Error("knight FEN letters wrong")
	}
	if W(Pawn).FENLetter() != 'P' || B(King).FENLetter() != 'k' {
		t.Error("FEN letters wrong")
	}
}

func TestLatch(t *testing.T) {
	var l Latch
	if !l.IsAllowed() {
		t.Fatal("zero Latch not allowed")
	}
	l.Disallow()
	if l.IsAllowed() {
		t.Fatal("Latch allowed after Disallow")
	}
	l.Disallow()
	if l.IsAllowed() {
		t.Fatal("Latch allowed after second Disallow")
	}
}

func TestCastlingRights(t *testing.T) {
	var cr CastlingRights
	if got := cr.String(); got != "KQkq" {
		t.Errorf("String() = %q; want KQkq", got)
	}

	cr.Disallow(White, QueenSide)
	if cr.IsAllowed(White, QueenSide) || !cr.IsAllowed(White, KingSide) {
		t.Error("Disallow(White, QueenSide) affected the wrong latch")
	}
	if got := cr.String(); got != "Kkq" {
		t.Errorf("String() = %q; want Kkq", got)
	}

	cr.DisallowAll(Black)
	if got := cr.String(); got != "K" {
		t.Errorf("String() = %q; want K", got)
	}

	if got := NoCastlingRights().String(); got != "-" {
		t.Errorf("NoCastlingRights().String() = %q; want -", got)
	}

	copied := cr
	copied.Disallow(White, KingSide)
	if !cr.IsAllowed(White, KingSide) {
		t.Error("disallowing on a copy changed the original")
	}
}

func TestCastlingSideSquares(t *testing.T) {
	if KingSide.RookHome(White) != H1 || QueenSide.RookHome(Black) != A8 {
		t.Error("RookHome wrong")
	}
	if KingHome(White) != E1 || KingHome(Black) != E8 {
		t.Error("KingHome wrong")
	}
	if KingSide.KingDestinationFile() != 6 || QueenSide.RookDestinationFile() != 3 {
		t.Error("destination files wrong")
	}
}
