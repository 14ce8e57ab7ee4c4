package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalConfig", ErrIllegalConfig, ErrIllegalConfig},
		{"ErrIllegalFormat", ErrIllegalFormat, ErrIllegalFormat},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrIllegalFormat) {
		t.Error("ErrIllegalMove must not match ErrIllegalFormat")
	}
	if errors.Is(ErrIllegalConfig, ErrIllegalMove) {
		t.Error("ErrIllegalConfig must not match ErrIllegalMove")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to set up position: %w", ErrIllegalConfig)

	if !errors.Is(wrapped, ErrIllegalConfig) {
		t.Errorf("errors.Is(wrapped, ErrIllegalConfig) = false, want true")
	}
}

func TestPlyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PlyError
		contains []string
	}{
		{
			name: "full context",
			err: &PlyError{
				Err:      ErrIllegalMove,
				Ply:      12,
				Colour:   "black",
				MoveText: "g8g6",
			},
			contains: []string{"move 6", "ply 12", "black", "g8g6", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &PlyError{Err: ErrIllegalFormat},
			contains: []string{"illegal format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PlyError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestPlyError_Unwrap(t *testing.T) {
	plyErr := &PlyError{
		Err: Newf(ErrIllegalMove, "no piece can reach %s", "e5"),
		Ply: 1,
	}

	if !errors.Is(plyErr, ErrIllegalMove) {
		t.Error("errors.Is(plyErr, ErrIllegalMove) = false, want true")
	}
	if !Is(plyErr, ErrIllegalMove) {
		t.Error("Is(plyErr, ErrIllegalMove) = false, want true")
	}
}

func TestPlyError_As(t *testing.T) {
	plyErr := &PlyError{
		Err:      ErrIllegalFormat,
		Ply:      7,
		MoveText: "a7a8X",
	}

	wrapped := fmt.Errorf("encoding failed: %w", plyErr)

	var extracted *PlyError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract PlyError")
	}
	if extracted.Ply != 7 {
		t.Errorf("extracted.Ply = %d, want 7", extracted.Ply)
	}
	if extracted.MoveText != "a7a8X" {
		t.Errorf("extracted.MoveText = %q, want %q", extracted.MoveText, "a7a8X")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrIllegalFormat, "parsing move text")

	if !errors.Is(wrapped, ErrIllegalFormat) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing move text") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of line %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrIllegalConfig, "no %s king configured", "white")

	if !errors.Is(err, ErrIllegalConfig) {
		t.Error("Newf should keep the kind inspectable")
	}
	if !strings.HasPrefix(err.Error(), "no white king configured") {
		t.Errorf("Newf message = %q", err.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
