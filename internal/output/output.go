// Package output renders encoded and decoded games as text or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/codec"
	"github.com/lgbarn/chesscodec-go/internal/config"
	"github.com/lgbarn/chesscodec-go/internal/engine"
)

// Entry is one processed input line.
type Entry struct {
	LineNumber int
	Input      string
	Code       string
	Game       *codec.Game // nil when Err is set
	Err        error
}

// OutputWriter handles line-length-aware output.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of zero
// disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputEntry writes one entry in text form: the compressed text when
// encoding, the move text (and optionally every FEN) when decoding.
// Failed entries produce no output.
func OutputEntry(e Entry, cfg *config.Config, w io.Writer) {
	if e.Err != nil {
		return
	}
	if cfg.Output.ShowInput {
		fmt.Fprintf(w, "# %s\n", e.Input)
	}
	if cfg.Mode == config.EncodeMode {
		fmt.Fprintln(w, e.Code)
		return
	}

	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	outputMoves(e.Game, cfg, ow)
	ow.NewLine()

	if cfg.Output.ShowFEN {
		for _, fen := range e.Game.Positions {
			fmt.Fprintln(w, fen)
		}
	}
}

func outputMoves(game *codec.Game, cfg *config.Config, ow *OutputWriter) {
	for i, r := range game.Records {
		if cfg.Output.KeepMoveNumbers && i%2 == 0 {
			ow.Write(strconv.Itoa(i/2+1) + ".")
		}
		ow.Write(FormatMove(r, cfg.Output.Notation, cfg.Output.KeepChecks))
	}
}

// FormatMove renders one record in the given notation.
func FormatMove(r engine.MoveRecord, notation config.Notation, keepChecks bool) string {
	var text string
	if notation == config.SAN {
		text = FormatSAN(r)
	} else {
		text = r.Move.String()
	}
	if keepChecks && r.Check {
		text += "+"
	}
	return text
}

// FormatSAN renders a record in Standard Algebraic Notation without the
// check suffix. Piece moves carry the record's SANOrigin.
func FormatSAN(r engine.MoveRecord) string {
	if castle, ok := r.Shape.(engine.Castling); ok {
		if castle.Side == chess.KingSide {
			return "O-O"
		}
		return "O-O-O"
	}

	from := r.Move.From.String()
	var sb strings.Builder
	if r.Piece == chess.Pawn {
		if r.IsCapture() {
			sb.WriteByte(from[0])
			sb.WriteByte('x')
		}
		sb.WriteString(r.Move.To.String())
		if p, ok := r.Shape.(engine.Promotion); ok {
			sb.WriteByte('=')
			sb.WriteByte(p.To.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(r.Piece.Letter())
	sb.WriteString(r.SANOrigin)
	if r.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(r.Move.To.String())
	return sb.String()
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
