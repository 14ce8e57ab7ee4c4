package output

import (
	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/config"
	"github.com/lgbarn/chesscodec-go/internal/engine"
)

// JSONGame represents one processed line in JSON format.
type JSONGame struct {
	Line       int        `json:"line,omitempty"`
	Input      string     `json:"input,omitempty"`
	Code       string     `json:"code"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN,omitempty"`
	FinalFEN   string     `json:"finalFEN,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	SAN        string `json:"san"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   string `json:"castling,omitempty"` // "kingside" or "queenside"
	EnPassant  bool   `json:"enPassant,omitempty"`
	Check      bool   `json:"check,omitempty"`
	Ambiguity  string `json:"ambiguity,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// EntryToJSON converts a processed line to JSON format.
func EntryToJSON(e Entry, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Line:  e.LineNumber,
		Input: e.Input,
		Code:  e.Code,
		Moves: []JSONMove{},
	}
	if e.Err != nil {
		jg.Error = e.Err.Error()
		return jg
	}

	game := e.Game
	jg.PlyCount = len(game.Records)
	jg.InitialFEN = game.Positions[0]
	jg.FinalFEN = game.Positions[len(game.Positions)-1]
	for i, r := range game.Records {
		jm := convertRecord(i, r)
		if cfg.Output.ShowFEN {
			jm.FEN = game.Positions[i+1]
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

// convertRecord converts the record of ply index i (0-based from the
// standard start).
func convertRecord(i int, r engine.MoveRecord) JSONMove {
	jm := JSONMove{
		Ply:        i + 1,
		MoveNumber: i/2 + 1,
		Color:      colorName(i%2 == 0),
		UCI:        r.Move.String(),
		SAN:        FormatMove(r, config.SAN, true),
		From:       r.Move.From.String(),
		To:         r.Move.To.String(),
		Piece:      pieceTypeName(r.Piece),
		Captured:   pieceTypeName(r.Captured),
		Check:      r.Check,
	}
	if r.Ambiguity != engine.Unambiguous {
		jm.Ambiguity = r.Ambiguity.String()
	}

	switch shape := r.Shape.(type) {
	case engine.Promotion:
		jm.Promotion = pieceTypeName(shape.To)
	case engine.EnPassant:
		jm.EnPassant = true
	case engine.Castling:
		jm.Castling = "queenside"
		if shape.Side == chess.KingSide {
			jm.Castling = "kingside"
		}
	}
	return jm
}

// colorName returns "white" or "black" based on the boolean.
func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}
