package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Placement puts one piece on one square of a manual setup.
type Placement struct {
	Square chess.Square
	Piece  chess.ColouredPiece
}

// NewGameStateFromPlacement builds and validates a manual setup. Exactly one
// king per colour is required, pawns may not stand on the first or last
// rank, and an en-passant target (chess.NoSquare for none) must sit directly
// behind an enemy pawn that could just have double-stepped. Castling stays
// allowed only where king and rook stand on their home squares.
func NewGameStateFromPlacement(turn chess.Colour, enPassant chess.Square, placements []Placement) (GameState, error) {
	s := GameState{
		board:     chess.NewBoard(),
		turn:      turn,
		enPassant: enPassant,
		kings:     [2]chess.Square{chess.NoSquare, chess.NoSquare},
	}

	for _, p := range placements {
		if !p.Square.IsValid() || p.Piece.IsEmpty() {
			return GameState{}, errors.Newf(errors.ErrIllegalConfig, "invalid placement %v on %s", p.Piece, p.Square)
		}
		if _, occupied := s.board.Set(p.Square, p.Piece); occupied {
			return GameState{}, errors.Newf(errors.ErrIllegalConfig, "multiple pieces placed on %s", p.Square)
		}
		switch p.Piece.Piece {
		case chess.Pawn:
			if r := p.Square.Rank(); r == 0 || r == chess.BoardSize-1 {
				return GameState{}, errors.Newf(errors.ErrIllegalConfig, "pawn cannot stand on %s", p.Square)
			}
		case chess.King:
			if s.kings[p.Piece.Colour] != chess.NoSquare {
				return GameState{}, errors.Newf(errors.ErrIllegalConfig, "second %s king on %s", p.Piece.Colour, p.Square)
			}
			s.kings[p.Piece.Colour] = p.Square
		}
	}

	for _, c := range chess.Colours {
		if s.kings[c] == chess.NoSquare {
			return GameState{}, errors.Newf(errors.ErrIllegalConfig, "no %s king configured", c)
		}
	}

	if enPassant != chess.NoSquare {
		if err := s.validateEnPassant(); err != nil {
			return GameState{}, err
		}
	}

	for _, c := range chess.Colours {
		kingHome := s.board.Contains(chess.KingHome(c), chess.King, c)
		for _, side := range chess.CastlingSides {
			if !kingHome || !s.board.Contains(side.RookHome(c), chess.Rook, c) {
				s.castling.Disallow(c, side)
			}
		}
	}

	// Keep the full-move number right when black moves first.
	if turn == chess.Black {
		s.plies = 1
	}
	return s, nil
}

func (s *GameState) validateEnPassant() error {
	// The target lies on rank 6 when white moves, rank 3 when black moves.
	wantRank := 5
	if s.turn == chess.Black {
		wantRank = 2
	}
	if !s.enPassant.IsValid() || s.enPassant.Rank() != wantRank {
		return errors.Newf(errors.ErrIllegalConfig, "%s to move, so the en-passant target must be on rank %d, not %s",
			s.turn, wantRank+1, s.enPassant)
	}

	// The double-stepped pawn stands one square further in its own direction.
	pawnDir := s.turn.Opposite().PawnDirection()
	pawnSq, _ := s.enPassant.Step(pawnDir)
	if !s.board.Contains(pawnSq, chess.Pawn, s.turn.Opposite()) {
		return errors.Newf(errors.ErrIllegalConfig, "en-passant target %s needs a %s pawn on %s",
			s.enPassant, s.turn.Opposite(), pawnSq)
	}
	behind, _ := s.enPassant.Step(pawnDir.Reverse())
	if !s.board.IsEmpty(behind) {
		return errors.Newf(errors.ErrIllegalConfig, "en-passant target %s needs %s to be empty", s.enPassant, behind)
	}
	if !s.board.IsEmpty(s.enPassant) {
		return errors.Newf(errors.ErrIllegalConfig, "en-passant target %s is occupied", s.enPassant)
	}
	return nil
}

// ParseSetup builds a state from text. The empty string is the standard
// start. Text beginning with "white" or "black" is a manual setup: the side
// to move followed by tokens of a piece (Unicode figure or FEN letter) and a
// square, e.g. "white ♔e1 ♚e8 ♙e5 ♟d5 Ed6", where E marks the en-passant
// target. Any other text is a move list replayed from the start.
func ParseSetup(text string) (GameState, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return NewGameState(), nil
	}

	turn, err := chess.ParseColour(fields[0])
	if err != nil || len(fields[0]) == 1 {
		state, _, err := ReplayMoves(text)
		return state, err
	}

	enPassant := chess.NoSquare
	var placements []Placement
	for _, token := range fields[1:] {
		if rest, ok := strings.CutPrefix(token, "E"); ok {
			sq, err := chess.ParseSquare(rest)
			if err != nil {
				return GameState{}, errors.Wrapf(err, "en-passant token %q", token)
			}
			if enPassant != chess.NoSquare {
				return GameState{}, errors.Newf(errors.ErrIllegalConfig, "two en-passant tokens (%s and %s)", enPassant, sq)
			}
			enPassant = sq
			continue
		}

		p, err := parsePlacement(token)
		if err != nil {
			return GameState{}, err
		}
		placements = append(placements, p)
	}

	return NewGameStateFromPlacement(turn, enPassant, placements)
}

func parsePlacement(token string) (Placement, error) {
	r, size := utf8.DecodeRuneInString(token)
	piece, err := chess.ParseColouredPiece(r)
	if err != nil {
		return Placement{}, errors.Wrapf(err, "setup token %q", token)
	}
	sq, err := chess.ParseSquare(token[size:])
	if err != nil {
		return Placement{}, errors.Wrapf(err, "setup token %q", token)
	}
	return Placement{Square: sq, Piece: piece}, nil
}

// ReplayMoves replays a whitespace separated long algebraic move list from
// the standard start. Each origin must hold a piece of the side to move.
func ReplayMoves(text string) (GameState, []MoveRecord, error) {
	moves, err := chess.ParseMoves(text)
	if err != nil {
		return GameState{}, nil, err
	}
	return Replay(NewGameState(), moves)
}

// Replay folds moves over state, returning the final state and one record
// per move.
func Replay(state GameState, moves []chess.Move) (GameState, []MoveRecord, error) {
	records := make([]MoveRecord, 0, len(moves))
	for i, m := range moves {
		if !state.board.ContainsColour(m.From, state.turn) {
			return GameState{}, nil, &errors.PlyError{
				Err:      fmt.Errorf("no %s piece on %s: %w", state.turn, m.From, errors.ErrIllegalMove),
				Ply:      i + 1,
				Colour:   state.turn.String(),
				MoveText: m.String(),
			}
		}
		if m.To == state.kings[chess.White] || m.To == state.kings[chess.Black] {
			return GameState{}, nil, &errors.PlyError{
				Err:      fmt.Errorf("%s would capture a king: %w", m, errors.ErrIllegalMove),
				Ply:      i + 1,
				Colour:   state.turn.String(),
				MoveText: m.String(),
			}
		}
		var record MoveRecord
		state, record = state.Apply(m)
		records = append(records, record)
	}
	return state, records, nil
}
