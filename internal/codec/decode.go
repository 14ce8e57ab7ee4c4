package codec

import (
	"slices"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/engine"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Game is a decoded move sequence.
type Game struct {
	Records []engine.MoveRecord
	// Positions holds the FEN of the start and of every position after it,
	// so len(Positions) == len(Records)+1.
	Positions []string
	Final     engine.GameState
}

// Moves returns the decoded moves in order.
func (g *Game) Moves() []chess.Move {
	moves := make([]chess.Move, len(g.Records))
	for i, r := range g.Records {
		moves[i] = r.Move
	}
	return moves
}

// MoveText returns the moves as a long algebraic move list.
func (g *Game) MoveText() string {
	return chess.FormatMoves(g.Moves())
}

// Decode expands compressed text into the moves it stands for, replaying
// them from the standard start.
func Decode(text string) (*Game, error) {
	if err := Validate(text); err != nil {
		return nil, err
	}

	state := engine.NewGameState()
	game := &Game{Positions: []string{state.FEN()}}
	r := reader{text: text}
	for !r.done() {
		start := r.pos
		m, err := decodeMove(&r, state)
		if err != nil {
			return nil, &errors.PlyError{
				Err:      err,
				Ply:      len(game.Records) + 1,
				Colour:   state.Turn().String(),
				MoveText: text[start:r.pos],
			}
		}

		var record engine.MoveRecord
		state, record = state.Apply(m)
		game.Records = append(game.Records, record)
		game.Positions = append(game.Positions, state.FEN())
	}
	game.Final = state
	return game, nil
}

func decodeMove(r *reader, state engine.GameState) (chess.Move, error) {
	first, err := r.square()
	if err != nil {
		return chess.Move{}, err
	}

	board := state.Board()
	var m chess.Move
	if board.ContainsColour(first, state.Turn()) {
		to, err := r.square()
		if err != nil {
			return chess.Move{}, err
		}
		m = chess.NewMove(first, to)
		if err := checkExplicitOrigin(state, m); err != nil {
			return chess.Move{}, err
		}
	} else {
		origins, err := state.ReachableOrigins(first)
		if err != nil {
			return chess.Move{}, err
		}
		if len(origins) != 1 {
			return chess.Move{}, errors.Newf(errors.ErrIllegalMove, "%s is reachable from %d squares, need exactly one", first, len(origins))
		}
		m = chess.NewMove(origins[0], first)
	}

	if state.LooksLikePromotion(m) {
		letter, ok := r.next()
		if !ok {
			return chess.Move{}, errors.Newf(errors.ErrIllegalFormat, "promotion of %s is missing its piece", m)
		}
		if m.Promotion, err = chess.ParsePromotion(letter); err != nil {
			return chess.Move{}, err
		}
	}
	return m, nil
}

// checkExplicitOrigin rejects a two-character move that is neither
// castling nor reachable from its origin.
func checkExplicitOrigin(state engine.GameState, m chess.Move) error {
	castling, err := state.LooksLikeCastling(m)
	if err != nil || castling {
		return err
	}
	origins, err := state.ReachableOrigins(m.To)
	if err != nil {
		return err
	}
	if !slices.Contains(origins, m.From) {
		return errors.Newf(errors.ErrIllegalMove, "%s cannot reach %s", m.From, m.To)
	}
	return nil
}

// reader walks compressed text one character at a time.
type reader struct {
	text string
	pos  int
}

func (r *reader) done() bool {
	return r.pos >= len(r.text)
}

func (r *reader) next() (byte, bool) {
	if r.done() {
		return 0, false
	}
	c := r.text[r.pos]
	r.pos++
	return c, true
}

func (r *reader) square() (chess.Square, error) {
	c, ok := r.next()
	if !ok {
		return chess.NoSquare, errors.Newf(errors.ErrIllegalFormat, "text ends in the middle of a move")
	}
	return CharSquare(c)
}
