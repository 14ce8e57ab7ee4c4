// Package render draws board diagrams as SVG using github.com/ajstarks/svgo.
package render

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Options controls the diagram.
type Options struct {
	SquareSize  int
	Coordinates bool
	// Highlight marks squares, typically the last move's origin and
	// destination.
	Highlight   []chess.Square
	LightColour string
	DarkColour  string
	MarkColour  string
}

// DefaultOptions returns 45 pixel squares with coordinates.
func DefaultOptions() Options {
	return Options{
		SquareSize:  45,
		Coordinates: true,
		LightColour: "#f0d9b5",
		DarkColour:  "#b58863",
		MarkColour:  "#cdd26a",
	}
}

// margin is the border holding the coordinates.
func (o Options) margin() int {
	if !o.Coordinates {
		return 0
	}
	return o.SquareSize / 2
}

// Size returns the width and height of the diagram in pixels.
func (o Options) Size() int {
	return chess.BoardSize*o.SquareSize + 2*o.margin()
}

// origin returns the top left corner of sq with white at the bottom.
func (o Options) origin(sq chess.Square) (x, y int) {
	m := o.margin()
	return m + sq.File()*o.SquareSize, m + (chess.BoardSize-1-sq.Rank())*o.SquareSize
}

// Board writes a diagram of board to w.
func Board(w io.Writer, board *chess.Board, opts Options) error {
	if opts.SquareSize <= 0 {
		return errors.Newf(errors.ErrIllegalConfig, "square size %d", opts.SquareSize)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	size := opts.Size()
	canvas.Start(size, size)
	canvas.Title("chess position")

	marked := make(map[chess.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		marked[sq] = true
	}

	canvas.Gid("squares")
	for sq := chess.A1; sq <= chess.H8; sq++ {
		x, y := opts.origin(sq)
		colour := opts.DarkColour
		if (sq.File()+sq.Rank())%2 == 1 {
			colour = opts.LightColour
		}
		if marked[sq] {
			colour = opts.MarkColour
		}
		canvas.Rect(x, y, opts.SquareSize, opts.SquareSize, "fill:"+colour)
	}
	canvas.Gend()

	pieceStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central;font-family:serif", opts.SquareSize*4/5)
	canvas.Gid("pieces")
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Get(sq)
		if p.IsEmpty() {
			continue
		}
		x, y := opts.origin(sq)
		canvas.Text(x+opts.SquareSize/2, y+opts.SquareSize/2, string(p.Symbol()), pieceStyle)
	}
	canvas.Gend()

	if opts.Coordinates {
		drawCoordinates(canvas, opts)
	}

	canvas.End()
	return ew.err
}

func drawCoordinates(canvas *svg.SVG, opts Options) {
	m := opts.margin()
	style := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central;font-family:sans-serif", max(m*3/5, 6))
	far := m + chess.BoardSize*opts.SquareSize

	canvas.Gid("coordinates")
	for i := 0; i < chess.BoardSize; i++ {
		centre := m + i*opts.SquareSize + opts.SquareSize/2
		file := string(rune('a' + i))
		rank := string(rune('8' - i))
		canvas.Text(centre, m/2, file, style)
		canvas.Text(centre, far+m/2, file, style)
		canvas.Text(m/2, centre, rank, style)
		canvas.Text(far+m/2, centre, rank, style)
	}
	canvas.Gend()
}

// WriteFile writes a diagram of board to path.
func WriteFile(path string, board *chess.Board, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create diagram %s", path)
	}
	if err := Board(f, board, opts); err != nil {
		f.Close()
		return errors.Wrapf(err, "write diagram %s", path)
	}
	return f.Close()
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
