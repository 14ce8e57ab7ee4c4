package config

import "github.com/lgbarn/chesscodec-go/internal/errors"

// RenderConfig holds settings for the SVG board diagram.
type RenderConfig struct {
	// SVGFile receives a diagram of the last game's final position; empty
	// disables rendering.
	SVGFile string

	// SquareSize is the edge of one square in pixels.
	SquareSize int

	// ShowCoordinates draws file letters and rank digits around the board.
	ShowCoordinates bool

	// HighlightLastMove marks the origin and destination of the last ply.
	HighlightLastMove bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		SquareSize:        45,
		ShowCoordinates:   true,
		HighlightLastMove: true,
	}
}

// Validate checks the diagram geometry.
func (r *RenderConfig) Validate() error {
	if r.SquareSize < 8 || r.SquareSize > 512 {
		return errors.Newf(errors.ErrIllegalConfig, "square size %d outside 8..512", r.SquareSize)
	}
	return nil
}
