// Package config provides configuration for the chesscodec command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Mode selects the direction of the conversion.
type Mode int

const (
	EncodeMode Mode = iota // move lists in, compressed text out
	DecodeMode             // compressed text in, move lists out
)

func (m Mode) String() string {
	if m == DecodeMode {
		return "decode"
	}
	return "encode"
}

// ParseMode converts a -mode flag value.
func ParseMode(text string) (Mode, error) {
	switch strings.ToLower(text) {
	case "encode", "e":
		return EncodeMode, nil
	case "decode", "d":
		return DecodeMode, nil
	}
	return EncodeMode, fmt.Errorf("unknown mode %q (want encode or decode): %w", text, errors.ErrIllegalConfig)
}

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Workers is the number of goroutines used for batch input; 0 or 1
	// processes lines sequentially.
	Workers int

	// StopOnError ends processing at the first line that fails.
	StopOnError bool

	Input     *InputConfig
	Output    *OutputConfig
	Render    *RenderConfig
	Duplicate *DuplicateConfig

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       EncodeMode,
		Verbosity:  1,
		Workers:    1,
		Input:      NewInputConfig(),
		Output:     NewOutputConfig(),
		Render:     NewRenderConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks settings that flags alone cannot rule out.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.Newf(errors.ErrIllegalConfig, "worker count %d is negative", c.Workers)
	}
	if c.Mode == DecodeMode && c.Input.Format == SANInput {
		return errors.Newf(errors.ErrIllegalConfig, "SAN input only applies when encoding")
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	return nil
}
