package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMode sets encode or decode mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Mode = mode
	return b
}

// WithInputFormat sets the move-list notation read when encoding.
func (b *ConfigBuilder) WithInputFormat(format InputFormat) *ConfigBuilder {
	b.cfg.Input.Format = format
	return b
}

// WithNotation sets the printed move notation.
func (b *ConfigBuilder) WithNotation(notation Notation) *ConfigBuilder {
	b.cfg.Output.Notation = notation
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithFEN enables a FEN line after each ply.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = enabled
	return b
}

// WithSVG sets the diagram file and square size.
func (b *ConfigBuilder) WithSVG(filename string, squareSize int) *ConfigBuilder {
	b.cfg.Render.SVGFile = filename
	b.cfg.Render.SquareSize = squareSize
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithPositionalDuplicates compares games by final position.
func (b *ConfigBuilder) WithPositionalDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.ByPosition = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// StopOnError controls whether the first failing line ends processing.
func (b *ConfigBuilder) StopOnError(stop bool) *ConfigBuilder {
	b.cfg.StopOnError = stop
	return b
}
