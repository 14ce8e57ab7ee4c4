// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chesscodec-go/internal/config"
)

var (
	// Conversion options
	mode     = flag.String("mode", "encode", "Conversion direction: encode (moves to text) or decode (text to moves)")
	sanInput = flag.Bool("san", false, "Input lines are SAN movetext (encode only)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length of decoded move lists (0 = no limit)")
	outputFormat = flag.String("W", "", "Decoded move notation: lalg (default) or san")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showFEN      = flag.Bool("fen", false, "Print the FEN of every position when decoding")
	showInput    = flag.Bool("echo", false, "Echo each input line as a comment before its output")
	noChecks     = flag.Bool("nochecks", false, "Don't mark checking moves with +")
	noNumbers    = flag.Bool("nonumbers", false, "Don't print move numbers")

	// Diagram options
	svgFile = flag.String("svg", "", "Write an SVG diagram of the last game's final position")
	svgSize = flag.Int("svgsize", 45, "Square size of the SVG diagram in pixels")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateFile      = flag.String("d", "", "Output duplicate input lines to this file")
	positionalDups     = flag.Bool("Z", false, "Games ending in the same position are duplicates")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Report every line processed")

	// Other options
	quiet       = flag.Bool("s", false, "Silent mode (no summary)")
	stopOnError = flag.Bool("e", false, "Stop at the first line that fails")
	help        = flag.Bool("h", false, "Show help")
	version     = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyModeFlags(cfg); err != nil {
		return err
	}
	applyOutputFormatFlags(cfg)
	applyContentFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Render.SVGFile = *svgFile
	cfg.Render.SquareSize = *svgSize
	cfg.Workers = resolveWorkers(*workers)
	cfg.StopOnError = *stopOnError

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyModeFlags configures the conversion direction and input notation.
func applyModeFlags(cfg *config.Config) error {
	m, err := config.ParseMode(*mode)
	if err != nil {
		return err
	}
	cfg.Mode = m
	if *sanInput {
		cfg.Input.Format = config.SANInput
	}
	return nil
}

// applyOutputFormatFlags configures the decoded move notation.
func applyOutputFormatFlags(cfg *config.Config) {
	if *outputFormat == "san" {
		cfg.Output.Notation = config.SAN
	} else {
		cfg.Output.Notation = config.LongAlgebraic
	}
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ShowInput = *showInput
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.KeepMoveNumbers = !*noNumbers
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates || *duplicateFile != ""
	cfg.Duplicate.ByPosition = *positionalDups
}

// resolveWorkers maps the -workers value to a worker count; 0 picks one
// goroutine per CPU core.
func resolveWorkers(n int) int {
	if n == 0 {
		return runtime.NumCPU()
	}
	return n
}
