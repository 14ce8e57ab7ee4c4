// chesscodec converts chess move lists to a compact URL-safe text and back.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscodec-go/internal/config"
	"github.com/lgbarn/chesscodec-go/internal/render"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscodec version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	stats, err := run(cfg, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, cfg, stats)
	}
	if stats.Errors > 0 {
		os.Exit(1)
	}
}

// run processes every named input, or stdin when there are none, and
// renders the diagram if one was requested.
func run(cfg *config.Config, inputs []string) (Stats, error) {
	ctx := newProcessingContext(cfg)

	if len(inputs) == 0 {
		if err := processInput(os.Stdin, "stdin", ctx); err != nil {
			return ctx.stats, err
		}
	} else {
		for _, filename := range inputs {
			if ctx.stopped {
				break
			}
			if err := processFile(filename, ctx); err != nil {
				fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", filename, err)
				ctx.stats.Errors++
			}
		}
	}

	if err := ctx.writer.Close(); err != nil {
		return ctx.stats, err
	}
	if cfg.Render.SVGFile != "" && ctx.lastGame != nil {
		if err := writeDiagram(cfg, ctx); err != nil {
			return ctx.stats, err
		}
	}
	return ctx.stats, nil
}

// processFile processes one named input file.
func processFile(filename string, ctx *ProcessingContext) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck

	return processInput(file, filename, ctx)
}

// processInput reads all lines of r and processes them.
func processInput(r io.Reader, name string, ctx *ProcessingContext) error {
	items, err := readLines(r, name, ctx.cfg)
	processItems(items, ctx)
	return err
}

// writeDiagram draws the final position of the last game written.
func writeDiagram(cfg *config.Config, ctx *ProcessingContext) error {
	opts := render.DefaultOptions()
	opts.SquareSize = cfg.Render.SquareSize
	opts.Coordinates = cfg.Render.ShowCoordinates
	if cfg.Render.HighlightLastMove {
		opts.Highlight = lastMoveSquares(ctx.lastGame)
	}

	board := ctx.lastGame.Final.Board()
	if err := render.WriteFile(cfg.Render.SVGFile, &board, opts); err != nil {
		return err
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "diagram written to %s\n", cfg.Render.SVGFile)
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFilename = *outputFile
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, cfg *config.Config, stats Stats) {
	verb := "encoded"
	if cfg.Mode == config.DecodeMode {
		verb = "decoded"
	}
	if cfg.Duplicate.Suppress {
		fmt.Fprintf(w, "%d line(s) %s, %d duplicate(s), %d error(s) out of %d.\n",
			stats.Output, verb, stats.Duplicates, stats.Errors, stats.Lines)
	} else {
		fmt.Fprintf(w, "%d line(s) %s, %d error(s) out of %d.\n", stats.Output, verb, stats.Errors, stats.Lines)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscodec [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Converts chess games, one per line, between move lists and compressed text.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  encode  long algebraic (e2e4 e1h1 a7a8Q) or, with -san, SAN movetext in\n")
	fmt.Fprintf(os.Stderr, "  decode  compressed text in, move lists out\n")
}
