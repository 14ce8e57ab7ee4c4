package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/codec"
	"github.com/lgbarn/chesscodec-go/internal/config"
	"github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/hashing"
	"github.com/lgbarn/chesscodec-go/internal/output"
	"github.com/lgbarn/chesscodec-go/internal/san"
	"github.com/lgbarn/chesscodec-go/internal/worker"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Stats counts the outcome of a run.
type Stats struct {
	Lines      int
	Output     int
	Duplicates int
	Errors     int
}

// ProcessingContext holds the state shared by every input of one run.
type ProcessingContext struct {
	cfg      *config.Config
	writer   output.GameWriter
	detector *hashing.DuplicateDetector
	stats    Stats
	lastGame *codec.Game
	stopped  bool
}

// newProcessingContext creates the context, with a duplicate detector only
// when suppression is enabled.
func newProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:    cfg,
		writer: output.NewWriter(cfg.OutputFile, cfg),
	}
	if cfg.Duplicate.Suppress {
		ctx.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ByPosition)
	}
	return ctx
}

// readLines splits the input into work items, dropping blank lines and
// comment lines. Items are indexed from 0 within one input.
func readLines(r io.Reader, name string, cfg *config.Config) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" && !cfg.Input.KeepBlankLines {
			continue
		}
		if cfg.Input.CommentPrefix != "" && strings.HasPrefix(line, cfg.Input.CommentPrefix) {
			continue
		}
		items = append(items, worker.WorkItem{Line: line, LineNumber: lineNumber, Index: len(items)})
	}
	if err := scanner.Err(); err != nil {
		return items, errors.Wrapf(err, "reading %s", name)
	}
	return items, nil
}

// processLine converts one input line. In both directions the resulting
// code is decoded again, which checks the round trip and yields the records
// the writers print.
func processLine(item worker.WorkItem, cfg *config.Config) worker.ProcessResult {
	result := worker.ProcessResult{
		Index:      item.Index,
		LineNumber: item.LineNumber,
		Input:      item.Line,
	}

	code := item.Line
	if cfg.Mode == config.EncodeMode {
		var err error
		if code, err = encodeLine(item.Line, cfg.Input.Format); err != nil {
			result.Err = err
			return result
		}
	}

	game, err := codec.Decode(code)
	if err != nil {
		result.Err = err
		return result
	}
	result.Code = code
	result.Game = game
	return result
}

// encodeLine encodes a move list in the configured notation.
func encodeLine(line string, format config.InputFormat) (string, error) {
	if format != config.SANInput {
		return codec.EncodeText(line)
	}
	moves, err := san.Parse(line)
	if err != nil {
		return "", err
	}
	return codec.Encode(moves)
}

// processItems converts all items and hands the results to emit in input
// order, sequentially or through the worker pool.
func processItems(items []worker.WorkItem, ctx *ProcessingContext) {
	if ctx.cfg.Workers <= 1 || len(items) < 2 {
		for _, item := range items {
			if ctx.stopped {
				return
			}
			ctx.emit(processLine(item, ctx.cfg))
		}
		return
	}
	processParallel(items, ctx)
}

// processParallel fans items out over a worker pool and re-orders the
// results before emitting them.
func processParallel(items []worker.WorkItem, ctx *ProcessingContext) {
	pool := worker.NewPool(
		func(item worker.WorkItem) worker.ProcessResult { return processLine(item, ctx.cfg) },
		worker.WithWorkers(ctx.cfg.Workers),
		worker.WithBufferSize(ctx.cfg.Workers*2),
	)
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	worker.Reorder(pool.Results(), func(r worker.ProcessResult) {
		if ctx.stopped {
			return
		}
		ctx.emit(r)
		if ctx.stopped {
			pool.Stop()
		}
	})
}

// emit reports, de-duplicates and writes one result.
func (ctx *ProcessingContext) emit(r worker.ProcessResult) {
	cfg := ctx.cfg
	ctx.stats.Lines++

	if r.Err != nil {
		ctx.stats.Errors++
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "line %d: %v\n", r.LineNumber, r.Err)
		}
		if cfg.Output.JSONFormat {
			ctx.write(r)
		}
		if cfg.StopOnError {
			ctx.stopped = true
		}
		return
	}

	if ctx.detector != nil {
		dup, err := ctx.detector.CheckAndAdd(r.Code, r.Game)
		if err != nil && cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "line %d: duplicate check: %v\n", r.LineNumber, err)
		}
		if dup {
			ctx.stats.Duplicates++
			if cfg.Duplicate.DuplicateFile != nil {
				fmt.Fprintln(cfg.Duplicate.DuplicateFile, r.Input)
			}
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "line %d: duplicate of an earlier game\n", r.LineNumber)
			}
			return
		}
	}

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "line %d: %d plies, %s\n", r.LineNumber, len(r.Game.Records), r.Code)
	}
	ctx.lastGame = r.Game
	ctx.stats.Output++
	ctx.write(r)
}

func (ctx *ProcessingContext) write(r worker.ProcessResult) {
	err := ctx.writer.WriteEntry(output.Entry{
		LineNumber: r.LineNumber,
		Input:      r.Input,
		Code:       r.Code,
		Game:       r.Game,
		Err:        r.Err,
	})
	if err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "line %d: writing output: %v\n", r.LineNumber, err)
	}
}

// lastMoveSquares returns the origin and destination of the game's final
// ply, if any.
func lastMoveSquares(game *codec.Game) []chess.Square {
	if len(game.Records) == 0 {
		return nil
	}
	m := game.Records[len(game.Records)-1].Move
	return []chess.Square{m.From, m.To}
}
