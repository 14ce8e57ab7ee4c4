package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/codec"
	"github.com/lgbarn/chesscodec-go/internal/config"
	chesserrors "github.com/lgbarn/chesscodec-go/internal/errors"
	"github.com/lgbarn/chesscodec-go/internal/testutil"
	"github.com/lgbarn/chesscodec-go/internal/worker"
)

var sampleGames = []string{
	"e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5a4 g8f6 e1h1",
	"d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c1g5 f8e7",
	"a2a4 h7h6 a4a5 b7b5 a5b6 h6h5 b6c7 h5h4 g2g3 h4g3 c7d8Q",
	"d2d3 g7g6 c1e3 f8g7 b1c3 g8f6 d1d2 e8h8 e1a1",
	"c2c4",
	"g1f3 g8f6 c2c4 g7g6 b1c3 f8g7 d2d4 e8h8",
	"e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6",
	"f2f3 e7e5 g2g4 d8h4",
}

// runLines processes lines as one input and returns output, log and stats.
func runLines(t *testing.T, cfg *config.Config, lines []string) (string, string, Stats) {
	t.Helper()
	var out, log bytes.Buffer
	cfg.OutputFile = &out
	cfg.LogFile = &log

	ctx := newProcessingContext(cfg)
	testutil.AssertNoError(t, processInput(strings.NewReader(strings.Join(lines, "\n")), "test", ctx))
	testutil.AssertNoError(t, ctx.writer.Close())
	return out.String(), log.String(), ctx.stats
}

func TestReadLines(t *testing.T) {
	input := "e2e4\n\n# comment\n  c2c4  \n"

	t.Run("default", func(t *testing.T) {
		items, err := readLines(strings.NewReader(input), "test", config.NewConfig())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, items, []worker.WorkItem{
			{Line: "e2e4", LineNumber: 1, Index: 0},
			{Line: "c2c4", LineNumber: 4, Index: 1},
		})
	})

	t.Run("blank lines kept", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Input.KeepBlankLines = true
		cfg.Input.CommentPrefix = ""
		items, err := readLines(strings.NewReader(input), "test", cfg)
		testutil.AssertNoError(t, err)
		if len(items) != 4 || items[1].Line != "" || items[2].Line != "# comment" {
			t.Errorf("items = %+v", items)
		}
	})
}

func TestProcessLine(t *testing.T) {
	encode := config.NewConfig()
	sanEncode := config.NewConfigBuilder().WithInputFormat(config.SANInput).Build()
	decode := config.NewConfigBuilder().WithMode(config.DecodeMode).Build()

	tests := []struct {
		name     string
		cfg      *config.Config
		line     string
		wantCode string
		wantErr  error
	}{
		{"encode", encode, "c2c4", "a", nil},
		{"encode empty", encode, "", "", nil},
		{"encode SAN", sanEncode, "1. c4 *", "a", nil},
		{"decode", decode, "KS", "KS", nil},
		{"unreachable move", encode, "e2e5", "", chesserrors.ErrIllegalMove},
		{"bad move text", encode, "e2-e4", "", chesserrors.ErrIllegalFormat},
		{"illegal SAN", sanEncode, "1. e5", "", chesserrors.ErrIllegalMove},
		{"ambiguous code", decode, "S", "", chesserrors.ErrIllegalMove},
		{"bad character", decode, "a+", "", chesserrors.ErrIllegalFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := processLine(worker.WorkItem{Line: tt.line, LineNumber: 7, Index: 2}, tt.cfg)
			if r.Index != 2 || r.LineNumber != 7 || r.Input != tt.line {
				t.Errorf("result context = %d, %d, %q", r.Index, r.LineNumber, r.Input)
			}
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, r.Err, tt.wantErr)
				if r.Game != nil {
					t.Error("Game should be nil on error")
				}
				return
			}
			testutil.AssertNoError(t, r.Err)
			if r.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", r.Code, tt.wantCode)
			}
			if r.Game == nil {
				t.Fatal("Game is nil")
			}
		})
	}
}

func TestProcessItems_ParallelMatchesSequential(t *testing.T) {
	var lines []string
	for i := 0; i < 5; i++ {
		lines = append(lines, sampleGames...)
	}
	lines = append(lines, "e2e5", "c2c3")

	for _, m := range []config.Mode{config.EncodeMode, config.DecodeMode} {
		t.Run(m.String(), func(t *testing.T) {
			input := lines
			if m == config.DecodeMode {
				seq, _, _ := runLines(t, config.NewConfig(), lines)
				input = strings.Split(strings.TrimSuffix(seq, "\n"), "\n")
			}

			sequential := config.NewConfigBuilder().WithMode(m).WithWorkers(1).Build()
			parallel := config.NewConfigBuilder().WithMode(m).WithWorkers(4).Build()

			seqOut, _, seqStats := runLines(t, sequential, input)
			parOut, _, parStats := runLines(t, parallel, input)

			testutil.AssertEqual(t, parOut, seqOut)
			testutil.AssertEqual(t, parStats, seqStats)
		})
	}
}

func TestProcessItems_Encode(t *testing.T) {
	out, log, stats := runLines(t, config.NewConfig(), []string{"c2c3", "e2e5", "c2c4"})

	testutil.AssertEqual(t, out, "KS\na\n")
	testutil.AssertEqual(t, stats, Stats{Lines: 3, Output: 2, Errors: 1})
	testutil.AssertContains(t, log, "line 2:")
}

func TestProcessItems_Decode(t *testing.T) {
	cfg := config.NewConfigBuilder().WithMode(config.DecodeMode).WithNotation(config.SAN).Build()
	out, _, stats := runLines(t, cfg, []string{"TuCU2BS-tDL8_EA"})

	testutil.AssertEqual(t, out, "1. d3 g6 2. Be3 Bg7 3. Nc3 Nf6 4. Qd2 O-O 5. O-O-O\n")
	testutil.AssertEqual(t, stats, Stats{Lines: 1, Output: 1})
}

// codes encodes each move list and joins the results as output lines.
func codes(t *testing.T, lines ...string) string {
	t.Helper()
	var sb strings.Builder
	for _, line := range lines {
		code, err := codec.EncodeText(line)
		testutil.AssertNoError(t, err)
		sb.WriteString(code + "\n")
	}
	return sb.String()
}

func TestProcessItems_Duplicates(t *testing.T) {
	lines := []string{"e2e4", "g1f3 g8f6 b1c3", "e2e4", "b1c3 g8f6 g1f3", "d2d4"}

	tests := []struct {
		name       string
		byPosition bool
		wantOut    []string
		wantDups   string
		wantStats  Stats
	}{
		{
			name:      "exact",
			wantOut:   []string{"e2e4", "g1f3 g8f6 b1c3", "b1c3 g8f6 g1f3", "d2d4"},
			wantDups:  "e2e4\n",
			wantStats: Stats{Lines: 5, Output: 4, Duplicates: 1},
		},
		{
			name:       "by position",
			byPosition: true,
			wantOut:    []string{"e2e4", "g1f3 g8f6 b1c3", "d2d4"},
			wantDups:   "e2e4\nb1c3 g8f6 g1f3\n",
			wantStats:  Stats{Lines: 5, Output: 3, Duplicates: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dups bytes.Buffer
			cfg := config.NewConfigBuilder().
				WithDuplicateSuppression(true).
				WithPositionalDuplicates(tt.byPosition).
				Build()
			cfg.Duplicate.DuplicateFile = &dups

			out, _, stats := runLines(t, cfg, lines)
			testutil.AssertEqual(t, out, codes(t, tt.wantOut...))
			testutil.AssertEqual(t, dups.String(), tt.wantDups)
			testutil.AssertEqual(t, stats, tt.wantStats)
		})
	}
}

func TestProcessItems_StopOnError(t *testing.T) {
	lines := append([]string{"c2c4", "e2e5"}, sampleGames...)

	for _, n := range []int{1, 4} {
		cfg := config.NewConfigBuilder().WithWorkers(n).StopOnError(true).Build()
		out, _, stats := runLines(t, cfg, lines)

		if out != "a\n" {
			t.Errorf("workers=%d: output = %q, want %q", n, out, "a\n")
		}
		testutil.AssertEqual(t, stats, Stats{Lines: 2, Output: 1, Errors: 1})
	}
}

func TestProcessItems_JSONIncludesErrors(t *testing.T) {
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	out, _, _ := runLines(t, cfg, []string{"c2c4", "e2e5"})

	testutil.AssertContains(t, out, `"code": "a"`)
	testutil.AssertContains(t, out, `"error": "`)
	testutil.AssertContains(t, out, `"line": 2`)
}

func TestProcessItems_Verbose(t *testing.T) {
	cfg := config.NewConfigBuilder().WithVerbosity(2).Build()
	_, log, _ := runLines(t, cfg, []string{"c2c4"})

	testutil.AssertContains(t, log, "line 1: 1 plies, a")
}

func TestLastMoveSquares(t *testing.T) {
	r := processLine(worker.WorkItem{Line: "e2e4 e7e5 g1f3"}, config.NewConfig())
	testutil.AssertNoError(t, r.Err)
	testutil.AssertEqual(t, lastMoveSquares(r.Game), []chess.Square{chess.G1, chess.F3})

	empty := processLine(worker.WorkItem{Line: ""}, config.NewConfig())
	if got := lastMoveSquares(empty.Game); got != nil {
		t.Errorf("lastMoveSquares(empty game) = %v, want nil", got)
	}
}
