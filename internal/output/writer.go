package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscodec-go/internal/config"
)

// GameWriter is the interface for writing processed lines to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteEntry writes a single processed line to the output.
	WriteEntry(e Entry) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer matching the configured format.
func NewWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes entries as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteEntry writes an entry immediately.
func (tw *TextWriter) WriteEntry(e Entry) error {
	OutputEntry(e, tw.cfg, tw.w)
	return nil
}

// Flush is a no-op as text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes entries in JSON format.
// It buffers entries and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	entries []Entry
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteEntry buffers an entry for JSON output.
func (jw *JSONWriter) WriteEntry(e Entry) error {
	jw.entries = append(jw.entries, e)
	return nil
}

// Flush writes all buffered entries as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.entries) == 0 {
		return nil
	}

	output := &JSONOutput{
		Games: make([]*JSONGame, 0, len(jw.entries)),
	}
	for _, e := range jw.entries {
		output.Games = append(output.Games, EntryToJSON(e, jw.cfg))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(output)

	// Clear buffer after writing
	jw.entries = jw.entries[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
