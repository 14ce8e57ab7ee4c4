package config

// InputFormat is the notation of move-list input lines.
type InputFormat int

const (
	LongAlgebraicInput InputFormat = iota // e2e4 e7e5 e1h1
	SANInput                              // 1. e4 e5 2. O-O
)

// InputConfig holds settings for reading input lines.
type InputConfig struct {
	// Format of move lists when encoding.
	Format InputFormat

	// CommentPrefix marks lines to skip; empty disables comments.
	CommentPrefix string

	// KeepBlankLines treats an empty line as the empty game instead of
	// skipping it.
	KeepBlankLines bool
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{
		Format:        LongAlgebraicInput,
		CommentPrefix: "#",
	}
}
