package config

// Notation is the move notation used when printing decoded games.
type Notation int

const (
	LongAlgebraic Notation = iota // e2e4, e1h1 for castling
	SAN                           // Standard Algebraic Notation
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Notation of printed moves
	Notation Notation

	// MaxLineLength wraps move text; 0 disables wrapping
	MaxLineLength uint

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowFEN prints the FEN after each ply
	ShowFEN bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepChecks controls whether check symbols (+) are included
	KeepChecks bool

	// ShowInput echoes the input line before its result
	ShowInput bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:        LongAlgebraic,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepChecks:      true,
	}
}
