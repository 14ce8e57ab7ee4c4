package config

import "io"

// DuplicateConfig holds settings for duplicate game detection. Two input
// lines are duplicates when they encode to the same compressed text, or
// with ByPosition set, when their games end in the same position.
type DuplicateConfig struct {
	// Suppress drops games already seen from the output
	Suppress bool

	// ByPosition compares final positions instead of compressed texts
	ByPosition bool

	// DuplicateFile receives the suppressed input lines (nil discards them)
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
