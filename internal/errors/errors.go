// Package errors provides sentinel errors and error types for chesscodec.
// It defines the three recoverable error kinds of the engine and codec and a
// structured error type that preserves ply context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the recoverable failure conditions.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrIllegalConfig indicates a manually set up position that violates an
	// invariant (missing or duplicate king, pawn on a back rank, inconsistent
	// en-passant target).
	ErrIllegalConfig = errors.New("illegal configuration")

	// ErrIllegalFormat indicates malformed move, square, promotion or
	// compressed text.
	ErrIllegalFormat = errors.New("illegal format")

	// ErrIllegalMove indicates a move the codec cannot represent: its origin
	// does not reach its destination, or the origin cannot be resolved.
	ErrIllegalMove = errors.New("illegal move")
)

// PlyError wraps errors with replay context: the ply at which the error was
// found, the side to move and the move text. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type PlyError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number (0 if not applicable)
	Colour   string // Side to move at that ply (if known)
	MoveText string // The move or code text that caused the error (if known)
}

// Error returns a formatted error message including all available context.
func (e *PlyError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("move %d", (e.Ply+1)/2))
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PlyError wrapper.
func (e *PlyError) Unwrap() error {
	return e.Err
}

// Is reports whether err matches target; it re-exports the standard library
// function so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports errors.As for callers that import only this package.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Newf creates an error of the given kind with a formatted description.
// The kind stays inspectable with errors.Is().
func Newf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
