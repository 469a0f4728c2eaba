package lgrep

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern indicates that the search pattern failed to compile.
// Errors returned by NewSearcher report true for errors.Is(err, ErrInvalidPattern).
var ErrInvalidPattern = errors.New("invalid pattern")

// PatternError wraps a pattern compilation failure with the offending pattern.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying regexp syntax error.
func (e *PatternError) Unwrap() error { return e.Err }

// Is matches PatternError against the ErrInvalidPattern sentinel.
func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }

// ReadError reports a line source failure.
// LineNumber is the 1-based position at which the read failed;
// a scan halts at the first read error (see Scan.Err).
type ReadError struct {
	LineNumber int
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read line %d: %v", e.LineNumber, e.Err)
}

// Unwrap returns the underlying source error.
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure to write formatted output to the sink.
// It belongs to the printing side and never originates from a scan itself.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write output: %v", e.Err)
}

// Unwrap returns the underlying sink error.
func (e *WriteError) Unwrap() error { return e.Err }
