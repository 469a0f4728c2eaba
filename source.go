package lgrep

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single input line for reader-backed sources.
// The bufio.Scanner default of 64KB is too small for grepping log files.
const maxLineSize = 1024 * 1024

// LineSource supplies input lines one at a time.
//
// Implementations return lines without their trailing line terminator,
// io.EOF after the final line, and any other error for a failed read.
type LineSource interface {
	ReadLine() (string, error)
}

type readerSource struct {
	scanner *bufio.Scanner
}

// NewReaderSource adapts r into a LineSource.
// Lines longer than 1MB surface as a read error (bufio.ErrTooLong).
func NewReaderSource(r io.Reader) LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &readerSource{scanner: scanner}
}

func (s *readerSource) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	// bufio.ScanLines strips "\r\n" and "\n", but a line can still carry
	// stray trailing carriage returns (e.g. "a\r\r\n").
	return strings.TrimRight(s.scanner.Text(), "\r"), nil
}
