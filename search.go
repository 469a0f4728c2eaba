// Package lgrep implements a line-oriented regexp search over a stream of
// input lines.
//
// A Searcher compiles its pattern once and can start any number of scans.
// Every scan is lazy: it pulls one line at a time from a LineSource and
// yields a SearchResult per line that contains at least one match, so the
// memory footprint stays constant relative to the input size.
package lgrep

import (
	"io"
	"regexp"
)

// Span is one match occurrence inside a line, as half-open byte offsets
// into the line text: line[Start:End] is the matched fragment.
type Span struct {
	Start int
	End   int
}

// SearchResult is a single matched line together with every match inside it.
type SearchResult struct {
	// LineNumber is 1-based and counts every line read, matched or not.
	LineNumber int

	// Line is the line text without its trailing line terminator.
	Line string

	// Spans lists all non-overlapping matches in left-to-right order.
	// It is never empty: lines without matches produce no result.
	Spans []Span
}

// MatchTexts returns the matched fragments, one per span, in span order.
func (r *SearchResult) MatchTexts() []string {
	texts := make([]string, len(r.Spans))
	for i, s := range r.Spans {
		texts[i] = r.Line[s.Start:s.End]
	}
	return texts
}

// Searcher holds a compiled pattern and the output format resolved from the
// construction options. It is immutable after NewSearcher returns.
type Searcher struct {
	re     *regexp.Regexp
	format OutputFormat
}

// NewSearcher compiles pattern once.
//
// When opts.CaseIgnore is set, the pattern is prefixed with the (?i) flag so
// that the entire expression matches case-insensitively; case folding never
// strips diacritics. A pattern that fails to compile is reported as a
// *PatternError that matches ErrInvalidPattern.
func NewSearcher(pattern string, opts Options) (*Searcher, error) {
	expr := pattern
	if opts.CaseIgnore {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &Searcher{re: re, format: opts.OutputFormat()}, nil
}

// OutputFormat returns the format resolved from the construction options.
func (s *Searcher) OutputFormat() OutputFormat { return s.format }

// Search starts a lazy scan over src.
// Multiple scans can be started from the same Searcher, but every Scan
// handle is single-use and owns no state beyond the current line.
func (s *Searcher) Search(src LineSource) *Scan {
	return &Scan{searcher: s, src: src}
}

// SearchReader is shorthand for Search(NewReaderSource(r)).
func (s *Searcher) SearchReader(r io.Reader) *Scan {
	return s.Search(NewReaderSource(r))
}

// searchLine collects all non-overlapping matches inside line.
// It returns nil when the line has no matches.
//
// Match enumeration follows the leftmost semantics of regexp.FindAll:
// every search resumes right after the previous match end, and zero-length
// matches still advance the position, so the result is always finite.
func (s *Searcher) searchLine(lineNumber int, line string) *SearchResult {
	idx := s.re.FindAllStringIndex(line, -1)
	if idx == nil {
		return nil
	}
	spans := make([]Span, len(idx))
	for i, pair := range idx {
		spans[i] = Span{Start: pair[0], End: pair[1]}
	}
	return &SearchResult{
		LineNumber: lineNumber,
		Line:       line,
		Spans:      spans,
	}
}

// Scan is a single-use cursor over the matching lines of one source.
//
// Usage follows the bufio.Scanner shape: call Next until it returns false,
// read the current match with Result, then check Err to tell a drained
// source apart from a failed read.
type Scan struct {
	searcher *Searcher
	src      LineSource

	lineNumber int
	result     *SearchResult
	err        error
	done       bool
}

// Next advances the scan to the next matching line.
//
// It returns false when the source is exhausted or when reading a line
// failed; the scan halts at the first read error and yields nothing past
// the failure point. Abandoning the scan early is always safe.
func (sc *Scan) Next() bool {
	if sc.done {
		return false
	}
	for {
		line, err := sc.src.ReadLine()
		if err == io.EOF {
			sc.done = true
			sc.result = nil
			return false
		}
		sc.lineNumber++
		if err != nil {
			sc.done = true
			sc.result = nil
			sc.err = &ReadError{LineNumber: sc.lineNumber, Err: err}
			return false
		}
		if result := sc.searcher.searchLine(sc.lineNumber, line); result != nil {
			sc.result = result
			return true
		}
	}
}

// Result returns the current match.
// It is valid after Next returns true and until the next call to Next.
func (sc *Scan) Result() *SearchResult { return sc.result }

// Err returns the *ReadError that halted the scan, if any.
// A nil Err after Next returned false means the source was fully drained.
func (sc *Scan) Err() error { return sc.err }
