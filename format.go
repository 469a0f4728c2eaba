package lgrep

import (
	"fmt"
	"io"
	"strconv"
)

// FormatLines renders the result in the given format and returns the output
// lines to print, in order.
//
// FormatCountOnly renders nothing: the result still counts toward the
// caller's total. FormatMatchOnly renders one line per span.
func (r *SearchResult) FormatLines(format OutputFormat) []string {
	switch format {
	case FormatCountOnly:
		return nil
	case FormatMatchOnly:
		return r.MatchTexts()
	case FormatLineNumbered:
		return []string{strconv.Itoa(r.LineNumber) + ": " + r.Line}
	default:
		return []string{r.Line}
	}
}

// Format writes the rendered lines to w, one per line.
// A failed write is reported as a *WriteError.
func (r *SearchResult) Format(w io.Writer, format OutputFormat) error {
	for _, line := range r.FormatLines(format) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}
