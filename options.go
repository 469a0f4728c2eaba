package lgrep

// OutputFormat selects how the matched lines are rendered.
type OutputFormat int

const (
	// FormatFullLine prints the whole matched line (the default).
	FormatFullLine OutputFormat = iota

	// FormatLineNumbered prints "<line number>: <line>".
	FormatLineNumbered

	// FormatMatchOnly prints every matched fragment on its own line.
	FormatMatchOnly

	// FormatCountOnly prints nothing per matched line;
	// only the final total is reported by the caller.
	FormatCountOnly
)

func (f OutputFormat) String() string {
	switch f {
	case FormatFullLine:
		return "full-line"
	case FormatLineNumbered:
		return "line-numbered"
	case FormatMatchOnly:
		return "match-only"
	case FormatCountOnly:
		return "count-only"
	default:
		return "unknown"
	}
}

// Options describes the user-visible search switches.
//
// The flags are independent of each other: enabling several at once is legal
// and is resolved into a single output format by OutputFormat.
type Options struct {
	// ShowLineNumber prefixes every printed line with its 1-based number.
	ShowLineNumber bool

	// CountOnly suppresses per-line output; only the total is reported.
	CountOnly bool

	// CaseIgnore makes the whole pattern match case-insensitively.
	CaseIgnore bool

	// MatchOnly prints the matched fragments instead of whole lines.
	MatchOnly bool
}

// OutputFormat resolves the enabled flags into exactly one output format.
// The priority is fixed: CountOnly beats MatchOnly beats ShowLineNumber;
// when no flag is set the full line is printed.
func (opts Options) OutputFormat() OutputFormat {
	switch {
	case opts.CountOnly:
		return FormatCountOnly
	case opts.MatchOnly:
		return FormatMatchOnly
	case opts.ShowLineNumber:
		return FormatLineNumbered
	default:
		return FormatFullLine
	}
}
