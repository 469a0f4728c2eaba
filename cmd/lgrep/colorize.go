package main

import (
	"fmt"
	"strings"

	"github.com/quasilyte/lgrep"
)

var ansiColorMap = map[string]string{
	"dark-red": "31m",
	"red":      "31;1m",

	"dark-green": "32m",
	"green":      "32;1m",

	"dark-blue": "34m",
	"blue":      "34;1m",

	"dark-magenta": "35m",
	"magenta":      "35;1m",
}

func colorizeText(s, color string) (string, error) {
	switch color {
	case "", "white":
		return s, nil
	default:
		escape, ok := ansiColorMap[color]
		if !ok {
			return "", fmt.Errorf("unsupported color: %s", color)
		}
		return "\033[" + escape + s + "\033[0m", nil
	}
}

// colorizeSpans highlights every matched span of line with the given color,
// leaving the text between the spans untouched.
func colorizeSpans(line string, spans []lgrep.Span, color string) (string, error) {
	if color == "" || color == "white" {
		return line, nil
	}
	var buf strings.Builder
	prev := 0
	for _, span := range spans {
		buf.WriteString(line[prev:span.Start])
		colored, err := colorizeText(line[span.Start:span.End], color)
		if err != nil {
			return "", err
		}
		buf.WriteString(colored)
		prev = span.End
	}
	buf.WriteString(line[prev:])
	return buf.String(), nil
}
