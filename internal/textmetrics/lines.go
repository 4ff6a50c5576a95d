// Package textmetrics derives layout sizing inputs from raw layer text.
package textmetrics

import (
	"strings"

	"github.com/rivo/uniseg"
)

// CountLines returns the number of lines in text: the newline count plus
// one. The empty string is a single empty line.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// MaxLineWidth returns the display width in cells of the widest line,
// grapheme-aware, so combining marks and wide runes size correctly.
func MaxLineWidth(text string) int {
	width := 0
	for _, line := range strings.Split(text, "\n") {
		if w := uniseg.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}

// Metrics carries the derived sizing values for one text snapshot.
type Metrics struct {
	// Lines is the line count, always at least 1.
	Lines int

	// MaxWidth is the display width of the widest line in cells.
	MaxWidth int
}

// Measure computes all metrics for text in one pass over its lines.
func Measure(text string) Metrics {
	return Metrics{
		Lines:    CountLines(text),
		MaxWidth: MaxLineWidth(text),
	}
}
