// Package text measures and reshapes cell content that may carry ANSI escape sequences
package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// condition is fixed so widths do not depend on the locale of the process.
// Ambiguous East-Asian characters count as one column.
var condition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// Strip removes every escape sequence from s
func Strip(s string) string {
	if strings.IndexByte(s, ansi.ESC) < 0 && !strings.ContainsAny(s, "\x9b\x9d") {
		return s
	}
	return ansi.Strip(s)
}

// Lines splits s into lines. A trailing carriage return is dropped from each line.
func Lines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineWidth returns the visible width of a single line
func LineWidth(line string) int {
	return visibleWidth(Strip(line))
}

// Width returns the widest visible line of s
func Width(s string) int {
	widest := 0
	for _, line := range Lines(s) {
		if w := LineWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// Height returns the number of lines in s. The empty string is one line.
func Height(s string) int {
	return strings.Count(s, "\n") + 1
}

// MaxLineWidth returns the widest line of an already split block
func MaxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := LineWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// graphemeWidth measures one grapheme cluster
func graphemeWidth(cluster string) int {
	return condition.StringWidth(cluster)
}

// visibleWidth sums grapheme widths of plain text
func visibleWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += graphemeWidth(g.Str())
	}
	return width
}
