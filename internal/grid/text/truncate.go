package text

import "github.com/charmbracelet/x/ansi"

// Truncate cuts a line to width visible columns, ending it with suffix.
// Escape sequences are kept and any active styling is closed before the suffix.
// When the suffix alone is wider than width the suffix itself is cut.
func Truncate(line string, width int, suffix string) string {
	if LineWidth(line) <= width {
		return line
	}
	if width <= 0 {
		return ""
	}

	limit := width - LineWidth(suffix)
	if limit < 0 {
		return cut(suffix, width)
	}
	return cut(line, limit) + suffix
}

// TruncateLines truncates every line of a block
func TruncateLines(lines []string, width int, suffix string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Truncate(line, width, suffix)
	}
	return out
}

// cut keeps the longest prefix of line that fits into width and closes what is left open
func cut(line string, width int) string {
	kept := ansi.Truncate(line, width, "")
	// ansi measures some graphemes narrower than LineWidth does
	for n := width - 1; n >= 0 && LineWidth(kept) > width; n-- {
		kept = ansi.Truncate(line, n, "")
	}
	return kept + StateAt(kept).Close()
}
