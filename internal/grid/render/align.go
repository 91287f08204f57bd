package render

import (
	"strings"

	"github.com/kozmod/tabled/internal/grid/config"
	"github.com/kozmod/tabled/internal/grid/text"
)

// Measure returns the visible width of a line, ignoring escape sequences
func Measure(s string) int {
	return text.LineWidth(s)
}

// PadLeft adds fill to the left of a string
func PadLeft(s string, width int, fill rune) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return repeat(fill, width-currentWidth) + s
}

// PadRight adds fill to the right of a string
func PadRight(s string, width int, fill rune) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return s + repeat(fill, width-currentWidth)
}

// PadCenter centers a string within the given width, the odd column going right
func PadCenter(s string, width int, fill rune) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	padding := width - currentWidth
	leftPadding := padding / 2
	rightPadding := padding - leftPadding
	return repeat(fill, leftPadding) + s + repeat(fill, rightPadding)
}

// Pad places s within width according to align
func Pad(s string, width int, align config.Align, fill rune) string {
	switch align {
	case config.AlignCenter:
		return PadCenter(s, width, fill)
	case config.AlignEnd:
		return PadLeft(s, width, fill)
	default:
		return PadRight(s, width, fill)
	}
}

// Offset returns how many blank rows or columns go before content of size n within size
func Offset(n, size int, align config.Align) int {
	free := size - n
	if free <= 0 {
		return 0
	}
	switch align {
	case config.AlignCenter:
		return free / 2
	case config.AlignEnd:
		return free
	default:
		return 0
	}
}

func repeat(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}
