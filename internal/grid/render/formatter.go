package render

import (
	"strings"

	"github.com/kozmod/tabled/internal/grid/config"
	"github.com/kozmod/tabled/internal/grid/layout"
	"github.com/kozmod/tabled/internal/grid/text"
)

// Prepare splits cell content into lines, expanding tabs and trimming when configured.
// Styling left open by the content is closed at the end of each line so it never reaches the borders.
func Prepare(content string, r config.Resolved) []string {
	content = text.ExpandTabs(content, r.TabSize)
	lines := text.Lines(content)
	if r.Trim {
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
	}
	return text.Seal(lines)
}

// Reshape wraps or truncates lines wider than limit according to the wrap policy.
// A limit of zero or less leaves wrapped lines alone.
func Reshape(lines []string, r config.Resolved, limit int) []string {
	switch r.Wrap {
	case config.WrapWord:
		return text.WrapLines(lines, limit, r.KeepWords)
	case config.WrapTruncate:
		if limit < 0 {
			limit = 0
		}
		return text.TruncateLines(lines, limit, r.Suffix)
	default:
		return lines
	}
}

// Require computes the space the prepared lines need, padding included
func Require(lines []string, r config.Resolved) layout.Requirement {
	if r.MaxWidth > 0 {
		lines = Reshape(lines, r, r.MaxWidth)
	}

	width := text.MaxLineWidth(lines)
	if r.MinWidth > width {
		width = r.MinWidth
	}
	return layout.Requirement{
		Width:  width + r.Padding.Horizontal(),
		Height: len(lines) + r.Padding.Vertical(),
	}
}

// FormatCell lays prepared lines out as exactly h lines of width w.
// Lines left wider than the content width by WrapNone overflow.
func FormatCell(lines []string, w, h int, r config.Resolved) []string {
	contentW := w - r.Padding.Horizontal()
	if contentW < 0 {
		contentW = 0
	}
	contentH := h - r.Padding.Vertical()
	if contentH < 0 {
		contentH = 0
	}

	limit := contentW
	if r.MaxWidth > 0 && r.MaxWidth < limit {
		limit = r.MaxWidth
	}
	if r.Wrap != config.WrapNone {
		lines = Reshape(lines, r, limit)
	}
	if len(lines) > contentH {
		lines = lines[:contentH]
	}

	aligned := alignLines(lines, contentW, r)
	top := Offset(len(aligned), contentH, r.AlignV)
	blank := repeat(' ', contentW)

	out := make([]string, 0, h)
	fillRow := repeat(r.PaddingFill, w)
	for i := 0; i < r.Padding.Top && len(out) < h; i++ {
		out = append(out, fillRow)
	}

	left := repeat(r.PaddingFill, r.Padding.Left)
	right := repeat(r.PaddingFill, r.Padding.Right)
	for i := 0; i < contentH; i++ {
		line := blank
		if j := i - top; j >= 0 && j < len(aligned) {
			line = aligned[j]
		}
		out = append(out, left+line+right)
	}

	for len(out) < h {
		out = append(out, fillRow)
	}
	return out
}

// alignLines pads every line to width following the alignment strategy
func alignLines(lines []string, width int, r config.Resolved) []string {
	out := make([]string, len(lines))
	if r.AlignStrategy == config.PerCell {
		block := text.MaxLineWidth(lines)
		for i, line := range lines {
			out[i] = Pad(PadRight(line, block, ' '), width, r.AlignH, ' ')
		}
		return out
	}

	for i, line := range lines {
		out[i] = Pad(line, width, r.AlignH, ' ')
	}
	return out
}
