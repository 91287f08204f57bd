package config

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Symbols is the glyph set of a border style
type Symbols struct {
	Horizontal rune
	Vertical   rune

	TopLeft  rune
	TopMid   rune
	TopRight rune

	MidLeft  rune
	Cross    rune
	MidRight rune

	BottomLeft  rune
	BottomMid   rune
	BottomRight rune
}

// Lines selects which border lines are drawn
type Lines struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
	// InnerHorizontal draws a line between every two rows
	InnerHorizontal bool
	// InnerVertical draws a line between every two columns
	InnerVertical bool
	// Header draws the line below the first row even when InnerHorizontal is off
	Header bool
}

// Style is a named glyph set together with its draw flags
type Style struct {
	Name    string
	Symbols Symbols
	Lines   Lines
}

var allLines = Lines{Top: true, Bottom: true, Left: true, Right: true, InnerHorizontal: true, InnerVertical: true}

// StyleNone draws no borders at all
func StyleNone() Style {
	return Style{Name: "none"}
}

// StyleBlank separates columns with spaces
func StyleBlank() Style {
	return Style{
		Name:    "blank",
		Symbols: uniform(' ', ' ', ' '),
		Lines:   Lines{InnerVertical: true},
	}
}

// StyleASCII draws every line with '-', '|' and '+'
func StyleASCII() Style {
	return Style{
		Name:    "ascii",
		Symbols: uniform('-', '|', '+'),
		Lines:   allLines,
	}
}

// StylePsql draws inner columns and the header line only
func StylePsql() Style {
	return Style{
		Name:    "psql",
		Symbols: uniform('-', '|', '+'),
		Lines:   Lines{InnerVertical: true, Header: true},
	}
}

// StyleMarkdown renders a markdown table
func StyleMarkdown() Style {
	return Style{
		Name:    "markdown",
		Symbols: uniform('-', '|', '|'),
		Lines:   Lines{Left: true, Right: true, InnerVertical: true, Header: true},
	}
}

// StyleModern draws thin box-drawing lines everywhere
func StyleModern() Style {
	return Style{
		Name: "modern",
		Symbols: Symbols{
			Horizontal: '─', Vertical: '│',
			TopLeft: '┌', TopMid: '┬', TopRight: '┐',
			MidLeft: '├', Cross: '┼', MidRight: '┤',
			BottomLeft: '└', BottomMid: '┴', BottomRight: '┘',
		},
		Lines: allLines,
	}
}

// StyleRounded draws thin lines with round corners and only the header separator inside
func StyleRounded() Style {
	s := StyleModern()
	s.Name = "rounded"
	s.Symbols.TopLeft, s.Symbols.TopRight = '╭', '╮'
	s.Symbols.BottomLeft, s.Symbols.BottomRight = '╰', '╯'
	s.Lines.InnerHorizontal = false
	s.Lines.Header = true
	return s
}

// StyleHeavy draws thick box-drawing lines
func StyleHeavy() Style {
	return Style{
		Name: "heavy",
		Symbols: Symbols{
			Horizontal: '━', Vertical: '┃',
			TopLeft: '┏', TopMid: '┳', TopRight: '┓',
			MidLeft: '┣', Cross: '╋', MidRight: '┫',
			BottomLeft: '┗', BottomMid: '┻', BottomRight: '┛',
		},
		Lines: allLines,
	}
}

// StyleDouble draws double box-drawing lines
func StyleDouble() Style {
	return Style{
		Name: "double",
		Symbols: Symbols{
			Horizontal: '═', Vertical: '║',
			TopLeft: '╔', TopMid: '╦', TopRight: '╗',
			MidLeft: '╠', Cross: '╬', MidRight: '╣',
			BottomLeft: '╚', BottomMid: '╩', BottomRight: '╝',
		},
		Lines: allLines,
	}
}

// StyleDots draws lines with dots and colons
func StyleDots() Style {
	return Style{
		Name: "dots",
		Symbols: Symbols{
			Horizontal: '.', Vertical: ':',
			TopLeft: '.', TopMid: '.', TopRight: '.',
			MidLeft: ':', Cross: ':', MidRight: ':',
			BottomLeft: ':', BottomMid: ':', BottomRight: ':',
		},
		Lines: allLines,
	}
}

// uniform builds a glyph set using one rune for every junction
func uniform(horizontal, vertical, junction rune) Symbols {
	return Symbols{
		Horizontal: horizontal, Vertical: vertical,
		TopLeft: junction, TopMid: junction, TopRight: junction,
		MidLeft: junction, Cross: junction, MidRight: junction,
		BottomLeft: junction, BottomMid: junction, BottomRight: junction,
	}
}

var styles = map[string]func() Style{
	"none":     StyleNone,
	"blank":    StyleBlank,
	"ascii":    StyleASCII,
	"psql":     StylePsql,
	"markdown": StyleMarkdown,
	"modern":   StyleModern,
	"rounded":  StyleRounded,
	"heavy":    StyleHeavy,
	"double":   StyleDouble,
	"dots":     StyleDots,
}

// StyleByName returns a preset style
func StyleByName(name string) (Style, error) {
	ctor, ok := styles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Style{}, errors.Errorf("unknown border style %q (available: %s)", name, strings.Join(StyleNames(), ", "))
	}
	return ctor(), nil
}

// StyleNames lists the preset styles
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CellBorder overrides border glyphs on the edges of one cell
type CellBorder struct {
	Top    *rune
	Bottom *rune
	Left   *rune
	Right  *rune

	TopLeft     *rune
	TopRight    *rune
	BottomLeft  *rune
	BottomRight *rune
}

// Merge overlays every glyph set in o
func (b CellBorder) Merge(o CellBorder) CellBorder {
	b.Top = pick(b.Top, o.Top)
	b.Bottom = pick(b.Bottom, o.Bottom)
	b.Left = pick(b.Left, o.Left)
	b.Right = pick(b.Right, o.Right)
	b.TopLeft = pick(b.TopLeft, o.TopLeft)
	b.TopRight = pick(b.TopRight, o.TopRight)
	b.BottomLeft = pick(b.BottomLeft, o.BottomLeft)
	b.BottomRight = pick(b.BottomRight, o.BottomRight)
	return b
}

func pick(cur, over *rune) *rune {
	if over != nil {
		return over
	}
	return cur
}

// IsZero reports whether no glyph is overridden
func (b CellBorder) IsZero() bool {
	return b == CellBorder{}
}

// Glyph returns a pointer to r for use in a CellBorder
func Glyph(r rune) *rune {
	return &r
}

// FrameBorder builds an override drawing the whole frame of a cell with the given glyphs
func FrameBorder(horizontal, vertical, corner rune) CellBorder {
	return CellBorder{
		Top: Glyph(horizontal), Bottom: Glyph(horizontal),
		Left: Glyph(vertical), Right: Glyph(vertical),
		TopLeft: Glyph(corner), TopRight: Glyph(corner),
		BottomLeft: Glyph(corner), BottomRight: Glyph(corner),
	}
}

// Tint decorates a run of border glyphs, usually with color
type Tint interface {
	Paint(s string) string
}

// TintFunc adapts a function to the Tint interface
type TintFunc func(string) string

// Paint calls f
func (f TintFunc) Paint(s string) string {
	return f(s)
}

// LipglossTint paints border glyphs with a lipgloss style
type LipglossTint struct {
	Style lipgloss.Style
}

// Paint renders s with the style
func (t LipglossTint) Paint(s string) string {
	return t.Style.Render(s)
}

// ColorTint paints with a foreground color such as "9" or "#ff8800"
func ColorTint(r *lipgloss.Renderer, color string) LipglossTint {
	style := lipgloss.NewStyle()
	if r != nil {
		style = r.NewStyle()
	}
	return LipglossTint{Style: style.Foreground(lipgloss.Color(color))}
}

// BorderColors holds an optional tint per class of border line
type BorderColors struct {
	Top             Tint
	Bottom          Tint
	Left            Tint
	Right           Tint
	InnerHorizontal Tint
	InnerVertical   Tint
}

// Horizontal returns the tint of the horizontal line at boundary b of a grid with rows rows
func (c BorderColors) Horizontal(b, rows int) Tint {
	switch {
	case b == 0:
		return c.Top
	case b == rows:
		return c.Bottom
	default:
		return c.InnerHorizontal
	}
}

// Vertical returns the tint of the vertical line at boundary b of a grid with cols columns
func (c BorderColors) Vertical(b, cols int) Tint {
	switch {
	case b == 0:
		return c.Left
	case b == cols:
		return c.Right
	default:
		return c.InnerVertical
	}
}

// Paint applies t to s when t is set
func Paint(t Tint, s string) string {
	if t == nil || s == "" {
		return s
	}
	return t.Paint(s)
}
