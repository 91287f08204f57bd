// Package config holds the layered settings and border styles of a table
package config

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/kozmod/tabled/internal/grid/text"
)

var (
	// ErrInvalidMargin is returned for a margin with a negative side
	ErrInvalidMargin = errors.New("invalid margin")
	// ErrFillWidth is returned for a padding or margin fill that is not one column wide
	ErrFillWidth = errors.New("fill must be one column wide")
)

// Align positions content inside the space of a cell
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

var alignNames = map[string]Align{
	"start":  AlignStart,
	"left":   AlignStart,
	"top":    AlignStart,
	"center": AlignCenter,
	"middle": AlignCenter,
	"end":    AlignEnd,
	"right":  AlignEnd,
	"bottom": AlignEnd,
}

// ParseAlign converts a name such as "left", "center" or "bottom" to an Align
func ParseAlign(name string) (Align, error) {
	a, ok := alignNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return AlignStart, errors.Errorf("unknown alignment %q", name)
	}
	return a, nil
}

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// AlignStrategy selects whether lines of a cell are aligned one by one or as a block
type AlignStrategy int

const (
	// PerLine aligns each line independently
	PerLine AlignStrategy = iota
	// PerCell aligns the block by its widest line and keeps relative indentation
	PerCell
)

// ParseAlignStrategy converts "line" or "cell" to an AlignStrategy
func ParseAlignStrategy(name string) (AlignStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "line", "per-line":
		return PerLine, nil
	case "cell", "per-cell":
		return PerCell, nil
	}
	return PerLine, errors.Errorf("unknown alignment strategy %q", name)
}

// WrapPolicy decides what happens to lines wider than the content width
type WrapPolicy int

const (
	// WrapNone emits content as-is, even if it overflows
	WrapNone WrapPolicy = iota
	// WrapWord breaks long lines into continuation lines
	WrapWord
	// WrapTruncate cuts long lines and appends a suffix
	WrapTruncate
)

// ParseWrapPolicy converts "none", "wrap" or "truncate" to a WrapPolicy
func ParseWrapPolicy(name string) (WrapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return WrapNone, nil
	case "wrap":
		return WrapWord, nil
	case "truncate":
		return WrapTruncate, nil
	}
	return WrapNone, errors.Errorf("unknown wrap policy %q", name)
}

func (w WrapPolicy) String() string {
	switch w {
	case WrapWord:
		return "wrap"
	case WrapTruncate:
		return "truncate"
	default:
		return "none"
	}
}

// Padding is the space around a cell's content
type Padding struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// Horizontal returns the left plus right padding
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the top plus bottom padding
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}

// Validate rejects negative padding
func (p Padding) Validate() error {
	if p.Top < 0 || p.Bottom < 0 || p.Left < 0 || p.Right < 0 {
		return errors.Errorf("padding must not be negative: %+v", p)
	}
	return nil
}

// Margin is the space around the whole table, filled with a rune per side
type Margin struct {
	Top    int
	Bottom int
	Left   int
	Right  int

	TopFill    rune
	BottomFill rune
	LeftFill   rune
	RightFill  rune
}

// IsZero reports whether the margin adds nothing
func (m Margin) IsZero() bool {
	return m.Top == 0 && m.Bottom == 0 && m.Left == 0 && m.Right == 0
}

// fill returns r or a space when r is unset
func fill(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}

// Validate rejects negative sides and fills that are not one column wide
func (m Margin) Validate() error {
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return errors.Wrapf(ErrInvalidMargin, "sides must not be negative: top %d, bottom %d, left %d, right %d", m.Top, m.Bottom, m.Left, m.Right)
	}
	for _, r := range []rune{m.TopFill, m.BottomFill, m.LeftFill, m.RightFill} {
		if err := checkFill(r); err != nil {
			return errors.Wrap(err, "margin")
		}
	}
	return nil
}

// checkFill rejects fills that would break the column count of a line
func checkFill(r rune) error {
	if w := text.LineWidth(string(fill(r))); w != 1 {
		return errors.Wrapf(ErrFillWidth, "%q is %d columns", r, w)
	}
	return nil
}

// Fills returns the fill runes, spaces where unset
func (m Margin) Fills() (top, bottom, left, right rune) {
	return fill(m.TopFill), fill(m.BottomFill), fill(m.LeftFill), fill(m.RightFill)
}
