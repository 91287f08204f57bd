package config

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/kozmod/tabled/internal/grid/layout"
	"github.com/kozmod/tabled/internal/grid/text"
)

var (
	// ErrEntityOutOfBounds is returned for settings attached to a row, column or cell outside the grid
	ErrEntityOutOfBounds = errors.New("entity is outside the grid")
	// ErrSpanTarget is returned when a span is attached to anything but a single cell
	ErrSpanTarget = errors.New("span can only be set on a cell")
)

// Kind identifies what an Entity addresses
type Kind int

const (
	KindGlobal Kind = iota
	KindRow
	KindColumn
	KindCell
)

// Entity addresses the part of the grid a Settings value applies to
type Entity struct {
	Kind Kind
	Row  int
	Col  int
}

// Global addresses every cell
func Global() Entity {
	return Entity{Kind: KindGlobal}
}

// Row addresses every cell of row i
func Row(i int) Entity {
	return Entity{Kind: KindRow, Row: i}
}

// Column addresses every cell of column j
func Column(j int) Entity {
	return Entity{Kind: KindColumn, Col: j}
}

// Cell addresses the cell at row i and column j
func Cell(i, j int) Entity {
	return Entity{Kind: KindCell, Row: i, Col: j}
}

func (e Entity) String() string {
	switch e.Kind {
	case KindRow:
		return fmt.Sprintf("row %d", e.Row)
	case KindColumn:
		return fmt.Sprintf("column %d", e.Col)
	case KindCell:
		return fmt.Sprintf("cell (%d, %d)", e.Row, e.Col)
	default:
		return "global"
	}
}

// inBounds reports whether the entity addresses something inside a rows x cols grid
func (e Entity) inBounds(rows, cols int) bool {
	switch e.Kind {
	case KindRow:
		return e.Row >= 0 && e.Row < rows
	case KindColumn:
		return e.Col >= 0 && e.Col < cols
	case KindCell:
		return e.Row >= 0 && e.Row < rows && e.Col >= 0 && e.Col < cols
	default:
		return true
	}
}

// Settings holds optional overrides; nil fields inherit from lower layers
type Settings struct {
	AlignH        *Align
	AlignV        *Align
	AlignStrategy *AlignStrategy
	Padding       *Padding
	PaddingFill   *rune
	Wrap          *WrapPolicy
	MaxWidth      *int
	MinWidth      *int
	KeepWords     *bool
	Suffix        *string
	TabSize       *int
	Trim          *bool
	Span          *layout.Span
	Border        *CellBorder
}

// NewSettings returns empty settings
func NewSettings() Settings {
	return Settings{}
}

// Align sets the horizontal alignment
func (s Settings) Align(a Align) Settings {
	s.AlignH = &a
	return s
}

// VAlign sets the vertical alignment
func (s Settings) VAlign(a Align) Settings {
	s.AlignV = &a
	return s
}

// Strategy sets the alignment strategy
func (s Settings) Strategy(st AlignStrategy) Settings {
	s.AlignStrategy = &st
	return s
}

// Pad sets the padding
func (s Settings) Pad(top, bottom, left, right int) Settings {
	s.Padding = &Padding{Top: top, Bottom: bottom, Left: left, Right: right}
	return s
}

// Fill sets the rune used for padding
func (s Settings) Fill(r rune) Settings {
	s.PaddingFill = &r
	return s
}

// Wrapped wraps lines wider than width. A zero width wraps at the cell's content width.
func (s Settings) Wrapped(width int, keepWords bool) Settings {
	p := WrapWord
	s.Wrap = &p
	s.MaxWidth = &width
	s.KeepWords = &keepWords
	return s
}

// Truncated cuts lines wider than width and appends suffix.
// A zero width truncates at the cell's content width.
func (s Settings) Truncated(width int, suffix string) Settings {
	p := WrapTruncate
	s.Wrap = &p
	s.MaxWidth = &width
	s.Suffix = &suffix
	return s
}

// NoWrap lets lines overflow the cell
func (s Settings) NoWrap() Settings {
	p := WrapNone
	s.Wrap = &p
	return s
}

// Min sets the minimum content width
func (s Settings) Min(width int) Settings {
	s.MinWidth = &width
	return s
}

// Tabs sets how many spaces a tab expands to
func (s Settings) Tabs(size int) Settings {
	s.TabSize = &size
	return s
}

// Trimmed removes surrounding whitespace from every line before alignment
func (s Settings) Trimmed(trim bool) Settings {
	s.Trim = &trim
	return s
}

// Spanning makes a cell cover rows x cols positions
func (s Settings) Spanning(rows, cols int) Settings {
	s.Span = &layout.Span{Rows: rows, Cols: cols}
	return s
}

// WithBorder overrides the border glyphs around the cell
func (s Settings) WithBorder(b CellBorder) Settings {
	s.Border = &b
	return s
}

// merge overlays every field set in o
func (s *Settings) merge(o Settings) {
	if o.AlignH != nil {
		s.AlignH = o.AlignH
	}
	if o.AlignV != nil {
		s.AlignV = o.AlignV
	}
	if o.AlignStrategy != nil {
		s.AlignStrategy = o.AlignStrategy
	}
	if o.Padding != nil {
		s.Padding = o.Padding
	}
	if o.PaddingFill != nil {
		s.PaddingFill = o.PaddingFill
	}
	if o.Wrap != nil {
		s.Wrap = o.Wrap
	}
	if o.MaxWidth != nil {
		s.MaxWidth = o.MaxWidth
	}
	if o.MinWidth != nil {
		s.MinWidth = o.MinWidth
	}
	if o.KeepWords != nil {
		s.KeepWords = o.KeepWords
	}
	if o.Suffix != nil {
		s.Suffix = o.Suffix
	}
	if o.TabSize != nil {
		s.TabSize = o.TabSize
	}
	if o.Trim != nil {
		s.Trim = o.Trim
	}
	if o.Span != nil {
		s.Span = o.Span
	}
	if o.Border != nil {
		s.Border = o.Border
	}
}

// Resolved is the fully determined configuration of one cell
type Resolved struct {
	AlignH        Align
	AlignV        Align
	AlignStrategy AlignStrategy
	Padding       Padding
	PaddingFill   rune
	Wrap          WrapPolicy
	MaxWidth      int
	MinWidth      int
	KeepWords     bool
	Suffix        string
	TabSize       int
	Trim          bool
	Border        CellBorder
}

// Defaults returns the built-in configuration of a cell
func Defaults() Resolved {
	return Resolved{
		AlignH:      AlignStart,
		AlignV:      AlignStart,
		PaddingFill: ' ',
		Wrap:        WrapNone,
		TabSize:     text.DefaultTabSize,
	}
}

// apply copies every set field of s into r
func (r *Resolved) apply(s Settings) {
	if s.AlignH != nil {
		r.AlignH = *s.AlignH
	}
	if s.AlignV != nil {
		r.AlignV = *s.AlignV
	}
	if s.AlignStrategy != nil {
		r.AlignStrategy = *s.AlignStrategy
	}
	if s.Padding != nil {
		r.Padding = *s.Padding
	}
	if s.PaddingFill != nil {
		r.PaddingFill = *s.PaddingFill
	}
	if s.Wrap != nil {
		r.Wrap = *s.Wrap
	}
	if s.MaxWidth != nil {
		r.MaxWidth = *s.MaxWidth
	}
	if s.MinWidth != nil {
		r.MinWidth = *s.MinWidth
	}
	if s.KeepWords != nil {
		r.KeepWords = *s.KeepWords
	}
	if s.Suffix != nil {
		r.Suffix = *s.Suffix
	}
	if s.TabSize != nil {
		r.TabSize = *s.TabSize
	}
	if s.Trim != nil {
		r.Trim = *s.Trim
	}
	if s.Border != nil {
		r.Border = r.Border.Merge(*s.Border)
	}
}

// Layers stores settings per entity and resolves them with the precedence
// cell > column > row > global > defaults, field by field.
type Layers struct {
	entries map[Entity]Settings
	order   []Entity
}

// NewLayers returns an empty set of layers
func NewLayers() *Layers {
	return &Layers{entries: make(map[Entity]Settings)}
}

// Set overlays s onto the settings already attached to e
func (l *Layers) Set(e Entity, s Settings) {
	cur, ok := l.entries[e]
	if !ok {
		l.order = append(l.order, e)
	}
	cur.merge(s)
	l.entries[e] = cur
}

// Get returns the settings attached to e
func (l *Layers) Get(e Entity) (Settings, bool) {
	s, ok := l.entries[e]
	return s, ok
}

// Entities returns the entities with attached settings in insertion order
func (l *Layers) Entities() []Entity {
	return l.order
}

// Clone returns an independent copy of the layers
func (l *Layers) Clone() *Layers {
	c := NewLayers()
	for _, e := range l.order {
		c.Set(e, l.entries[e])
	}
	return c
}

// Resolve computes the configuration of the cell at row, col
func (l *Layers) Resolve(row, col int) Resolved {
	r := Defaults()
	for _, e := range []Entity{Global(), Row(row), Column(col), Cell(row, col)} {
		if s, ok := l.entries[e]; ok {
			r.apply(s)
		}
	}
	return r
}

// Spans collects the spans attached to cells
func (l *Layers) Spans() map[layout.Position]layout.Span {
	spans := make(map[layout.Position]layout.Span)
	for _, e := range l.order {
		s := l.entries[e]
		if s.Span != nil && e.Kind == KindCell {
			spans[layout.Position{Row: e.Row, Col: e.Col}] = *s.Span
		}
	}
	return spans
}

// Validate checks the layers against a rows x cols grid
func (l *Layers) Validate(rows, cols int) error {
	for _, e := range l.order {
		s := l.entries[e]
		if !e.inBounds(rows, cols) {
			return errors.Wrapf(ErrEntityOutOfBounds, "%s in a %dx%d grid", e, rows, cols)
		}
		if s.Span != nil && e.Kind != KindCell {
			return errors.Wrapf(ErrSpanTarget, "%s", e)
		}
		if s.Padding != nil {
			if err := s.Padding.Validate(); err != nil {
				return errors.Wrapf(err, "%s", e)
			}
		}
		if s.PaddingFill != nil {
			if err := checkFill(*s.PaddingFill); err != nil {
				return errors.Wrapf(err, "%s padding", e)
			}
		}
	}
	return nil
}
