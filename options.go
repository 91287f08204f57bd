package tabled

import (
	"github.com/rs/zerolog"

	"github.com/kozmod/tabled/internal/grid/config"
	"github.com/kozmod/tabled/internal/grid/layout"
	"github.com/kozmod/tabled/internal/grid/render"
)

type (
	// Settings holds optional per-entity overrides
	Settings = config.Settings
	// Entity addresses the global scope, a row, a column or a cell
	Entity = config.Entity
	// Style is a border glyph set with its draw flags
	Style = config.Style
	// Symbols is the glyph set of a style
	Symbols = config.Symbols
	// BorderLines selects which border lines are drawn
	BorderLines = config.Lines
	// CellBorder overrides border glyphs around a cell
	CellBorder = config.CellBorder
	// BorderColors tints border lines per class
	BorderColors = config.BorderColors
	// Tint decorates border glyphs
	Tint = config.Tint
	// TintFunc adapts a function to Tint
	TintFunc = config.TintFunc
	// Margin surrounds the whole table
	Margin = config.Margin
	// Padding surrounds the content of a cell
	Padding = config.Padding
	// Align positions content in a cell
	Align = config.Align
	// AlignStrategy selects per-line or per-cell alignment
	AlignStrategy = config.AlignStrategy
	// WrapPolicy decides what happens to over-wide lines
	WrapPolicy = config.WrapPolicy
	// SpanError describes a rejected span
	SpanError = layout.SpanError
)

const (
	AlignStart  = config.AlignStart
	AlignCenter = config.AlignCenter
	AlignEnd    = config.AlignEnd

	PerLine = config.PerLine
	PerCell = config.PerCell

	WrapNone     = config.WrapNone
	WrapWord     = config.WrapWord
	WrapTruncate = config.WrapTruncate
)

var (
	Global      = config.Global
	Row         = config.Row
	Column      = config.Column
	Cell        = config.Cell
	NewSettings = config.NewSettings
	Glyph       = config.Glyph
	FrameBorder = config.FrameBorder

	StyleNone     = config.StyleNone
	StyleBlank    = config.StyleBlank
	StyleASCII    = config.StyleASCII
	StylePsql     = config.StylePsql
	StyleMarkdown = config.StyleMarkdown
	StyleModern   = config.StyleModern
	StyleRounded  = config.StyleRounded
	StyleHeavy    = config.StyleHeavy
	StyleDouble   = config.StyleDouble
	StyleDots     = config.StyleDots
	StyleByName   = config.StyleByName
)

// Configuration errors returned by Render
var (
	ErrRaggedRows        = render.ErrRaggedRows
	ErrInvalidSpan       = layout.ErrInvalidSpan
	ErrSpanOutOfBounds   = layout.ErrSpanOutOfBounds
	ErrOverlappingSpans  = layout.ErrOverlappingSpans
	ErrEntityOutOfBounds = config.ErrEntityOutOfBounds
	ErrSpanTarget        = config.ErrSpanTarget
	ErrInvalidMargin     = config.ErrInvalidMargin
	ErrFillWidth         = config.ErrFillWidth
)

// Option configures a Table
type Option func(*Table)

// WithStyle sets the border style
func WithStyle(s Style) Option {
	return func(t *Table) {
		t.style = s
	}
}

// WithSettings overlays settings on an entity
func WithSettings(e Entity, s Settings) Option {
	return func(t *Table) {
		t.layers.Set(e, s)
	}
}

// WithMargin sets the space around the table
func WithMargin(m Margin) Option {
	return func(t *Table) {
		t.margin = m
	}
}

// WithBorderColors tints border lines
func WithBorderColors(c BorderColors) Option {
	return func(t *Table) {
		t.colors = c
	}
}

// WithLogger sets the logger receiving layout debug events
func WithLogger(l zerolog.Logger) Option {
	return func(t *Table) {
		t.logger = l
	}
}
