// Package tabled renders rows of text into aligned, bordered terminal tables.
//
// Cells may span several rows and columns, carry ANSI styling and be wrapped or
// truncated per cell, row, column or globally.
package tabled

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/kozmod/tabled/internal/grid/config"
	"github.com/kozmod/tabled/internal/grid/layout"
	"github.com/kozmod/tabled/internal/grid/render"
)

// Table is a grid of cells together with its rendering configuration
type Table struct {
	cells  [][]string
	layers *config.Layers
	style  config.Style
	colors config.BorderColors
	margin config.Margin
	logger zerolog.Logger
}

// New creates a table from rows of cells. Rows are copied.
func New(rows [][]string, opts ...Option) *Table {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = append([]string(nil), row...)
	}
	t := &Table{
		cells:  cells,
		layers: config.NewLayers(),
		style:  config.StyleASCII(),
		logger: zerolog.Nop(),
	}
	return t.With(opts...)
}

// With applies options to the table and returns it
func (t *Table) With(opts ...Option) *Table {
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Modify overlays settings on an entity and returns the table
func (t *Table) Modify(e Entity, s Settings) *Table {
	t.layers.Set(e, s)
	return t
}

// Shape returns the number of rows and columns
func (t *Table) Shape() (rows, cols int) {
	if len(t.cells) == 0 {
		return 0, 0
	}
	return len(t.cells), len(t.cells[0])
}

// Lines renders the table to lines
func (t *Table) Lines() ([]string, error) {
	return render.NewTableRenderer(render.Input{
		Cells:  t.cells,
		Layers: t.layers,
		Style:  t.style,
		Colors: t.colors,
		Margin: t.margin,
		Logger: t.logger,
	}).Render()
}

// Render renders the table joined with line breaks, without a trailing one
func (t *Table) Render() (string, error) {
	lines, err := t.Lines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// String renders the table, returning an empty string when the configuration is invalid
func (t *Table) String() string {
	s, err := t.Render()
	if err != nil {
		t.logger.Error().Err(err).Msg("render table")
		return ""
	}
	return s
}

// Range is a half-open interval [Start, End) of rows or columns
type Range struct {
	Start int
	End   int
}

// Take returns a Range of n entries from start
func Take(start, n int) Range {
	return Range{Start: start, End: start + n}
}

func (r Range) contains(i int) bool {
	return i >= r.Start && i < r.End
}

func (r Range) valid(size int) bool {
	return r.Start >= 0 && r.End <= size && r.Start <= r.End
}

// Extract returns the segment of the table covered by rows and cols as a new table.
// Spans crossing the segment are clipped and their content moves to the first covered position.
func (t *Table) Extract(rows, cols Range) (*Table, error) {
	nRows, nCols := t.Shape()
	if !rows.valid(nRows) || !cols.valid(nCols) {
		return nil, errors.Wrapf(ErrEntityOutOfBounds, "segment rows %v cols %v of a %dx%d table", rows, cols, nRows, nCols)
	}
	for i, row := range t.cells {
		if len(row) != nCols {
			return nil, errors.Wrapf(ErrRaggedRows, "row %d has %d cells, row 0 has %d", i, len(row), nCols)
		}
	}
	occ, err := layout.Resolve(nRows, nCols, t.layers.Spans())
	if err != nil {
		return nil, err
	}

	out := &Table{
		cells:  make([][]string, rows.End-rows.Start),
		layers: config.NewLayers(),
		style:  t.style,
		colors: t.colors,
		margin: t.margin,
		logger: t.logger,
	}
	for i := range out.cells {
		out.cells[i] = make([]string, cols.End-cols.Start)
	}

	for _, e := range t.layers.Entities() {
		s, _ := t.layers.Get(e)
		switch e.Kind {
		case config.KindGlobal:
			out.layers.Set(e, s)
		case config.KindRow:
			if rows.contains(e.Row) {
				out.layers.Set(config.Row(e.Row-rows.Start), s)
			}
		case config.KindColumn:
			if cols.contains(e.Col) {
				out.layers.Set(config.Column(e.Col-cols.Start), s)
			}
		}
	}

	for _, a := range occ.Anchors() {
		top, left := maxInt(a.Row, rows.Start), maxInt(a.Col, cols.Start)
		bottom, right := minInt(a.LastRow()+1, rows.End), minInt(a.LastCol()+1, cols.End)
		if top >= bottom || left >= right {
			continue
		}

		r, c := top-rows.Start, left-cols.Start
		out.cells[r][c] = t.cells[a.Row][a.Col]

		s, _ := t.layers.Get(config.Cell(a.Row, a.Col))
		s.Span = nil
		if span := (layout.Span{Rows: bottom - top, Cols: right - left}); !span.IsSingle() {
			s.Span = &span
		}
		if s != (Settings{}) {
			out.layers.Set(config.Cell(r, c), s)
		}
	}
	return out, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Record is a value that can be shown as a table row
type Record interface {
	Header() []string
	Fields() []string
}

// FromRecords builds a table with a header row taken from the first record
func FromRecords[T Record](records []T, opts ...Option) *Table {
	if len(records) == 0 {
		return New(nil, opts...)
	}
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, records[0].Header())
	for _, r := range records {
		rows = append(rows, r.Fields())
	}
	return New(rows, opts...)
}

// Builder collects a header and rows before creating a table
type Builder struct {
	header []string
	rows   [][]string
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// SetHeader sets the first row
func (b *Builder) SetHeader(cells ...string) *Builder {
	b.header = cells
	return b
}

// AddRow appends a row
func (b *Builder) AddRow(cells ...string) *Builder {
	b.rows = append(b.rows, cells)
	return b
}

// AddRecord appends the fields of a record
func (b *Builder) AddRecord(r Record) *Builder {
	if b.header == nil {
		b.header = r.Header()
	}
	return b.AddRow(r.Fields()...)
}

// Build creates the table. Short rows are padded with empty cells to the widest row.
func (b *Builder) Build(opts ...Option) *Table {
	var rows [][]string
	if b.header != nil {
		rows = append(rows, b.header)
	}
	rows = append(rows, b.rows...)

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = make([]string, width)
		copy(padded[i], row)
	}
	return New(padded, opts...)
}
