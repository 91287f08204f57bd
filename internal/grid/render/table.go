// Package render lays out cells, draws borders and assembles the final table lines
package render

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/kozmod/tabled/internal/grid/config"
	"github.com/kozmod/tabled/internal/grid/layout"
	"github.com/kozmod/tabled/internal/grid/text"
)

// ErrRaggedRows is returned when rows have different numbers of cells
var ErrRaggedRows = errors.New("rows have different lengths")

// Input is everything needed to render one table
type Input struct {
	Cells  [][]string
	Layers *config.Layers
	Style  config.Style
	Colors config.BorderColors
	Margin config.Margin
	Logger zerolog.Logger
}

// TableRenderer renders a grid of cells to output lines
type TableRenderer struct {
	in Input
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(in Input) *TableRenderer {
	if in.Layers == nil {
		in.Layers = config.NewLayers()
	}
	return &TableRenderer{in: in}
}

// Render renders the grid to a slice of output lines.
// Configuration errors are reported before any cell is formatted.
func (t *TableRenderer) Render() ([]string, error) {
	in := t.in
	rows, cols, err := shape(in.Cells)
	if err != nil {
		return nil, err
	}
	if err := in.Margin.Validate(); err != nil {
		return nil, err
	}
	if err := in.Layers.Validate(rows, cols); err != nil {
		return nil, err
	}
	occ, err := layout.Resolve(rows, cols, in.Layers.Spans())
	if err != nil {
		return nil, err
	}
	if rows == 0 || cols == 0 {
		return []string{}, nil
	}

	hDrawn, vDrawn := drawnBoundaries(in.Style.Lines, rows, cols)

	anchors := occ.Anchors()
	resolved := make([]config.Resolved, len(anchors))
	content := make([][]string, len(anchors))
	reqs := make([]layout.Requirement, len(anchors))
	for _, a := range anchors {
		resolved[a.ID] = in.Layers.Resolve(a.Row, a.Col)
		content[a.ID] = Prepare(in.Cells[a.Row][a.Col], resolved[a.ID])
		reqs[a.ID] = Require(content[a.ID], resolved[a.ID])
	}

	estimator := layout.Estimator{Horizontal: hDrawn, Vertical: vDrawn, Logger: in.Logger}
	dims := estimator.Estimate(occ, reqs)

	f := &frame{
		occ:     occ,
		dims:    dims,
		style:   in.Style,
		colors:  in.Colors,
		hDrawn:  hDrawn,
		vDrawn:  vDrawn,
		blocks:  make([][]string, len(anchors)),
		borders: make([]config.CellBorder, len(anchors)),
		log:     in.Logger,
	}
	for _, a := range anchors {
		w := layout.Covered(dims.Widths, vDrawn, a.Col, a.Span.Cols)
		h := layout.Covered(dims.Heights, hDrawn, a.Row, a.Span.Rows)
		block := FormatCell(content[a.ID], w, h, resolved[a.ID])
		if len(block) != h {
			panic(fmt.Sprintf("render: cell %s formatted to %d lines, want %d", a.Position, len(block), h))
		}
		f.blocks[a.ID] = block
		f.borders[a.ID] = resolved[a.ID].Border
	}

	lines := applyMargin(f.lines(), in.Margin)
	in.Logger.Debug().
		Int("rows", rows).
		Int("cols", cols).
		Int("lines", len(lines)).
		Str("style", in.Style.Name).
		Msg("rendered table")
	return lines, nil
}

// RenderString renders the grid joined with line breaks, without a trailing one
func (t *TableRenderer) RenderString() (string, error) {
	lines, err := t.Render()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Render renders in with a new TableRenderer
func Render(in Input) ([]string, error) {
	return NewTableRenderer(in).Render()
}

// shape returns the grid size, rejecting ragged rows
func shape(cells [][]string) (rows, cols int, err error) {
	rows = len(cells)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return 0, 0, errors.Wrapf(ErrRaggedRows, "row %d has %d cells, row 0 has %d", i, len(row), cols)
		}
	}
	return rows, cols, nil
}

// applyMargin surrounds the lines with the margin's fill runes
func applyMargin(lines []string, m config.Margin) []string {
	if m.IsZero() || len(lines) == 0 {
		return lines
	}

	top, bottom, left, right := m.Fills()
	width := m.Left + text.MaxLineWidth(lines) + m.Right

	out := make([]string, 0, len(lines)+m.Top+m.Bottom)
	for i := 0; i < m.Top; i++ {
		out = append(out, repeat(top, width))
	}
	for _, line := range lines {
		out = append(out, repeat(left, m.Left)+PadRight(line, width-m.Left-m.Right, ' ')+repeat(right, m.Right))
	}
	for i := 0; i < m.Bottom; i++ {
		out = append(out, repeat(bottom, width))
	}
	return out
}
