package render

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/kozmod/tabled/internal/grid/config"
	"github.com/kozmod/tabled/internal/grid/layout"
)

// frame draws border lines and content lines of a resolved grid
type frame struct {
	occ     *layout.Occupancy
	dims    layout.Dimensions
	style   config.Style
	colors  config.BorderColors
	hDrawn  []bool
	vDrawn  []bool
	blocks  [][]string
	borders []config.CellBorder
	log     zerolog.Logger
}

// drawnBoundaries returns which horizontal (rows+1) and vertical (cols+1) lines are drawn
func drawnBoundaries(lines config.Lines, rows, cols int) (horizontal, vertical []bool) {
	horizontal = make([]bool, rows+1)
	for b := range horizontal {
		switch {
		case b == 0:
			horizontal[b] = lines.Top
		case b == rows:
			horizontal[b] = lines.Bottom
		default:
			horizontal[b] = lines.InnerHorizontal || (lines.Header && b == 1)
		}
	}

	vertical = make([]bool, cols+1)
	for c := range vertical {
		switch {
		case c == 0:
			vertical[c] = lines.Left
		case c == cols:
			vertical[c] = lines.Right
		default:
			vertical[c] = lines.InnerVertical
		}
	}
	return horizontal, vertical
}

// lines returns every output line of the grid, top to bottom
func (f *frame) lines() []string {
	var out []string
	for b := 0; b <= f.occ.Rows(); b++ {
		if f.hDrawn[b] {
			out = append(out, f.horizontalLine(b))
		}
		if b == f.occ.Rows() {
			break
		}
		for i := 0; i < f.dims.Heights[b]; i++ {
			out = append(out, f.contentLine(b, i))
		}
	}
	return out
}

// blockLine returns line i of row r within the block of anchor a
func (f *frame) blockLine(a layout.Anchor, r, i int) string {
	offset := i
	for k := a.Row; k < r; k++ {
		offset += f.dims.Heights[k]
		if f.hDrawn[k+1] {
			offset++
		}
	}
	return f.blocks[a.ID][offset]
}

// horizontalLine draws the border at row boundary b.
// Where b runs through a vertically spanning cell the cell's content takes the place of the border.
func (f *frame) horizontalLine(b int) string {
	o := f.occ
	tint := f.colors.Horizontal(b, o.Rows())

	var line, run strings.Builder
	flush := func() {
		line.WriteString(config.Paint(tint, run.String()))
		run.Reset()
	}

	for c := 0; c <= o.Cols(); {
		if f.vDrawn[c] {
			run.WriteRune(f.junction(b, c))
		}
		if c == o.Cols() {
			break
		}

		if b > 0 && b < o.Rows() && o.Owner(b-1, c) == o.Owner(b, c) {
			a := o.Anchor(o.Owner(b, c))
			flush()
			// the block line lying on boundary b
			line.WriteString(f.blockLine(a, b, -1))
			c = a.LastCol() + 1
			continue
		}

		run.WriteString(repeat(f.segment(b, c), f.dims.Widths[c]))
		c++
	}
	flush()
	return line.String()
}

// segment returns the glyph of the horizontal border above row b in column c
func (f *frame) segment(b, c int) rune {
	o := f.occ
	if b < o.Rows() {
		a := o.Anchor(o.Owner(b, c))
		if a.Row == b {
			if g := f.borders[a.ID].Top; g != nil {
				return *g
			}
		}
	}
	if b > 0 {
		a := o.Anchor(o.Owner(b-1, c))
		if a.LastRow() == b-1 {
			if g := f.borders[a.ID].Bottom; g != nil {
				return *g
			}
		}
	}
	return f.style.Symbols.Horizontal
}

// contentLine draws line i of row r: vertical borders and the cells' block lines
func (f *frame) contentLine(r, i int) string {
	o := f.occ
	var line strings.Builder
	for c := 0; c <= o.Cols(); {
		if f.vDrawn[c] {
			tint := f.colors.Vertical(c, o.Cols())
			line.WriteString(config.Paint(tint, string(f.divider(r, c))))
		}
		if c == o.Cols() {
			break
		}

		a := o.Anchor(o.Owner(r, c))
		line.WriteString(f.blockLine(a, r, i))
		c = a.LastCol() + 1
	}
	return line.String()
}

// divider returns the glyph of the vertical border left of column c in row r
func (f *frame) divider(r, c int) rune {
	o := f.occ
	if c < o.Cols() {
		a := o.Anchor(o.Owner(r, c))
		if a.Col == c {
			if g := f.borders[a.ID].Left; g != nil {
				return *g
			}
		}
	}
	if c > 0 {
		a := o.Anchor(o.Owner(r, c-1))
		if a.LastCol() == c-1 {
			if g := f.borders[a.ID].Right; g != nil {
				return *g
			}
		}
	}
	return f.style.Symbols.Vertical
}
