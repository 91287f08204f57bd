package layout

import (
	"fmt"
	"sort"
)

const unowned = -1

// Occupancy maps every grid position to the anchor that owns it
type Occupancy struct {
	rows    int
	cols    int
	owner   []int
	anchors []Anchor
}

// Resolve builds the occupancy map of a rows x cols grid.
// Positions are visited row by row; a position already covered by an earlier span is a shadow
// and its declared span must be the single span.
func Resolve(rows, cols int, spans map[Position]Span) (*Occupancy, error) {
	if err := checkDeclarations(rows, cols, spans); err != nil {
		return nil, err
	}

	o := &Occupancy{
		rows:  rows,
		cols:  cols,
		owner: make([]int, rows*cols),
	}
	for i := range o.owner {
		o.owner[i] = unowned
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := Position{Row: r, Col: c}
			span, declared := spans[pos]
			if !declared {
				span = SingleSpan
			}

			if o.owner[o.index(r, c)] != unowned {
				if !span.IsSingle() {
					return nil, spanError(pos, span, ErrOverlappingSpans)
				}
				continue
			}

			if r+span.Rows > rows || c+span.Cols > cols {
				return nil, spanError(pos, span, ErrSpanOutOfBounds)
			}
			if err := o.claim(Anchor{ID: len(o.anchors), Position: pos, Span: span}); err != nil {
				return nil, err
			}
		}
	}

	o.verify()
	return o, nil
}

// checkDeclarations rejects spans that are malformed or anchored outside the grid.
// Declarations are checked in row-major order so the reported error is stable.
func checkDeclarations(rows, cols int, spans map[Position]Span) error {
	positions := make([]Position, 0, len(spans))
	for pos := range spans {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})

	for _, pos := range positions {
		span := spans[pos]
		if span.Rows < 1 || span.Cols < 1 {
			return spanError(pos, span, ErrInvalidSpan)
		}
		if pos.Row < 0 || pos.Col < 0 || pos.Row >= rows || pos.Col >= cols {
			return spanError(pos, span, ErrSpanOutOfBounds)
		}
	}
	return nil
}

// claim assigns the anchor's rectangle to it
func (o *Occupancy) claim(a Anchor) error {
	for r := a.Row; r <= a.LastRow(); r++ {
		for c := a.Col; c <= a.LastCol(); c++ {
			if o.owner[o.index(r, c)] != unowned {
				return spanError(a.Position, a.Span, ErrOverlappingSpans)
			}
		}
	}
	for r := a.Row; r <= a.LastRow(); r++ {
		for c := a.Col; c <= a.LastCol(); c++ {
			o.owner[o.index(r, c)] = a.ID
		}
	}
	o.anchors = append(o.anchors, a)
	return nil
}

// verify panics if some position was left without an owner
func (o *Occupancy) verify() {
	for i, id := range o.owner {
		if id == unowned {
			panic(fmt.Sprintf("layout: position (%d, %d) has no owner", i/o.cols, i%o.cols))
		}
	}
}

func (o *Occupancy) index(row, col int) int {
	return row*o.cols + col
}

// Rows returns the number of grid rows
func (o *Occupancy) Rows() int {
	return o.rows
}

// Cols returns the number of grid columns
func (o *Occupancy) Cols() int {
	return o.cols
}

// Owner returns the id of the anchor owning the position
func (o *Occupancy) Owner(row, col int) int {
	return o.owner[o.index(row, col)]
}

// Anchor returns the anchor with the given id
func (o *Occupancy) Anchor(id int) Anchor {
	return o.anchors[id]
}

// Anchors returns all anchors in row-major order
func (o *Occupancy) Anchors() []Anchor {
	return o.anchors
}

// IsAnchor reports whether the position is the origin of its owner
func (o *Occupancy) IsAnchor(row, col int) bool {
	a := o.anchors[o.Owner(row, col)]
	return a.Row == row && a.Col == col
}

// VerticalDivider reports whether a border separates column col-1 from col in the given row.
// The outer edges always separate.
func (o *Occupancy) VerticalDivider(row, col int) bool {
	if col <= 0 || col >= o.cols {
		return true
	}
	return o.Owner(row, col-1) != o.Owner(row, col)
}

// HorizontalDivider reports whether a border separates row row-1 from row in the given column.
// The outer edges always separate.
func (o *Occupancy) HorizontalDivider(row, col int) bool {
	if row <= 0 || row >= o.rows {
		return true
	}
	return o.Owner(row-1, col) != o.Owner(row, col)
}
