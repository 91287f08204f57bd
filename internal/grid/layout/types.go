// Package layout resolves cell spans and computes column widths and row heights
package layout

import "fmt"

// Position represents a position in the grid
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Span is the number of rows and columns a cell occupies
type Span struct {
	Rows int
	Cols int
}

// SingleSpan is the span of an ordinary cell
var SingleSpan = Span{Rows: 1, Cols: 1}

// IsSingle reports whether the span covers exactly one position
func (s Span) IsSingle() bool {
	return s.Rows == 1 && s.Cols == 1
}

func (s Span) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Anchor is the cell owning a rectangle of the grid
type Anchor struct {
	ID int
	Position
	Span Span
}

// LastRow returns the bottom row covered by the anchor
func (a Anchor) LastRow() int {
	return a.Row + a.Span.Rows - 1
}

// LastCol returns the rightmost column covered by the anchor
func (a Anchor) LastCol() int {
	return a.Col + a.Span.Cols - 1
}

// Contains reports whether the anchor's rectangle covers the position
func (a Anchor) Contains(row, col int) bool {
	return row >= a.Row && row <= a.LastRow() && col >= a.Col && col <= a.LastCol()
}
