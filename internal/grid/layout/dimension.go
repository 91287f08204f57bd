package layout

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// Requirement is the space an anchor needs, padding included
type Requirement struct {
	Width  int
	Height int
}

// Dimensions holds the final column widths and row heights
type Dimensions struct {
	Widths  []int
	Heights []int
}

// Estimator computes dimensions from per-anchor requirements.
// Horizontal has one flag per row boundary (rows+1) and Vertical one per column boundary (cols+1);
// a set flag means the border line is drawn and adds one unit between the cells it separates.
type Estimator struct {
	Horizontal []bool
	Vertical   []bool
	Logger     zerolog.Logger
}

// Estimate returns the smallest widths and heights satisfying every requirement.
// Requirements are indexed by anchor id.
func (e Estimator) Estimate(o *Occupancy, reqs []Requirement) Dimensions {
	d := Dimensions{
		Widths:  make([]int, o.Cols()),
		Heights: make([]int, o.Rows()),
	}

	anchors := o.Anchors()
	for _, a := range anchors {
		req := reqs[a.ID]
		if a.Span.Cols == 1 && req.Width > d.Widths[a.Col] {
			d.Widths[a.Col] = req.Width
		}
		if a.Span.Rows == 1 && req.Height > d.Heights[a.Row] {
			d.Heights[a.Row] = req.Height
		}
	}

	wide := spanning(anchors, func(a Anchor) int { return a.Span.Cols })
	for _, a := range wide {
		e.distribute(d.Widths, e.Vertical, a.Col, a.Span.Cols, reqs[a.ID].Width, a, "width")
	}

	tall := spanning(anchors, func(a Anchor) int { return a.Span.Rows })
	for _, a := range tall {
		e.distribute(d.Heights, e.Horizontal, a.Row, a.Span.Rows, reqs[a.ID].Height, a, "height")
	}

	check(d.Widths, "width")
	check(d.Heights, "height")

	e.Logger.Debug().
		Ints("widths", d.Widths).
		Ints("heights", d.Heights).
		Msg("estimated dimensions")
	return d
}

// distribute grows sizes[from:from+n] until they cover required.
// The deficit is split evenly and the remainder goes to the last covered entry.
func (e Estimator) distribute(sizes []int, drawn []bool, from, n, required int, a Anchor, axis string) {
	available := Covered(sizes, drawn, from, n)
	deficit := required - available
	if deficit <= 0 {
		return
	}

	share := deficit / n
	for i := from; i < from+n; i++ {
		sizes[i] += share
	}
	sizes[from+n-1] += deficit % n

	e.Logger.Debug().
		Stringer("anchor", a.Position).
		Stringer("span", a.Span).
		Str("axis", axis).
		Int("deficit", deficit).
		Msg("distributed span deficit")
}

// Covered returns the total size of n entries starting at from,
// counting the drawn borders between them.
func Covered(sizes []int, drawn []bool, from, n int) int {
	total := 0
	for i := from; i < from+n; i++ {
		total += sizes[i]
		if i > from && i < len(drawn) && drawn[i] {
			total++
		}
	}
	return total
}

// spanning returns anchors with extent > 1 sorted by extent, then row-major
func spanning(anchors []Anchor, extent func(Anchor) int) []Anchor {
	var out []Anchor
	for _, a := range anchors {
		if extent(a) > 1 {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return extent(out[i]) < extent(out[j])
	})
	return out
}

func check(sizes []int, axis string) {
	for i, v := range sizes {
		if v < 0 {
			panic(fmt.Sprintf("layout: negative %s %d at index %d", axis, v, i))
		}
	}
}
