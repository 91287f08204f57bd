package render

import "github.com/kozmod/tabled/internal/grid/config"

// arms records which border segments meet at a junction point
type arms struct {
	up, down, left, right bool
}

// glyph picks the junction glyph for the arms.
// It returns false when no segment meets at the point.
func (a arms) glyph(s config.Symbols) (rune, bool) {
	switch {
	case a.up && a.down && a.left && a.right:
		return s.Cross, true
	case a.down && a.left && a.right && !a.up:
		return s.TopMid, true
	case a.up && a.left && a.right && !a.down:
		return s.BottomMid, true
	case a.up && a.down && a.right && !a.left:
		return s.MidLeft, true
	case a.up && a.down && a.left && !a.right:
		return s.MidRight, true
	case a.down && a.right:
		return s.TopLeft, true
	case a.down && a.left:
		return s.TopRight, true
	case a.up && a.right:
		return s.BottomLeft, true
	case a.up && a.left:
		return s.BottomRight, true
	case a.up || a.down:
		return s.Vertical, true
	case a.left || a.right:
		return s.Horizontal, true
	default:
		return 0, false
	}
}

// armsAt inspects the occupancy around boundary point (b, c)
func (f *frame) armsAt(b, c int) arms {
	o := f.occ
	return arms{
		up:    b > 0 && o.VerticalDivider(b-1, c),
		down:  b < o.Rows() && o.VerticalDivider(b, c),
		left:  c > 0 && o.HorizontalDivider(b, c-1),
		right: c < o.Cols() && o.HorizontalDivider(b, c),
	}
}

// junction returns the glyph drawn where horizontal boundary b meets vertical boundary c
func (f *frame) junction(b, c int) rune {
	a := f.armsAt(b, c)
	g, ok := a.glyph(f.style.Symbols)
	if !ok {
		return ' '
	}
	if override, ok := f.cornerOverride(b, c); ok {
		g = override
	}

	f.log.Trace().
		Int("boundary", b).
		Int("column", c).
		Bool("up", a.up).Bool("down", a.down).Bool("left", a.left).Bool("right", a.right).
		Str("glyph", string(g)).
		Msg("junction")
	return g
}

// cornerOverride looks for a cell whose own corner sits at (b, c).
// The cell below-right wins, then below-left, above-right and above-left.
func (f *frame) cornerOverride(b, c int) (rune, bool) {
	o := f.occ
	rows, cols := o.Rows(), o.Cols()

	if b < rows && c < cols {
		a := o.Anchor(o.Owner(b, c))
		if a.Row == b && a.Col == c {
			if g := f.borders[a.ID].TopLeft; g != nil {
				return *g, true
			}
		}
	}
	if b < rows && c > 0 {
		a := o.Anchor(o.Owner(b, c-1))
		if a.Row == b && a.LastCol() == c-1 {
			if g := f.borders[a.ID].TopRight; g != nil {
				return *g, true
			}
		}
	}
	if b > 0 && c < cols {
		a := o.Anchor(o.Owner(b-1, c))
		if a.LastRow() == b-1 && a.Col == c {
			if g := f.borders[a.ID].BottomLeft; g != nil {
				return *g, true
			}
		}
	}
	if b > 0 && c > 0 {
		a := o.Anchor(o.Owner(b-1, c-1))
		if a.LastRow() == b-1 && a.LastCol() == c-1 {
			if g := f.borders[a.ID].BottomRight; g != nil {
				return *g, true
			}
		}
	}
	return 0, false
}
