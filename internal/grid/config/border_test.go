package config

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleByName(t *testing.T) {
	for _, name := range StyleNames() {
		s, err := StyleByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name)
	}

	_, err := StyleByName("unknown")
	assert.Error(t, err)
}

func TestStyleNamesSorted(t *testing.T) {
	names := StyleNames()
	assert.Equal(t, "ascii", names[0])
	assert.Contains(t, names, "markdown")
	assert.Len(t, names, 10)
}

func TestPresetFlags(t *testing.T) {
	assert.Equal(t, Lines{}, StyleNone().Lines)
	assert.True(t, StylePsql().Lines.Header)
	assert.False(t, StylePsql().Lines.Top)
	assert.False(t, StyleRounded().Lines.InnerHorizontal)
	assert.Equal(t, '╭', StyleRounded().Symbols.TopLeft)
	assert.Equal(t, '┬', StyleRounded().Symbols.TopMid)
}

func TestFrameBorder(t *testing.T) {
	b := FrameBorder('*', '!', '#')
	assert.Equal(t, '*', *b.Top)
	assert.Equal(t, '!', *b.Right)
	assert.Equal(t, '#', *b.BottomLeft)

	merged := b.Merge(CellBorder{Top: Glyph('~')})
	assert.Equal(t, '~', *merged.Top)
	assert.Equal(t, '*', *b.Top)
}

func TestBorderColorsClasses(t *testing.T) {
	mark := func(tag string) Tint {
		return TintFunc(func(s string) string { return tag + s })
	}
	c := BorderColors{
		Top: mark("t"), Bottom: mark("b"), InnerHorizontal: mark("h"),
		Left: mark("l"), Right: mark("r"), InnerVertical: mark("v"),
	}

	assert.Equal(t, "t-", Paint(c.Horizontal(0, 3), "-"))
	assert.Equal(t, "h-", Paint(c.Horizontal(1, 3), "-"))
	assert.Equal(t, "b-", Paint(c.Horizontal(3, 3), "-"))
	assert.Equal(t, "l|", Paint(c.Vertical(0, 2), "|"))
	assert.Equal(t, "v|", Paint(c.Vertical(1, 2), "|"))
	assert.Equal(t, "r|", Paint(c.Vertical(2, 2), "|"))

	assert.Equal(t, "-", Paint(nil, "-"))
	assert.Equal(t, "", Paint(c.Top, ""))
}

func TestLipglossTint(t *testing.T) {
	tint := LipglossTint{Style: lipgloss.NewStyle()}
	assert.Equal(t, "+--+", tint.Paint("+--+"))

	colored := ColorTint(nil, "9")
	assert.Contains(t, colored.Paint("|"), "|")
}
