package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozmod/tabled/internal/grid/layout"
)

func TestDefaults(t *testing.T) {
	r := NewLayers().Resolve(0, 0)

	assert.Equal(t, AlignStart, r.AlignH)
	assert.Equal(t, AlignStart, r.AlignV)
	assert.Equal(t, PerLine, r.AlignStrategy)
	assert.Equal(t, Padding{}, r.Padding)
	assert.Equal(t, ' ', r.PaddingFill)
	assert.Equal(t, WrapNone, r.Wrap)
	assert.Equal(t, 4, r.TabSize)
	assert.False(t, r.Trim)
}

func TestResolvePrecedence(t *testing.T) {
	l := NewLayers()
	l.Set(Global(), NewSettings().Align(AlignCenter).Pad(0, 0, 1, 1).VAlign(AlignEnd))
	l.Set(Row(0), NewSettings().Align(AlignEnd).Truncated(5, "~"))
	l.Set(Column(1), NewSettings().Align(AlignStart).Pad(1, 1, 0, 0))
	l.Set(Cell(0, 1), NewSettings().Align(AlignCenter))

	tests := []struct {
		name    string
		row     int
		col     int
		align   Align
		padding Padding
		wrap    WrapPolicy
	}{
		{name: "global only", row: 1, col: 0, align: AlignCenter, padding: Padding{Left: 1, Right: 1}, wrap: WrapNone},
		{name: "row over global", row: 0, col: 0, align: AlignEnd, padding: Padding{Left: 1, Right: 1}, wrap: WrapTruncate},
		{name: "column over row", row: 1, col: 1, align: AlignStart, padding: Padding{Top: 1, Bottom: 1}, wrap: WrapNone},
		{name: "cell over column", row: 0, col: 1, align: AlignCenter, padding: Padding{Top: 1, Bottom: 1}, wrap: WrapTruncate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := l.Resolve(tt.row, tt.col)
			assert.Equal(t, tt.align, r.AlignH)
			assert.Equal(t, AlignEnd, r.AlignV)
			assert.Equal(t, tt.padding, r.Padding)
			assert.Equal(t, tt.wrap, r.Wrap)
		})
	}

	r := l.Resolve(0, 0)
	assert.Equal(t, 5, r.MaxWidth)
	assert.Equal(t, "~", r.Suffix)
}

func TestSetMergesFields(t *testing.T) {
	l := NewLayers()
	l.Set(Global(), NewSettings().Align(AlignEnd))
	l.Set(Global(), NewSettings().Tabs(2))

	r := l.Resolve(0, 0)
	assert.Equal(t, AlignEnd, r.AlignH)
	assert.Equal(t, 2, r.TabSize)
	assert.Equal(t, []Entity{Global()}, l.Entities())
}

func TestCloneIsIndependent(t *testing.T) {
	l := NewLayers()
	l.Set(Global(), NewSettings().Align(AlignEnd))

	c := l.Clone()
	c.Set(Global(), NewSettings().Align(AlignCenter))

	assert.Equal(t, AlignEnd, l.Resolve(0, 0).AlignH)
	assert.Equal(t, AlignCenter, c.Resolve(0, 0).AlignH)
}

func TestSpans(t *testing.T) {
	l := NewLayers()
	l.Set(Cell(1, 0), NewSettings().Spanning(1, 2))
	l.Set(Cell(0, 0), NewSettings().Align(AlignEnd))

	assert.Equal(t, map[layout.Position]layout.Span{{Row: 1, Col: 0}: {Rows: 1, Cols: 2}}, l.Spans())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(l *Layers)
		want  error
	}{
		{name: "empty", setup: func(l *Layers) {}},
		{
			name:  "row out of bounds",
			setup: func(l *Layers) { l.Set(Row(3), NewSettings().Align(AlignEnd)) },
			want:  ErrEntityOutOfBounds,
		},
		{
			name:  "negative column",
			setup: func(l *Layers) { l.Set(Column(-1), NewSettings().Align(AlignEnd)) },
			want:  ErrEntityOutOfBounds,
		},
		{
			name:  "cell out of bounds",
			setup: func(l *Layers) { l.Set(Cell(0, 2), NewSettings()) },
			want:  ErrEntityOutOfBounds,
		},
		{
			name:  "span on a column",
			setup: func(l *Layers) { l.Set(Column(0), NewSettings().Spanning(2, 1)) },
			want:  ErrSpanTarget,
		},
		{
			name:  "zero width padding fill",
			setup: func(l *Layers) { l.Set(Cell(1, 1), NewSettings().Fill('\u200b')) },
			want:  ErrFillWidth,
		},
		{
			name:  "one column padding fill",
			setup: func(l *Layers) { l.Set(Row(0), NewSettings().Fill('.')) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayers()
			tt.setup(l)
			err := l.Validate(2, 2)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	l := NewLayers()
	l.Set(Global(), NewSettings().Pad(-1, 0, 0, 0))
	assert.Error(t, l.Validate(1, 1))
}

func TestCellBorderLayers(t *testing.T) {
	l := NewLayers()
	l.Set(Row(0), NewSettings().WithBorder(CellBorder{Top: Glyph('='), Bottom: Glyph('=')}))
	l.Set(Cell(0, 0), NewSettings().WithBorder(CellBorder{Top: Glyph('#')}))

	b := l.Resolve(0, 0).Border
	require.NotNil(t, b.Top)
	require.NotNil(t, b.Bottom)
	assert.Equal(t, '#', *b.Top)
	assert.Equal(t, '=', *b.Bottom)
	assert.Nil(t, b.Left)

	assert.True(t, l.Resolve(1, 0).Border.IsZero())
}

func TestEntityString(t *testing.T) {
	assert.Equal(t, "global", Global().String())
	assert.Equal(t, "row 2", Row(2).String())
	assert.Equal(t, "column 1", Column(1).String())
	assert.Equal(t, "cell (1, 2)", Cell(1, 2).String())
}

func TestParseNames(t *testing.T) {
	a, err := ParseAlign(" Right ")
	require.NoError(t, err)
	assert.Equal(t, AlignEnd, a)

	_, err = ParseAlign("diagonal")
	assert.Error(t, err)

	w, err := ParseWrapPolicy("truncate")
	require.NoError(t, err)
	assert.Equal(t, WrapTruncate, w)
	assert.Equal(t, "truncate", w.String())

	st, err := ParseAlignStrategy("cell")
	require.NoError(t, err)
	assert.Equal(t, PerCell, st)
}
