package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kozmod/tabled/internal/grid/layout"
)

const (
	// ProjectFileName is looked up in the working directory
	ProjectFileName = ".tabled.yaml"
	// DefaultStyle is used when a file names no style
	DefaultStyle = "ascii"
)

// File represents a table configuration file
type File struct {
	Style   string         `yaml:"style"`
	Margin  MarginConfig   `yaml:"margin"`
	Colors  ColorsConfig   `yaml:"colors"`
	Global  SettingsConfig `yaml:"global"`
	Columns []IndexConfig  `yaml:"columns"`
	Rows    []IndexConfig  `yaml:"rows"`
	Cells   []CellConfig   `yaml:"cells"`
}

// MarginConfig is the margin section of a file
type MarginConfig struct {
	Top    int    `yaml:"top"`
	Bottom int    `yaml:"bottom"`
	Left   int    `yaml:"left"`
	Right  int    `yaml:"right"`
	Fill   string `yaml:"fill"`
}

// ColorsConfig assigns a color to each class of border line
type ColorsConfig struct {
	Top             string `yaml:"top"`
	Bottom          string `yaml:"bottom"`
	Left            string `yaml:"left"`
	Right           string `yaml:"right"`
	InnerHorizontal string `yaml:"innerHorizontal"`
	InnerVertical   string `yaml:"innerVertical"`
}

// SettingsConfig is the file form of Settings
type SettingsConfig struct {
	Align     string   `yaml:"align"`
	VAlign    string   `yaml:"valign"`
	Strategy  string   `yaml:"strategy"`
	Padding   *Padding `yaml:"padding"`
	Wrap      string   `yaml:"wrap"`
	MaxWidth  *int     `yaml:"maxWidth"`
	MinWidth  *int     `yaml:"minWidth"`
	KeepWords *bool    `yaml:"keepWords"`
	Suffix    *string  `yaml:"suffix"`
	TabSize   *int     `yaml:"tabSize"`
	Trim      *bool    `yaml:"trim"`
}

// IndexConfig applies settings to one row or column
type IndexConfig struct {
	Index          int `yaml:"index"`
	SettingsConfig `yaml:",inline"`
}

// CellConfig applies settings and an optional span to one cell
type CellConfig struct {
	Row            int         `yaml:"row"`
	Col            int         `yaml:"col"`
	Span           *SpanConfig `yaml:"span"`
	SettingsConfig `yaml:",inline"`
}

// SpanConfig is the file form of a span
type SpanConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Load loads configuration with priority:
// 1. Project-level: <dir>/.tabled.yaml
// 2. Global: ~/.config/tabled/config.yaml
// 3. Default: built-in defaults
func Load(dir string) (*File, error) {
	projectConfig := filepath.Join(dir, ProjectFileName)
	if info, err := os.Stat(projectConfig); err == nil && !info.IsDir() {
		return LoadFile(projectConfig)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		globalConfig := filepath.Join(home, ".config", "tabled", "config.yaml")
		if info, err := os.Stat(globalConfig); err == nil && !info.IsDir() {
			return LoadFile(globalConfig)
		}
	}

	return DefaultFile(), nil
}

// LoadFile loads configuration from a specific file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse decodes and validates configuration
func Parse(data []byte) (*File, error) {
	f := DefaultFile()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// DefaultFile returns the default configuration
func DefaultFile() *File {
	return &File{Style: DefaultStyle}
}

// Validate checks names and values without building the layers
func (f *File) Validate() error {
	if _, err := f.BorderStyle(); err != nil {
		return err
	}
	if len([]rune(f.Margin.Fill)) > 1 {
		return errors.Errorf("margin fill %q must be a single character", f.Margin.Fill)
	}
	if err := f.TableMargin().Validate(); err != nil {
		return err
	}
	_, err := f.Layers()
	return err
}

// BorderStyle returns the named preset
func (f *File) BorderStyle() (Style, error) {
	name := f.Style
	if name == "" {
		name = DefaultStyle
	}
	return StyleByName(name)
}

// TableMargin converts the margin section
func (f *File) TableMargin() Margin {
	var r rune
	if runes := []rune(f.Margin.Fill); len(runes) == 1 {
		r = runes[0]
	}
	return Margin{
		Top: f.Margin.Top, Bottom: f.Margin.Bottom, Left: f.Margin.Left, Right: f.Margin.Right,
		TopFill: r, BottomFill: r, LeftFill: r, RightFill: r,
	}
}

// BorderColors builds tints for every configured color
func (f *File) BorderColors(r *lipgloss.Renderer) BorderColors {
	tint := func(color string) Tint {
		if color == "" {
			return nil
		}
		return ColorTint(r, color)
	}
	return BorderColors{
		Top:             tint(f.Colors.Top),
		Bottom:          tint(f.Colors.Bottom),
		Left:            tint(f.Colors.Left),
		Right:           tint(f.Colors.Right),
		InnerHorizontal: tint(f.Colors.InnerHorizontal),
		InnerVertical:   tint(f.Colors.InnerVertical),
	}
}

// Layers converts the global, column, row and cell sections
func (f *File) Layers() (*Layers, error) {
	l := NewLayers()

	s, err := f.Global.Settings()
	if err != nil {
		return nil, errors.Wrap(err, "global")
	}
	l.Set(Global(), s)

	for _, c := range f.Columns {
		s, err := c.Settings()
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", c.Index)
		}
		l.Set(Column(c.Index), s)
	}
	for _, r := range f.Rows {
		s, err := r.Settings()
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", r.Index)
		}
		l.Set(Row(r.Index), s)
	}
	for _, c := range f.Cells {
		s, err := c.Settings()
		if err != nil {
			return nil, errors.Wrapf(err, "cell (%d, %d)", c.Row, c.Col)
		}
		if c.Span != nil {
			s.Span = &layout.Span{Rows: c.Span.Rows, Cols: c.Span.Cols}
		}
		l.Set(Cell(c.Row, c.Col), s)
	}
	return l, nil
}

// Settings converts the section to Settings
func (c SettingsConfig) Settings() (Settings, error) {
	var s Settings
	if c.Align != "" {
		a, err := ParseAlign(c.Align)
		if err != nil {
			return s, err
		}
		s = s.Align(a)
	}
	if c.VAlign != "" {
		a, err := ParseAlign(c.VAlign)
		if err != nil {
			return s, err
		}
		s = s.VAlign(a)
	}
	if c.Strategy != "" {
		st, err := ParseAlignStrategy(c.Strategy)
		if err != nil {
			return s, err
		}
		s = s.Strategy(st)
	}
	if c.Padding != nil {
		if err := c.Padding.Validate(); err != nil {
			return s, err
		}
		p := *c.Padding
		s.Padding = &p
	}
	if c.Wrap != "" {
		w, err := ParseWrapPolicy(c.Wrap)
		if err != nil {
			return s, err
		}
		s.Wrap = &w
	}
	if c.MaxWidth != nil && *c.MaxWidth < 0 {
		return s, errors.Errorf("maxWidth must not be negative: %d", *c.MaxWidth)
	}
	s.MaxWidth = c.MaxWidth
	s.MinWidth = c.MinWidth
	s.KeepWords = c.KeepWords
	s.Suffix = c.Suffix
	s.TabSize = c.TabSize
	s.Trim = c.Trim
	return s, nil
}
