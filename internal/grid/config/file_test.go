package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
style: rounded
margin:
  left: 2
  fill: "."
colors:
  top: "9"
global:
  align: center
  padding:
    left: 1
    right: 1
  wrap: wrap
  maxWidth: 20
  keepWords: true
columns:
  - index: 1
    align: right
rows:
  - index: 0
    valign: bottom
cells:
  - row: 1
    col: 0
    span:
      rows: 1
      cols: 2
    wrap: truncate
    suffix: "..."
`

func TestDefaultFile(t *testing.T) {
	f := DefaultFile()

	if f.Style != "ascii" {
		t.Errorf("Default Style should be 'ascii', got '%s'", f.Style)
	}
	if !f.TableMargin().IsZero() {
		t.Error("Default margin should be zero")
	}

	l, err := f.Layers()
	if err != nil {
		t.Fatalf("Layers() error = %v", err)
	}
	if got := l.Resolve(0, 0); got != Defaults() {
		t.Errorf("Default layers should resolve to defaults, got %+v", got)
	}
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	style, err := f.BorderStyle()
	require.NoError(t, err)
	assert.Equal(t, "rounded", style.Name)

	m := f.TableMargin()
	assert.Equal(t, 2, m.Left)
	_, _, left, _ := m.Fills()
	assert.Equal(t, '.', left)

	colors := f.BorderColors(nil)
	assert.NotNil(t, colors.Top)
	assert.Nil(t, colors.Bottom)

	l, err := f.Layers()
	require.NoError(t, err)

	r := l.Resolve(0, 1)
	assert.Equal(t, AlignEnd, r.AlignH)
	assert.Equal(t, AlignEnd, r.AlignV)
	assert.Equal(t, Padding{Left: 1, Right: 1}, r.Padding)
	assert.Equal(t, WrapWord, r.Wrap)
	assert.Equal(t, 20, r.MaxWidth)
	assert.True(t, r.KeepWords)

	r = l.Resolve(1, 0)
	assert.Equal(t, WrapTruncate, r.Wrap)
	assert.Equal(t, "...", r.Suffix)
	assert.Equal(t, 20, r.MaxWidth)

	assert.Len(t, l.Spans(), 1)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{name: "bad yaml", content: "style: [", errText: "failed to parse config file"},
		{name: "unknown style", content: "style: fancy", errText: "unknown border style"},
		{name: "unknown alignment", content: "global:\n  align: diagonal", errText: "unknown alignment"},
		{name: "unknown wrap", content: "columns:\n  - index: 0\n    wrap: fold", errText: "column 0"},
		{name: "negative padding", content: "global:\n  padding:\n    left: -1", errText: "padding"},
		{name: "negative margin", content: "margin:\n  top: -2", errText: "margin"},
		{name: "long fill", content: "margin:\n  fill: ab", errText: "single character"},
		{name: "wide fill", content: "margin:\n  left: 1\n  fill: 中", errText: "one column wide"},
		{name: "negative max width", content: "global:\n  maxWidth: -3", errText: "maxWidth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Expected error containing %q, got %q", tt.errText, err.Error())
			}
		})
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	projectDir := t.TempDir()

	// nothing on disk: defaults
	f, err := Load(projectDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle, f.Style)

	// global config
	globalDir := filepath.Join(home, ".config", "tabled")
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte("style: heavy\n"), 0o644))

	f, err = Load(projectDir)
	require.NoError(t, err)
	assert.Equal(t, "heavy", f.Style)

	// project config wins
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ProjectFileName), []byte("style: double\n"), 0o644))

	f, err = Load(projectDir)
	require.NoError(t, err)
	assert.Equal(t, "double", f.Style)
}

func TestLoadIgnoresDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	projectDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(projectDir, ProjectFileName), 0o755))

	f, err := Load(projectDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle, f.Style)
}
