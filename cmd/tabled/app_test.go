package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozmod/tabled/internal/grid/config"
	"github.com/kozmod/tabled/internal/source"
)

var sampleRows = [][]string{{"a", "bb"}, {"ccc", "d"}}

// newTestDeps returns dependencies writing to buffers and loading the default configuration
func newTestDeps(stdin string) (*AppDependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	deps := &AppDependencies{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Getwd:  func() (string, error) { return "/work", nil },
		LoadConfig: func(dir string) (*config.File, error) {
			return config.DefaultFile(), nil
		},
		LoadConfigFile: func(path string) (*config.File, error) {
			return nil, errors.New("unexpected config file " + path)
		},
		OpenFile: func(path string) (io.ReadCloser, error) {
			return nil, errors.New("unexpected file " + path)
		},
		OpenDB: source.Open,
	}
	return deps, &stdout, &stderr
}

func withMockSource(t *testing.T, deps *AppDependencies, rows [][]string, err error) {
	ctrl := gomock.NewController(t)
	mockSrc := source.NewMockSource(ctrl)
	mockSrc.EXPECT().Rows(gomock.Any()).Return(rows, err)
	deps.OpenSource = func(o *options) (source.Source, io.Closer, error) {
		return mockSrc, nopCloser{}, nil
	}
}

func execute(deps *AppDependencies, args ...string) error {
	cmd := newRootCommand(deps)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestRunRendersRows(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	withMockSource(t, deps, sampleRows, nil)

	err := run(context.Background(), deps, &options{color: "auto"})
	require.NoError(t, err)
	assert.Equal(t, "+---+--+\n|a  |bb|\n+---+--+\n|ccc|d |\n+---+--+\n", stdout.String())
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	withMockSource(t, deps, sampleRows, nil)

	err := execute(deps, "--style", "psql", "--header", "--padding", "1", "--align", "end")
	require.NoError(t, err)
	assert.Equal(t, "   a | bb \n-----+----\n ccc |  d \n", stdout.String())
}

func TestRunTruncate(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	withMockSource(t, deps, [][]string{{"hello world"}}, nil)

	err := execute(deps, "--max-width", "5", "--truncate", "~")
	require.NoError(t, err)
	assert.Equal(t, "+-----+\n|hell~|\n+-----+\n", stdout.String())
}

func TestRunWrap(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	withMockSource(t, deps, [][]string{{"ab cd"}}, nil)

	err := execute(deps, "-w", "3")
	require.NoError(t, err)
	assert.Equal(t, "+---+\n|ab |\n|cd |\n+---+\n", stdout.String())
}

func TestRunSourceError(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	withMockSource(t, deps, nil, errors.New("boom"))

	err := run(context.Background(), deps, &options{color: "auto"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rows")
	assert.Empty(t, stdout.String())
}

func TestRunEmptyInputPrintsNothing(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	withMockSource(t, deps, nil, nil)

	require.NoError(t, run(context.Background(), deps, &options{color: "auto"}))
	assert.Empty(t, stdout.String())
}

func TestRunConfigFileWithColors(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	withMockSource(t, deps, sampleRows, nil)

	var loaded string
	deps.LoadConfigFile = func(path string) (*config.File, error) {
		loaded = path
		return config.Parse([]byte("style: markdown\ncolors:\n  innerVertical: \"9\"\n"))
	}

	err := execute(deps, "--config", "table.yaml", "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, "table.yaml", loaded)
	assert.Contains(t, stdout.String(), "\x1b[")
	assert.Contains(t, stdout.String(), "|a  ")
}

func TestRunColorNever(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	withMockSource(t, deps, sampleRows, nil)
	deps.LoadConfig = func(dir string) (*config.File, error) {
		assert.Equal(t, "/work", dir)
		return config.Parse([]byte("colors:\n  top: \"#ff0000\"\n"))
	}

	require.NoError(t, execute(deps, "--color", "never"))
	assert.NotContains(t, stdout.String(), "\x1b[")
}

func TestRunDebugLogs(t *testing.T) {
	deps, _, stderr := newTestDeps("")
	withMockSource(t, deps, sampleRows, nil)

	require.NoError(t, execute(deps, "--debug"))
	assert.Contains(t, stderr.String(), "read input")
	assert.Contains(t, stderr.String(), "rendered table")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown style", args: []string{"--style", "fancy"}},
		{name: "unknown color mode", args: []string{"--color", "rainbow"}},
		{name: "unknown alignment", args: []string{"--align", "diagonal"}},
		{name: "negative padding", args: []string{"--padding", "-1"}},
		{name: "negative max width", args: []string{"--max-width", "-2"}},
		{name: "sqlite without query", args: []string{"--sqlite", "db.sqlite"}},
		{name: "query without sqlite", args: []string{"--query", "SELECT 1"}},
		{name: "unknown format", args: []string{"--format", "xml"}},
		{name: "too many files", args: []string{"a.csv", "b.csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, stdout, _ := newTestDeps("a,b\n")
			err := execute(deps, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunConfigLoadError(t *testing.T) {
	deps, _, _ := newTestDeps("")
	deps.Getwd = func() (string, error) { return "", errors.New("gone") }

	err := execute(deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "working directory")
}

func TestOpenSourceStdin(t *testing.T) {
	deps, stdout, _ := newTestDeps("name,qty\napples,3\n")

	require.NoError(t, execute(deps, "--style", "psql"))
	assert.Equal(t, "name  |qty\n------+---\napples|3  \n", stdout.String())
}

func TestOpenSourceFile(t *testing.T) {
	deps, stdout, _ := newTestDeps("")
	var opened string
	deps.OpenFile = func(path string) (io.ReadCloser, error) {
		opened = path
		return io.NopCloser(strings.NewReader(`[{"b": 2, "a": "x"}]`)), nil
	}

	require.NoError(t, execute(deps, "data.JSON", "--style", "markdown"))
	assert.Equal(t, "data.JSON", opened)
	assert.Equal(t, "|a|b|\n|-|-|\n|x|2|\n", stdout.String())
}

func TestOpenSourceFileError(t *testing.T) {
	deps, _, _ := newTestDeps("")

	err := execute(deps, "missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input")
}

func TestOpenSourceSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruits.db")
	db, err := source.Open(path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE fruits (name TEXT, qty INTEGER); INSERT INTO fruits VALUES ('kiwi', 12);")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	deps, stdout, _ := newTestDeps("")
	require.NoError(t, execute(deps, "--sqlite", path, "-q", "SELECT name, qty FROM fruits", "-s", "psql"))
	assert.Equal(t, "name|qty\n----+---\nkiwi|12 \n", stdout.String())
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"a.csv":       "csv",
		"a.tsv":       "tsv",
		"A.TAB":       "tsv",
		"a.json":      "json",
		"noextension": "csv",
	}
	for path, want := range tests {
		if got := formatFromPath(path); got != want {
			t.Errorf("formatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLogAndExit(t *testing.T) {
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	code := -1
	exitFunc = func(c int) { code = c }

	var buf bytes.Buffer
	logAndExit(newLogger(&buf, false), nil)
	assert.Equal(t, -1, code)

	logAndExit(newLogger(&buf, false), errors.New("bad input"))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "bad input")
}
