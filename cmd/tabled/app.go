package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kozmod/tabled"
	"github.com/kozmod/tabled/internal/grid/config"
	"github.com/kozmod/tabled/internal/source"
)

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	Stdin          io.Reader
	Stdout         io.Writer
	Stderr         io.Writer
	Getwd          func() (string, error)
	LoadConfig     func(dir string) (*config.File, error)
	LoadConfigFile func(path string) (*config.File, error)
	OpenFile       func(path string) (io.ReadCloser, error)
	OpenDB         func(path string) (*source.DB, error)
	// OpenSource overrides how the input is located; nil uses the flags with the functions above
	OpenSource func(o *options) (source.Source, io.Closer, error)
}

func defaultDependencies() *AppDependencies {
	return &AppDependencies{
		Stdin:          os.Stdin,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Getwd:          os.Getwd,
		LoadConfig:     config.Load,
		LoadConfigFile: config.LoadFile,
		OpenFile: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		OpenDB: source.Open,
	}
}

// options holds the parsed command line
type options struct {
	file       string
	format     string
	sqlite     string
	query      string
	configPath string
	style      string
	header     bool
	align      string
	padding    int
	paddingSet bool
	maxWidth   int
	truncate   string
	color      string
	debug      bool
}

func newRootCommand(deps *AppDependencies) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "tabled [file]",
		Short: "Render CSV, TSV, JSON or SQLite rows as a terminal table",
		Long: "tabled reads rows from a file, stdin or a SQLite query and prints them as an aligned table.\n" +
			"Styles: " + strings.Join(config.StyleNames(), ", "),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.file = args[0]
			}
			o.paddingSet = cmd.Flags().Changed("padding")
			return run(cmd.Context(), deps, o)
		},
	}
	bindFlags(cmd.Flags(), o)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.format, "format", "f", "", "input format: csv, tsv or json (default from the file extension, csv for stdin)")
	fs.StringVar(&o.sqlite, "sqlite", "", "read rows from this SQLite database")
	fs.StringVarP(&o.query, "query", "q", "", "SQL query to run with --sqlite")
	fs.StringVarP(&o.configPath, "config", "c", "", "configuration file (default ./"+config.ProjectFileName+" or ~/.config/tabled/config.yaml)")
	fs.StringVarP(&o.style, "style", "s", "", "border style")
	fs.BoolVar(&o.header, "header", false, "draw a separator below the first row")
	fs.StringVarP(&o.align, "align", "a", "", "horizontal alignment: start, center or end")
	fs.IntVarP(&o.padding, "padding", "p", 0, "spaces left and right of every cell")
	fs.IntVarP(&o.maxWidth, "max-width", "w", 0, "wrap cells wider than this")
	fs.StringVar(&o.truncate, "truncate", "", "truncate cells at --max-width with this suffix instead of wrapping")
	fs.StringVar(&o.color, "color", "auto", "border colors: auto, always or never")
	fs.BoolVar(&o.debug, "debug", false, "log layout decisions to stderr")
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

func run(ctx context.Context, deps *AppDependencies, o *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(deps.Stderr, o.debug)

	file, err := loadConfig(deps, o)
	if err != nil {
		return err
	}
	opts, err := tableOptions(deps, o, file)
	if err != nil {
		return err
	}

	open := deps.OpenSource
	if open == nil {
		open = deps.openSource
	}
	src, closer, err := open(o)
	if err != nil {
		return err
	}
	defer closer.Close()

	rows, err := src.Rows(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read rows")
	}
	logger.Debug().Int("rows", len(rows)).Msg("read input")

	opts = append(opts, tabled.WithLogger(logger))
	out, err := tabled.New(rows, opts...).Render()
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(deps.Stdout, out)
	return err
}

func loadConfig(deps *AppDependencies, o *options) (*config.File, error) {
	if o.configPath != "" {
		return deps.LoadConfigFile(o.configPath)
	}
	dir, err := deps.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}
	return deps.LoadConfig(dir)
}

// tableOptions combines the configuration file with the flags, flags taking precedence
func tableOptions(deps *AppDependencies, o *options, file *config.File) ([]tabled.Option, error) {
	style, err := file.BorderStyle()
	if o.style != "" {
		style, err = config.StyleByName(o.style)
	}
	if err != nil {
		return nil, err
	}
	if o.header {
		style.Lines.Header = true
	}

	layers, err := file.Layers()
	if err != nil {
		return nil, err
	}

	global := config.NewSettings()
	if o.align != "" {
		a, err := config.ParseAlign(o.align)
		if err != nil {
			return nil, err
		}
		global = global.Align(a)
	}
	if o.paddingSet {
		if o.padding < 0 {
			return nil, errors.Errorf("padding must not be negative, got %d", o.padding)
		}
		global = global.Pad(0, 0, o.padding, o.padding)
	}
	switch {
	case o.maxWidth < 0:
		return nil, errors.Errorf("max width must not be negative, got %d", o.maxWidth)
	case o.maxWidth > 0 && o.truncate != "":
		global = global.Truncated(o.maxWidth, o.truncate)
	case o.maxWidth > 0:
		global = global.Wrapped(o.maxWidth, true)
	}
	layers.Set(config.Global(), global)

	renderer := lipgloss.NewRenderer(deps.Stdout)
	switch o.color {
	case "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	case "auto":
	default:
		return nil, errors.Errorf("unknown color mode %q (available: auto, always, never)", o.color)
	}

	opts := []tabled.Option{
		tabled.WithStyle(style),
		tabled.WithMargin(file.TableMargin()),
		tabled.WithBorderColors(file.BorderColors(renderer)),
	}
	for _, e := range layers.Entities() {
		s, _ := layers.Get(e)
		opts = append(opts, tabled.WithSettings(e, s))
	}
	return opts, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openSource picks the input from the flags: a SQLite query, a file or stdin
func (d *AppDependencies) openSource(o *options) (source.Source, io.Closer, error) {
	if o.sqlite != "" {
		if o.query == "" {
			return nil, nil, errors.New("--query is required with --sqlite")
		}
		db, err := d.OpenDB(o.sqlite)
		if err != nil {
			return nil, nil, err
		}
		return db.Query(o.query), db, nil
	}
	if o.query != "" {
		return nil, nil, errors.New("--query needs --sqlite")
	}

	format := o.format
	if o.file == "" {
		if format == "" {
			format = "csv"
		}
		src, err := source.ForFormat(format, d.Stdin)
		return src, nopCloser{}, err
	}

	if format == "" {
		format = formatFromPath(o.file)
	}
	f, err := d.OpenFile(o.file)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open input")
	}
	src, err := source.ForFormat(format, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return src, f, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return "tsv"
	case ".json":
		return "json"
	default:
		return "csv"
	}
}
