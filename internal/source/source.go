// Package source reads table rows from CSV, TSV, JSON and SQLite inputs
package source

//go:generate mockgen -source=source.go -destination=mock_source.go -package=source

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownFormat is returned for an input format with no reader
var ErrUnknownFormat = errors.New("unknown input format")

// Source produces the rows of a table
type Source interface {
	Rows(ctx context.Context) ([][]string, error)
}

// Formats lists the formats accepted by ForFormat
var Formats = []string{"csv", "tsv", "json"}

// ForFormat returns a reader of r for a stream format
func ForFormat(format string, r io.Reader) (Source, error) {
	switch strings.ToLower(format) {
	case "csv":
		return &CSV{Reader: r, Comma: ','}, nil
	case "tsv":
		return &CSV{Reader: r, Comma: '\t'}, nil
	case "json":
		return &JSON{Reader: r}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q (available: %s)", format, strings.Join(Formats, ", "))
	}
}

// normalize pads short rows with empty cells to the widest row
func normalize(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]string, width-len(row))...)
		}
	}
	return rows
}
