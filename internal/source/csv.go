package source

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// CSV reads delimiter separated records
type CSV struct {
	Reader io.Reader
	// Comma is the field delimiter, ',' when zero
	Comma rune
}

// Rows reads every record. Records with fewer fields are padded.
func (s *CSV) Rows(ctx context.Context) ([][]string, error) {
	r := csv.NewReader(s.Reader)
	if s.Comma != 0 {
		r.Comma = s.Comma
	}
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read csv")
		}
		rows = append(rows, record)
	}
	return normalize(rows), nil
}
