package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// JSON reads an array of arrays, or an array of objects whose sorted keys become the header row
type JSON struct {
	Reader io.Reader
}

// Rows decodes the whole document
func (s *JSON) Rows(ctx context.Context) ([][]string, error) {
	dec := json.NewDecoder(s.Reader)
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, errors.Wrap(err, "failed to decode json")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	switch items[0].(type) {
	case []any:
		return arrayRows(items)
	case map[string]any:
		return objectRows(items)
	default:
		return nil, errors.Errorf("json item 0 is %T, want an array or an object", items[0])
	}
}

func arrayRows(items []any) ([][]string, error) {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		values, ok := item.([]any)
		if !ok {
			return nil, errors.Errorf("json item %d is %T, want an array", i, item)
		}
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = cellText(v)
		}
		rows = append(rows, row)
	}
	return normalize(rows), nil
}

func objectRows(items []any) ([][]string, error) {
	objects := make([]map[string]any, 0, len(items))
	seen := make(map[string]struct{})
	var keys []string
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, errors.Errorf("json item %d is %T, want an object", i, item)
		}
		for k := range obj {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
		objects = append(objects, obj)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(objects)+1)
	rows = append(rows, keys)
	for _, obj := range objects {
		row := make([]string, len(keys))
		for j, k := range keys {
			row[j] = cellText(obj[k])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellText formats a decoded value. Nested values are written back as compact json.
func cellText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return ""
		}
		return string(bytes.TrimRight(buf.Bytes(), "\n"))
	}
}
