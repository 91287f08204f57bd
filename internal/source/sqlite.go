package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/glebarez/sqlite"
	"github.com/pkg/errors"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the SQLite database
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "failed to open database")
	}
	return &DB{DB: sqlDB}, nil
}

// Query returns a source reading the result of query
func (db *DB) Query(query string, args ...any) *Query {
	return &Query{db: db.DB, query: query, args: args}
}

// Query is a source over the rows of one SQL query. Column names form the header row.
type Query struct {
	db    *sql.DB
	query string
	args  []any
}

// Rows runs the query
func (q *Query) Rows(ctx context.Context) ([][]string, error) {
	rs, err := q.db.QueryContext(ctx, q.query, q.args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run query")
	}
	defer rs.Close()

	columns, err := rs.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read columns")
	}

	rows := [][]string{columns}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rs.Next() {
		if err := rs.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = sqlText(v)
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read rows")
	}
	return rows, nil
}

// sqlText formats a scanned value, NULL as an empty cell
func sqlText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
