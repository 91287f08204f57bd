package layout

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSpan is returned for spans with fewer than one row or column
	ErrInvalidSpan = errors.New("span must cover at least one row and one column")
	// ErrSpanOutOfBounds is returned when a span leaves the grid
	ErrSpanOutOfBounds = errors.New("span extends outside the grid")
	// ErrOverlappingSpans is returned when two spans claim the same position
	ErrOverlappingSpans = errors.New("spans overlap")
)

// SpanError describes a rejected span declaration
type SpanError struct {
	Position Position
	Span     Span
	Err      error
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("span %s at %s: %v", e.Span, e.Position, e.Err)
}

// Unwrap returns the underlying sentinel error
func (e *SpanError) Unwrap() error {
	return e.Err
}

func spanError(pos Position, span Span, err error) error {
	return errors.WithStack(&SpanError{Position: pos, Span: span, Err: err})
}
