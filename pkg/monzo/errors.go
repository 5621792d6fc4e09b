package monzo

import "fmt"

// ParseError reports a malformed field in a single raw row. The row is
// skipped; the batch continues.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: field %q: cannot parse %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CategorySplitError reports a malformed category-split annotation. It
// fails the row that carries it, not the batch.
type CategorySplitError struct {
	Row    int
	Entry  string
	Reason string
}

func (e *CategorySplitError) Error() string {
	return fmt.Sprintf("row %d: category split %q: %s", e.Row, e.Entry, e.Reason)
}

// RowError pairs a skipped row with the error that caused the skip.
// Normalization returns these as values so the caller decides how and
// where to report them.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d skipped: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }
