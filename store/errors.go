package store

import "fmt"

// FormatError reports a grid file that does not follow the symbolic grid format.
// Row and Col are -1 when the problem is not tied to a single row or cell.
type FormatError struct {
	Path   string
	Row    int
	Col    int
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("invalid grid format in %s: %s", e.Path, e.Reason)
	case e.Col < 0:
		return fmt.Sprintf("invalid grid row %d in %s: %s", e.Row, e.Path, e.Reason)
	default:
		return fmt.Sprintf("invalid cell value at (%d, %d) in %s: %s (%s)", e.Row, e.Col, e.Path, e.Value, e.Reason)
	}
}

// IOError wraps a filesystem failure while reading or writing a grid file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
