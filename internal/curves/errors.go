package curves

import "fmt"

// MissingColumnError reports a request for a curve that the table does not hold.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("curve %q not present in table", e.Column)
}

// EmptyTableError reports an operation that needs at least one row.
type EmptyTableError struct {
	Op string
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("%s requires a non-empty table", e.Op)
}
