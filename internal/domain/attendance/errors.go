package attendance

import "fmt"

// DataFormatError reports upstream data that violates the wire contract,
// typically an unparseable punch_time. A report computation that hits one
// aborts instead of silently under-counting attendance.
type DataFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("malformed %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }
