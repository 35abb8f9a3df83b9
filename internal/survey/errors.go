package survey

import (
	"fmt"
)

// ValidationError reports a measurement rejected by domain validation,
// currently always an RSSI value outside the accepted dBm range.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ImportError reports a CSV import that could not be parsed: missing
// required columns or an unparseable numeric field.
type ImportError struct {
	Line int // 1-based data row, 0 when the header itself is at fault
	Msg  string
}

func (e *ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("row %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}
