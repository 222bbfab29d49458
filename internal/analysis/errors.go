package analysis

import "fmt"

// InvalidRecordError reports a record that violates a documented range
// invariant. Values outside range are never clamped; the whole analysis is
// rejected with the offending field identified.
type InvalidRecordError struct {
	RecordID string
	Field    string
	Value    int
	Min      int
	Max      int
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("record %s: %s=%d outside [%d,%d]", e.RecordID, e.Field, e.Value, e.Min, e.Max)
}
