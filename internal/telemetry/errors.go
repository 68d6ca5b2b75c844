package telemetry

import (
	"encoding/json"
	"fmt"
)

// StatusError indicates the sink endpoint answered with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("telemetry endpoint %s returned status %d", e.URL, e.Code)
}

// InvalidRecordError indicates a record does not conform to the attempt
// schema.
type InvalidRecordError struct {
	Content json.RawMessage
	Err     error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid attempt record: %v", e.Err)
}

func (e *InvalidRecordError) Unwrap() error { return e.Err }
