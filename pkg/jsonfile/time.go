package jsonfile

import (
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout matches ISO-8601 timestamps written without a zone offset.
// Fractional seconds are accepted by the parser without being named here.
const naiveLayout = "2006-01-02T15:04:05"

// Time is a timestamp stored as an ISO-8601 string. It writes RFC 3339 and
// also reads timestamps without an offset, interpreting them as local time.
type Time struct {
	time.Time
}

// Now returns the current time as a Time.
func Now() Time {
	return Time{time.Now()}
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(naiveLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
