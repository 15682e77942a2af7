package uadmin

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// millisecondEpochThreshold splits epoch values into seconds and
// milliseconds: anything above it is too large to be a plausible
// seconds timestamp.
const millisecondEpochThreshold = 10_000_000_000

// FlexTime is a time.Time that tolerates the date encodings the API is
// known to emit: ISO-8601 strings, numeric epochs (seconds or
// milliseconds), and RFC-1123 formatted strings. A value that matches
// none of them unmarshals to the zero time instead of failing, so a
// missing or mangled date never rejects the record that carries it.
type FlexTime struct {
	time.Time
}

// NewFlexTime wraps a time.Time.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	f.Time, _ = ParseFlexTime(data)

	return nil
}

// MarshalJSON implements json.Marshaler. Zero times marshal to null.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(f.Format(time.RFC3339))
}

// ParseFlexTime resolves a raw JSON value into a timestamp, attempting
// ISO-8601, then epoch seconds/milliseconds, then RFC-1123, in that
// order. The second return value reports whether any format matched.
func ParseFlexTime(data []byte) (time.Time, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return time.Time{}, false
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if t, err := time.Parse(time.RFC3339, str); err == nil {
			return t, true
		}

		if epoch, err := strconv.ParseInt(str, 10, 64); err == nil {
			return epochToTime(epoch), true
		}

		if t, err := time.Parse(time.RFC1123, str); err == nil {
			return t, true
		}

		return time.Time{}, false
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		if epoch, err := num.Int64(); err == nil {
			return epochToTime(epoch), true
		}

		if fl, err := num.Float64(); err == nil {
			return epochToTime(int64(fl)), true
		}
	}

	return time.Time{}, false
}

// epochToTime interprets epoch magnitude: values above the threshold
// are milliseconds, the rest seconds.
func epochToTime(epoch int64) time.Time {
	if epoch > millisecondEpochThreshold || epoch < -millisecondEpochThreshold {
		return time.UnixMilli(epoch).UTC()
	}

	return time.Unix(epoch, 0).UTC()
}
