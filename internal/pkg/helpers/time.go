package helpers

import "time"

const iso8601Millis = "2006-01-02T15:04:05.000Z"

// FormatISO8601 renders t in UTC with millisecond precision, e.g. 2024-07-01T09:15:00.000Z.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(iso8601Millis)
}

// ParseISO8601 accepts RFC 3339 timestamps with or without fractional seconds.
func ParseISO8601(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
