package kernel

import "time"

// Instant normalizes t to UTC at microsecond precision, the resolution at
// which timestamps are persisted.
func Instant(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
