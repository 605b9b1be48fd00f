package common

import (
	"time"
)

func DurationToMilliseconds(d time.Duration) float64 {
	return d.Seconds() * OneSecondInMilliseconds
}

// UnixMilliseconds converts t to Unix milliseconds, keeping sub-millisecond precision.
func UnixMilliseconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1000
}
