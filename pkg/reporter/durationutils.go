package reporter

import (
	"fmt"
	"time"
)

func roundDuration(dur time.Duration) time.Duration {
	if dur > time.Minute {
		return dur.Round(10 * time.Second)
	}
	if dur > time.Second {
		return dur.Round(10 * time.Millisecond)
	}
	if dur > time.Millisecond {
		return dur.Round(10 * time.Microsecond)
	}
	if dur > time.Microsecond {
		return dur.Round(10 * time.Nanosecond)
	}
	return dur
}

// formatMillis renders a duration in milliseconds with a precision that keeps
// sub-millisecond values readable.
func formatMillis(dur time.Duration) string {
	ms := float64(dur.Nanoseconds()) / float64(time.Millisecond)
	switch {
	case ms < 1.0:
		return fmt.Sprintf("%.3fms", ms)
	case ms < 10.0:
		return fmt.Sprintf("%.2fms", ms)
	case ms < 100.0:
		return fmt.Sprintf("%.1fms", ms)
	default:
		return fmt.Sprintf("%.0fms", ms)
	}
}

func millis(dur time.Duration) float64 {
	return float64(dur.Nanoseconds()) / float64(time.Millisecond)
}
