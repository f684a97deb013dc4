package reporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundDuration(t *testing.T) {
	tests := []struct {
		dur  time.Duration
		want time.Duration
	}{
		{dur: 5*time.Minute + 3*time.Second, want: 5 * time.Minute},
		{dur: 2*time.Second + 7*time.Millisecond, want: 2*time.Second + 10*time.Millisecond},
		{dur: 15*time.Millisecond + 4*time.Microsecond, want: 15 * time.Millisecond},
		{dur: 3*time.Microsecond + 6*time.Nanosecond, want: 3*time.Microsecond + 10*time.Nanosecond},
		{dur: 800 * time.Nanosecond, want: 800 * time.Nanosecond},
	}
	for _, tt := range tests {
		t.Run(tt.dur.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, roundDuration(tt.dur))
		})
	}
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		dur  time.Duration
		want string
	}{
		{dur: 500 * time.Microsecond, want: "0.500ms"},
		{dur: 5*time.Millisecond + 250*time.Microsecond, want: "5.25ms"},
		{dur: 42*time.Millisecond + 500*time.Microsecond, want: "42.5ms"},
		{dur: 250 * time.Millisecond, want: "250ms"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMillis(tt.dur))
		})
	}
}
