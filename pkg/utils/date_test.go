package utils

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	testCases := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "afternoon",
			time: time.Date(2025, 6, 10, 14, 5, 0, 0, time.UTC),
			want: "2:05 PM",
		},
		{
			name: "morning without leading zero",
			time: time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
			want: "9:30 AM",
		},
		{
			name: "midnight",
			time: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			want: "12:00 AM",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatClock(tc.time); got != tc.want {
				t.Errorf("Expected %q, got: %q", tc.want, got)
			}
		})
	}
}
