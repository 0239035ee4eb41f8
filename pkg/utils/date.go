package utils

import (
	"time"
)

const clockLayout = "3:04 PM"

// FormatClock renders a timestamp as the short clock label shown next to a
// quote, e.g. "2:35 PM".
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}
