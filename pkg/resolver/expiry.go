package resolver

import (
	"strconv"
	"strings"
)

// FormatRemaining renders the time left until expires (both in seconds
// since epoch) as colon-separated units from the largest non-zero unit down
// to seconds, which are always present: 90061 remaining seconds render as
// "1:1:1:1", 3661 as "1:1:1", 59 as "59". A remaining value of zero or less
// renders as expiredLabel.
func FormatRemaining(expires, now int64, expiredLabel string) string {
	remaining := expires - now
	if remaining <= 0 {
		return expiredLabel
	}

	days := remaining / 86400
	hours := remaining % 86400 / 3600
	minutes := remaining % 3600 / 60
	seconds := remaining % 60

	units := []int64{days, hours, minutes, seconds}
	start := 0
	for start < len(units)-1 && units[start] == 0 {
		start++
	}

	parts := make([]string, 0, len(units)-start)
	for _, u := range units[start:] {
		parts = append(parts, strconv.FormatInt(u, 10))
	}
	return strings.Join(parts, ":")
}
