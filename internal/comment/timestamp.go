package comment

import (
	"fmt"
	"math"
)

// FormatTimestamp renders a non-negative number of seconds as MM:SS, or
// HH:MM:SS once the anchor passes an hour, every field zero-padded to two
// digits. The page JS carries the same algorithm; the two must agree exactly
// so a freshly fetched comment matches the form's preview.
func FormatTimestamp(seconds float64) string {
	total := int64(math.Floor(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
