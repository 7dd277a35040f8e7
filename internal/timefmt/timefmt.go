package timefmt

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Since renders the distance between t and now as a human-relative string
// ("3 days ago", "now"). Feed items carry these instead of raw timestamps.
func Since(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
