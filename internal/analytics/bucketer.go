package analytics

import (
	"time"
)

const dayFormat = "2006-01-02"

// Window is one report's inclusive epoch-second range plus the seller's
// UTC offset in hours (positive east of UTC).
type Window struct {
	From     int64
	To       int64
	TZOffset int
}

// LocalDate converts a vendor epoch-second timestamp to the seller's
// local calendar date. The offset is applied to the epoch value and the
// calendar fields are read in UTC, so the server's own timezone never
// leaks into bucketing.
func LocalDate(ts int64, offsetHours int) string {
	return time.Unix(ts+int64(offsetHours)*3600, 0).UTC().Format(dayFormat)
}

// DayRange enumerates every local calendar date from the local date of
// w.From through the local date of w.To inclusive. Seeding daily maps
// with this range keeps time series gap-free on zero-activity days.
func (w Window) DayRange() []string {
	start := localMidnight(w.From, w.TZOffset)
	end := localMidnight(w.To, w.TZOffset)

	var days []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur.Format(dayFormat))
	}
	return days
}

func localMidnight(ts int64, offsetHours int) time.Time {
	t := time.Unix(ts+int64(offsetHours)*3600, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
