package report

import (
	"strconv"
	"strings"
)

// HoursWorked converts a start/end/pause triple into decimal hours:
// ((end - start) in minutes - pause) / 60. No rounding happens here; rounding
// is a display concern. Times are not range-checked and a pause longer than
// the interval yields a negative result, which callers tolerate.
func HoursWorked(startTime, endTime string, pauseMinutes int) float64 {
	worked := clockMinutes(endTime) - clockMinutes(startTime) - pauseMinutes
	return float64(worked) / 60.0
}

// clockMinutes parses "HH:MM" as minutes since midnight. Unparsable
// components count as zero rather than failing.
func clockMinutes(t string) int {
	hh, mm, _ := strings.Cut(t, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	return hours*60 + minutes
}
