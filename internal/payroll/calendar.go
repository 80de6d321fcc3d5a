package payroll

import "time"

// MonthRange returns the first instant of the month and the last instant
// (23:59:59.999) of its final day, both in UTC.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// CountWorkingDays counts Monday-Friday days in [start, end] inclusive.
// Returns 0 when start is after end.
func CountWorkingDays(start, end time.Time) int {
	count := 0
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// countOverlapDays counts the days of [from, to] that fall inside
// [start, end], all bounds inclusive.
func countOverlapDays(from, to, start, end time.Time) int {
	lo := dateOnly(from)
	if s := dateOnly(start); lo.Before(s) {
		lo = s
	}
	hi := dateOnly(to)
	if e := dateOnly(end); hi.After(e) {
		hi = e
	}
	if lo.After(hi) {
		return 0
	}
	return int(hi.Sub(lo).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
