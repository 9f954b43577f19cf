// utils/dates.go
package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in "YYYY-MM-DD" form. The result is
// midnight UTC so that equality against stored appointment dates holds.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
