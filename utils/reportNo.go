package utils

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// GenerateReportNo builds the printed report number, e.g. SR-260831-042.
func GenerateReportNo(ts time.Time) string {
	return fmt.Sprintf("SR-%s-%03d", ts.Format("060102"), ts.Unix()%1000)
}

// DayStart returns the beginning of the day the date string falls on, for
// created_at range filters. The second return is false when parsing fails.
func DayStart(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return now.New(t).BeginningOfDay(), true
}

// DayEnd returns the end of the day the date string falls on.
func DayEnd(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return now.New(t).EndOfDay(), true
}
