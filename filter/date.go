package filter

import (
	"time"

	"github.com/transitkit/txc-gtfs/model"
)

type timeOnly = time.Time

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, newInvalidDateError(s)
	}
	return d, nil
}

func weekdayFlag(cal *model.Calendar, d time.Time) bool {
	switch d.Weekday() {
	case time.Monday:
		return cal.Monday
	case time.Tuesday:
		return cal.Tuesday
	case time.Wednesday:
		return cal.Wednesday
	case time.Thursday:
		return cal.Thursday
	case time.Friday:
		return cal.Friday
	case time.Saturday:
		return cal.Saturday
	case time.Sunday:
		return cal.Sunday
	default:
		return false
	}
}
