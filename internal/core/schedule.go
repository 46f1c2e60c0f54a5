package core

import "time"

// DailyTarget returns how many posts the automation should publish for
// the given day. Weekends get the regular batch plus an extra one.
func DailyTarget(day time.Time) int {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return 8
	}
	return 4
}
