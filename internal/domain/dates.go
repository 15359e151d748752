package domain

import "time"

// AddMonths advances d by the given number of calendar months, clamping the
// day to the last day of the target month (Jan 31 + 1 month = Feb 28/29).
// time.AddDate is not used because it rolls overflow into the next month.
func AddMonths(d time.Time, months int) time.Time {
	month := int(d.Month()) - 1 + months
	year := d.Year() + month/12
	m := time.Month(month%12 + 1)

	day := d.Day()
	if last := daysInMonth(year, m); day > last {
		day = last
	}

	return time.Date(year, m, day, 0, 0, 0, 0, d.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, m time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
