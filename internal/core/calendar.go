// Package core provides the domain model and the calendar arithmetic the
// projection engine is built on. All dates are UTC calendar days; no
// timezone handling happens past this boundary.
package core

import "time"

// DaysInMonth returns the number of days in the given month, using the
// day-zero-of-the-next-month trick so leap years come out right.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay pins a billing day into the target month, so a subscription
// billed on the 31st lands on Feb 28 (29 in leap years) and on the 30th
// of the shorter months.
func ClampDay(day, year int, month time.Month) int {
	if max := DaysInMonth(year, month); day > max {
		return max
	}
	return day
}

// StartOfDay strips the time-of-day so comparisons are calendar-day
// comparisons.
func StartOfDay(d Date) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// EndOfDay maxes out the time-of-day; an end date is inclusive through
// its full day.
func EndOfDay(d Date) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// MonthBounds returns the first and last instants of a calendar month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := EndOfDay(NewDate(year, month, DaysInMonth(year, month)))
	return start, end
}

// YearBounds returns the first and last instants of a calendar year.
func YearBounds(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndOfDay(NewDate(year, time.December, 31))
}
