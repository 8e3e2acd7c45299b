package schedule

import (
	"time"

	"subtrack/internal/core"
)

// MonthGrid describes the shape of one rendered month: how many leading
// blanks the grid needs before day 1 and how many day cells follow.
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int // weekday of the 1st, Sunday-first
	Days          int
}

// Grid computes the calendar grid shape for a month.
func Grid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          core.DaysInMonth(year, month),
	}
}

// DueMap builds the calendar-cell mapping from day-of-month to the
// subscriptions due that day, after the sort/filter pipeline has run.
// Within a day the active sort order governs the list; date order keeps
// the pipeline's order as-is.
func DueMap(subs []core.Subscription, year int, month time.Month, sortBy SortBy, filterBy FilterBy) map[int][]core.Subscription {
	due := make(map[int][]core.Subscription)
	for _, sub := range Prepare(subs, sortBy, filterBy) {
		for _, day := range OccurrencesInMonth(sub, year, month) {
			due[day] = append(due[day], sub)
		}
	}
	// Per-day lists inherit the pipeline order for price/name sorts
	// already; resorting keeps them correct when several days collide.
	for day := range due {
		sortSubscriptions(due[day], sortBy)
	}
	return due
}
