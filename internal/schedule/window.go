// Package schedule decides when subscriptions bill: the active window
// resolver, the due-date projector, and the sort/filter pipeline feeding
// the calendar and analytics views. Everything here is pure computation
// over an immutable snapshot; it is recomputed fresh per render pass.
package schedule

import (
	"time"

	"subtrack/internal/core"
)

// ActiveInPeriod reports whether a subscription has any billable overlap
// with [periodStart, periodEnd]. A missing start date means no overlap at
// all; the end date is inclusive through its full day. A subscription
// whose end date precedes its start date never overlaps anything.
func ActiveInPeriod(sub core.Subscription, periodStart, periodEnd time.Time) bool {
	if sub.StartDate.IsZero() {
		return false
	}
	if !sub.EndDate.IsZero() && sub.EndDate.Before(sub.StartDate.Time) {
		return false
	}
	if periodEnd.Before(core.StartOfDay(sub.StartDate)) {
		return false
	}
	if !sub.EndDate.IsZero() && periodStart.After(core.EndOfDay(sub.EndDate)) {
		return false
	}
	return true
}

// ActiveInMonth is ActiveInPeriod over one calendar month.
func ActiveInMonth(sub core.Subscription, year int, month time.Month) bool {
	start, end := core.MonthBounds(year, month)
	return ActiveInPeriod(sub, start, end)
}

// ActiveInYear is ActiveInPeriod over one calendar year.
func ActiveInYear(sub core.Subscription, year int) bool {
	start, end := core.YearBounds(year)
	return ActiveInPeriod(sub, start, end)
}

// DaysUntilEnd returns how many days remain until the subscription's end
// date, counted from today. The second return is false for open-ended
// subscriptions. Negative values mean the subscription already ended.
func DaysUntilEnd(sub core.Subscription, today core.Date) (int, bool) {
	if sub.EndDate.IsZero() {
		return 0, false
	}
	diff := core.StartOfDay(sub.EndDate).Sub(core.StartOfDay(today))
	return int(diff.Hours() / 24), true
}
