// Due-date projection. Each billing cycle has its own projector behind a
// registry, so the calendar grid, the reminder worker, and the analytics
// views all share one copy of the occurrence rules.
package schedule

import (
	"time"

	"subtrack/internal/core"
)

// Occurrence is one concrete billing date inside a projected year.
type Occurrence struct {
	Month time.Month
	Day   int
}

// projector computes the billing days of one subscription within one
// calendar month. Implementations are stateless.
type projector interface {
	daysInMonth(sub core.Subscription, year int, month time.Month) []int
}

type monthlyProjector struct{}

func (monthlyProjector) daysInMonth(sub core.Subscription, year int, month time.Month) []int {
	day := core.ClampDay(sub.StartDate.Day(), year, month)
	if !occurs(sub, core.NewDate(year, month, day)) {
		return nil
	}
	return []int{day}
}

type yearlyProjector struct{}

func (yearlyProjector) daysInMonth(sub core.Subscription, year int, month time.Month) []int {
	// Yearly subscriptions bill once, in the anniversary month.
	if year < sub.StartDate.Year() || month != sub.StartDate.Month() {
		return nil
	}
	day := core.ClampDay(sub.StartDate.Day(), year, month)
	if !occurs(sub, core.NewDate(year, month, day)) {
		return nil
	}
	return []int{day}
}

// occurs checks a candidate billing date against the subscription's
// window: not before the start day (the first partial month) and not past
// the end date's full day.
func occurs(sub core.Subscription, due core.Date) bool {
	at := core.StartOfDay(due)
	if at.Before(core.StartOfDay(sub.StartDate)) {
		return false
	}
	if !sub.EndDate.IsZero() && at.After(core.EndOfDay(sub.EndDate)) {
		return false
	}
	return true
}

// projectors maps billing cycles to their projector. Unrecognized cycles
// fall back to the monthly rule.
var projectors = map[core.BillingCycle]projector{
	core.Monthly: monthlyProjector{},
	core.Yearly:  yearlyProjector{},
}

func projectorFor(cycle core.BillingCycle) projector {
	if p, ok := projectors[cycle]; ok {
		return p
	}
	return projectors[core.Monthly]
}

// OccurrencesInMonth returns the days of the given month on which the
// subscription bills, ascending. A record without a valid start date, or
// with no overlap with the month, contributes nothing.
func OccurrencesInMonth(sub core.Subscription, year int, month time.Month) []int {
	if sub.StartDate.IsZero() || !ActiveInMonth(sub, year, month) {
		return nil
	}
	return projectorFor(sub.Cycle).daysInMonth(sub, year, month)
}

// OccurrencesInYear returns every billing date of the subscription within
// the year, ordered by month then day. Monthly subscriptions yield up to
// twelve entries, yearly ones at most one.
func OccurrencesInYear(sub core.Subscription, year int) []Occurrence {
	if sub.StartDate.IsZero() || !ActiveInYear(sub, year) {
		return nil
	}
	var out []Occurrence
	for m := time.January; m <= time.December; m++ {
		for _, day := range OccurrencesInMonth(sub, year, m) {
			out = append(out, Occurrence{Month: m, Day: day})
		}
	}
	return out
}

// DueOn reports whether the subscription bills on the given calendar day.
func DueOn(sub core.Subscription, date core.Date) bool {
	for _, day := range OccurrencesInMonth(sub, date.Year(), date.Month()) {
		if day == date.Day() {
			return true
		}
	}
	return false
}
