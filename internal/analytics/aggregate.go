// Package analytics aggregates subscription spend across time windows
// and categories. All functions consume an immutable snapshot and return
// fresh structures; amounts stay full-precision decimals, and rounding to
// two places belongs to the presentation layer alone.
package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"subtrack/internal/core"
	"subtrack/internal/schedule"
)

const (
	ModeMonthly ViewMode = "monthly"
	ModeYearly  ViewMode = "yearly"
)

// ErrInvalidYearRange marks a caller bug: a yearly range whose end year
// precedes its start year. Unlike malformed data, this fails fast.
var ErrInvalidYearRange = errors.New("invalid year range")

var monthLabels = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

type (
	ViewMode string

	// ViewConfig is the immutable per-call view selection. The engine
	// holds no cursor or selector state of its own.
	ViewConfig struct {
		Mode     ViewMode
		Year     int
		FromYear int
		ToYear   int
		SortBy   schedule.SortBy
		FilterBy schedule.FilterBy
	}

	// Series is a chart-ready dataset.
	Series struct {
		Labels []string
		Data   []decimal.Decimal
	}

	CategoryTotal struct {
		Name   string // display form, first letter capitalized
		Amount decimal.Decimal
	}

	Summary struct {
		TotalMonthly   decimal.Decimal
		TotalYearly    decimal.Decimal
		ActiveCount    int
		AverageMonthly decimal.Decimal
	}

	TopItem struct {
		Subscription core.Subscription
		MonthlyPrice decimal.Decimal
		Share        decimal.Decimal // percentage of total monthly spend
	}
)

// ParseMode defaults to the monthly view.
func ParseMode(s string) ViewMode {
	if ViewMode(s) == ModeYearly {
		return ModeYearly
	}
	return ModeMonthly
}

// Rounded returns the series data rounded to two places for display.
func (s Series) Rounded() []float64 {
	out := make([]float64, len(s.Data))
	for i, d := range s.Data {
		out[i], _ = d.Round(2).Float64()
	}
	return out
}

// countable reports whether a record participates in spend math at all:
// paused records are out, as are records with no valid active window
// (missing start date, or an end date before the start date).
func countable(sub core.Subscription) bool {
	if !sub.Active || sub.StartDate.IsZero() {
		return false
	}
	if !sub.EndDate.IsZero() && sub.EndDate.Before(sub.StartDate.Time) {
		return false
	}
	return true
}

// MonthlySeries computes spend per month of one year: for every month,
// the sum of monthly-equivalent prices over the subscriptions active in
// that month.
func MonthlySeries(subs []core.Subscription, year int) Series {
	s := Series{Labels: monthLabels[:], Data: make([]decimal.Decimal, 12)}
	for i := range s.Data {
		s.Data[i] = decimal.Zero
	}
	for _, sub := range subs {
		if !countable(sub) {
			continue
		}
		monthly := sub.MonthlyPrice()
		for m := time.January; m <= time.December; m++ {
			if schedule.ActiveInMonth(sub, year, m) {
				s.Data[m-1] = s.Data[m-1].Add(monthly)
			}
		}
	}
	return s
}

// YearlySeries computes spend per year over an inclusive range. Each
// subscription contributes its monthly-equivalent price times the number
// of months it is active within that year, truncating partial first and
// last years to the start and end months.
func YearlySeries(subs []core.Subscription, fromYear, toYear int) (Series, error) {
	if toYear < fromYear {
		return Series{}, fmt.Errorf("%w: %d-%d", ErrInvalidYearRange, fromYear, toYear)
	}
	s := Series{}
	for year := fromYear; year <= toYear; year++ {
		total := decimal.Zero
		for _, sub := range subs {
			if !countable(sub) {
				continue
			}
			if months := activeMonthsInYear(sub, year); months > 0 {
				total = total.Add(sub.MonthlyPrice().Mul(decimal.NewFromInt(int64(months))))
			}
		}
		s.Labels = append(s.Labels, strconv.Itoa(year))
		s.Data = append(s.Data, total)
	}
	return s, nil
}

// SeriesFor evaluates the series the view configuration selects: the
// twelve-month breakdown of cfg.Year in monthly mode, or the per-year
// totals over [cfg.FromYear, cfg.ToYear] in yearly mode.
func SeriesFor(subs []core.Subscription, cfg ViewConfig) (Series, error) {
	if cfg.Mode == ModeYearly {
		return YearlySeries(subs, cfg.FromYear, cfg.ToYear)
	}
	return MonthlySeries(subs, cfg.Year), nil
}

// activeMonthsInYear counts the months (0-12) a subscription is active
// within one calendar year.
func activeMonthsInYear(sub core.Subscription, year int) int {
	if sub.StartDate.Year() > year {
		return 0
	}
	if !sub.EndDate.IsZero() && sub.EndDate.Year() < year {
		return 0
	}
	months := 12
	if sub.StartDate.Year() == year {
		months = 13 - int(sub.StartDate.Month())
	}
	if !sub.EndDate.IsZero() && sub.EndDate.Year() == year {
		if m := int(sub.EndDate.Month()); m < months {
			months = m
		}
	}
	return months
}

// CategoryTotals merges spend per category, case-insensitively, sorted
// descending by amount. In the monthly view amounts are normalized to
// monthly equivalents and only subscriptions active in the selected year
// count; the yearly view sums raw prices over the whole snapshot.
func CategoryTotals(subs []core.Subscription, mode ViewMode, year int) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, sub := range subs {
		if !countable(sub) {
			continue
		}
		if mode == ModeMonthly && !schedule.ActiveInYear(sub, year) {
			continue
		}
		amount := sub.Price
		if mode == ModeMonthly {
			amount = sub.MonthlyPrice()
		}
		key := core.CategoryKey(sub.Category)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(amount)
	}
	out := make([]CategoryTotal, 0, len(order))
	for _, key := range order {
		out = append(out, CategoryTotal{Name: core.DisplayCategory(key), Amount: totals[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Amount.LessThan(out[i].Amount)
	})
	return out
}

// Summarize computes the stat-card numbers. The two modes deliberately
// count different populations: the monthly view covers subscriptions
// active in the selected year, the yearly view covers the whole snapshot
// (all-time). The average is zero, not an error, for an empty set.
func Summarize(subs []core.Subscription, mode ViewMode, year int) Summary {
	sum := Summary{
		TotalMonthly:   decimal.Zero,
		TotalYearly:    decimal.Zero,
		AverageMonthly: decimal.Zero,
	}
	for _, sub := range subs {
		if !countable(sub) {
			continue
		}
		if mode == ModeMonthly && !schedule.ActiveInYear(sub, year) {
			continue
		}
		sum.TotalMonthly = sum.TotalMonthly.Add(sub.MonthlyPrice())
		sum.ActiveCount++
	}
	sum.TotalYearly = sum.TotalMonthly.Mul(decimal.NewFromInt(12))
	if sum.ActiveCount > 0 {
		sum.AverageMonthly = sum.TotalMonthly.Div(decimal.NewFromInt(int64(sum.ActiveCount)))
	}
	return sum
}

// TopN returns the n most expensive subscriptions by monthly-equivalent
// price, annotated with their share of the total monthly spend. The sort
// is stable, so ties keep snapshot order.
func TopN(subs []core.Subscription, n int) []TopItem {
	var pool []core.Subscription
	total := decimal.Zero
	for _, sub := range subs {
		if !countable(sub) {
			continue
		}
		pool = append(pool, sub)
		total = total.Add(sub.MonthlyPrice())
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[j].MonthlyPrice().LessThan(pool[i].MonthlyPrice())
	})
	if n < len(pool) {
		pool = pool[:n]
	}
	out := make([]TopItem, 0, len(pool))
	for _, sub := range pool {
		monthly := sub.MonthlyPrice()
		share := decimal.Zero
		if total.IsPositive() {
			share = monthly.Div(total).Mul(decimal.NewFromInt(100))
		}
		out = append(out, TopItem{Subscription: sub, MonthlyPrice: monthly, Share: share})
	}
	return out
}
