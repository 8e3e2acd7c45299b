package schedule

import (
	"sort"
	"strings"

	"subtrack/internal/core"
)

const (
	SortByDate      SortBy = "date"
	SortByPriceAsc  SortBy = "price-asc"
	SortByPriceDesc SortBy = "price-desc"
	SortByName      SortBy = "name"
)

const (
	FilterAll     FilterBy = "all"
	FilterMonthly FilterBy = "monthly"
	FilterYearly  FilterBy = "yearly"
)

type (
	SortBy   string
	FilterBy string
)

// ParseSortBy accepts the selector values of the calendar controls and
// defaults to date order.
func ParseSortBy(s string) SortBy {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case SortByPriceAsc:
		return SortByPriceAsc
	case SortByPriceDesc:
		return SortByPriceDesc
	case SortByName:
		return SortByName
	default:
		return SortByDate
	}
}

// ParseFilterBy defaults to showing every cycle.
func ParseFilterBy(s string) FilterBy {
	switch FilterBy(strings.ToLower(strings.TrimSpace(s))) {
	case FilterMonthly:
		return FilterMonthly
	case FilterYearly:
		return FilterYearly
	default:
		return FilterAll
	}
}

// Prepare applies the user-selected cycle filter and ordering to a
// snapshot. Paused records are dropped up front; a missing cycle counts
// as monthly. Sorting is stable, so ties keep their original relative
// order, and date order is the calendar's natural order (no resort).
func Prepare(subs []core.Subscription, sortBy SortBy, filterBy FilterBy) []core.Subscription {
	out := make([]core.Subscription, 0, len(subs))
	for _, s := range subs {
		if !s.Active {
			continue
		}
		cycle := core.ParseCycle(string(s.Cycle))
		if filterBy == FilterMonthly && cycle != core.Monthly {
			continue
		}
		if filterBy == FilterYearly && cycle != core.Yearly {
			continue
		}
		out = append(out, s)
	}
	sortSubscriptions(out, sortBy)
	return out
}

func sortSubscriptions(subs []core.Subscription, sortBy SortBy) {
	switch sortBy {
	case SortByPriceAsc:
		sort.SliceStable(subs, func(i, j int) bool {
			return subs[i].Price.LessThan(subs[j].Price)
		})
	case SortByPriceDesc:
		sort.SliceStable(subs, func(i, j int) bool {
			return subs[j].Price.LessThan(subs[i].Price)
		})
	case SortByName:
		sort.SliceStable(subs, func(i, j int) bool {
			return subs[i].Name < subs[j].Name
		})
	}
}

// Search returns the subscriptions whose name contains the query,
// case-insensitively. An empty query matches nothing, mirroring the
// overview find box.
func Search(subs []core.Subscription, query string) []core.Subscription {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []core.Subscription
	for _, s := range subs {
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}
