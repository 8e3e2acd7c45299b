package schedule

import (
	"testing"
	"time"

	"subtrack/internal/core"
)

func namedSub(name, price string, cycle core.BillingCycle, active bool) core.Subscription {
	return core.Subscription{
		Name:      name,
		Price:     core.ParsePrice(price),
		Cycle:     cycle,
		StartDate: core.NewDate(2024, time.January, 1),
		Active:    active,
	}
}

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		in   string
		want SortBy
	}{
		{in: "price-asc", want: SortByPriceAsc},
		{in: "price-desc", want: SortByPriceDesc},
		{in: "name", want: SortByName},
		{in: "date", want: SortByDate},
		{in: "", want: SortByDate},
		{in: "bogus", want: SortByDate},
	}
	for _, tt := range tests {
		if got := ParseSortBy(tt.in); got != tt.want {
			t.Errorf("ParseSortBy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFilterBy(t *testing.T) {
	tests := []struct {
		in   string
		want FilterBy
	}{
		{in: "monthly", want: FilterMonthly},
		{in: "yearly", want: FilterYearly},
		{in: "all", want: FilterAll},
		{in: "", want: FilterAll},
		{in: "weekly", want: FilterAll},
	}
	for _, tt := range tests {
		if got := ParseFilterBy(tt.in); got != tt.want {
			t.Errorf("ParseFilterBy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPrepareFiltering(t *testing.T) {
	subs := []core.Subscription{
		namedSub("Netflix", "15.99", core.Monthly, true),
		namedSub("Domain", "120", core.Yearly, true),
		namedSub("Paused", "5", core.Monthly, false),
		namedSub("NoCycle", "3", "", true), // missing cycle counts as monthly
	}

	tests := []struct {
		name      string
		filterBy  FilterBy
		wantNames []string
	}{
		{name: "all drops paused", filterBy: FilterAll, wantNames: []string{"Netflix", "Domain", "NoCycle"}},
		{name: "monthly includes missing cycle", filterBy: FilterMonthly, wantNames: []string{"Netflix", "NoCycle"}},
		{name: "yearly only", filterBy: FilterYearly, wantNames: []string{"Domain"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prepare(subs, SortByDate, tt.filterBy)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("got %d subscriptions, want %d", len(got), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("position %d = %q, want %q", i, got[i].Name, want)
				}
			}
		})
	}
}

func TestPrepareSorting(t *testing.T) {
	subs := []core.Subscription{
		namedSub("Charlie", "20", core.Monthly, true),
		namedSub("Alpha", "5", core.Monthly, true),
		namedSub("Bravo", "10", core.Monthly, true),
	}

	tests := []struct {
		name      string
		sortBy    SortBy
		wantNames []string
	}{
		{name: "date keeps snapshot order", sortBy: SortByDate, wantNames: []string{"Charlie", "Alpha", "Bravo"}},
		{name: "price ascending", sortBy: SortByPriceAsc, wantNames: []string{"Alpha", "Bravo", "Charlie"}},
		{name: "price descending", sortBy: SortByPriceDesc, wantNames: []string{"Charlie", "Bravo", "Alpha"}},
		{name: "name lexicographic", sortBy: SortByName, wantNames: []string{"Alpha", "Bravo", "Charlie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prepare(subs, tt.sortBy, FilterAll)
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("position %d = %q, want %q", i, got[i].Name, want)
				}
			}
		})
	}
}

func TestPrepareStability(t *testing.T) {
	// Duplicate names and equal prices must keep snapshot order.
	a := namedSub("Same", "10", core.Monthly, true)
	a.ID = "first"
	b := namedSub("Same", "10", core.Monthly, true)
	b.ID = "second"
	c := namedSub("Same", "10", core.Monthly, true)
	c.ID = "third"

	for _, sortBy := range []SortBy{SortByName, SortByPriceAsc, SortByPriceDesc} {
		got := Prepare([]core.Subscription{a, b, c}, sortBy, FilterAll)
		if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
			t.Errorf("sort %v broke tie order: %v %v %v", sortBy, got[0].ID, got[1].ID, got[2].ID)
		}
	}
}

func TestPrepareDoesNotMutateInput(t *testing.T) {
	subs := []core.Subscription{
		namedSub("B", "2", core.Monthly, true),
		namedSub("A", "1", core.Monthly, true),
	}
	Prepare(subs, SortByName, FilterAll)
	if subs[0].Name != "B" {
		t.Error("Prepare mutated the input snapshot")
	}
}

func TestSearch(t *testing.T) {
	subs := []core.Subscription{
		namedSub("Netflix", "15.99", core.Monthly, true),
		namedSub("Net Insurance", "30", core.Monthly, true),
		namedSub("Spotify", "9.99", core.Monthly, true),
	}

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "case-insensitive substring", query: "NET", wantCount: 2},
		{name: "exact word", query: "spotify", wantCount: 1},
		{name: "no match", query: "hulu", wantCount: 0},
		{name: "empty query matches nothing", query: "  ", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Search(subs, tt.query); len(got) != tt.wantCount {
				t.Errorf("Search(%q) returned %d, want %d", tt.query, len(got), tt.wantCount)
			}
		})
	}
}
