package core

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "january", year: 2024, month: time.January, want: 31},
		{name: "april", year: 2024, month: time.April, want: 30},
		{name: "february leap year", year: 2024, month: time.February, want: 29},
		{name: "february common year", year: 2023, month: time.February, want: 28},
		{name: "february century non-leap", year: 1900, month: time.February, want: 28},
		{name: "february quadricentennial leap", year: 2000, month: time.February, want: 29},
		{name: "december", year: 2025, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysInMonth(tt.year, tt.month)
			if got != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestClampDay(t *testing.T) {
	tests := []struct {
		name  string
		day   int
		year  int
		month time.Month
		want  int
	}{
		{name: "31st into february common year", day: 31, year: 2023, month: time.February, want: 28},
		{name: "31st into february leap year", day: 31, year: 2024, month: time.February, want: 29},
		{name: "31st into april", day: 31, year: 2024, month: time.April, want: 30},
		{name: "31st into november", day: 31, year: 2024, month: time.November, want: 30},
		{name: "day exists unchanged", day: 15, year: 2024, month: time.February, want: 15},
		{name: "last day exact fit", day: 31, year: 2024, month: time.January, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampDay(tt.day, tt.year, tt.month)
			if got != tt.want {
				t.Errorf("ClampDay(%d, %d, %v) = %d, want %d", tt.day, tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, time.February)
	if start.Day() != 1 || start.Month() != time.February {
		t.Errorf("MonthBounds start = %v, want Feb 1", start)
	}
	if end.Day() != 29 || end.Hour() != 23 {
		t.Errorf("MonthBounds end = %v, want Feb 29 end of day", end)
	}
}

func TestDayBounds(t *testing.T) {
	d := NewDate(2024, time.June, 15)
	if got := StartOfDay(d); got.Hour() != 0 || got.Day() != 15 {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := EndOfDay(d); got.Hour() != 23 || got.Day() != 15 {
		t.Errorf("EndOfDay = %v", got)
	}
	if !StartOfDay(d).Before(EndOfDay(d)) {
		t.Error("StartOfDay should precede EndOfDay")
	}
}
