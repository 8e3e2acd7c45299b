package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Monthly BillingCycle = "monthly"
	Yearly  BillingCycle = "yearly"
)

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusEnded  Status = "ended"
)

// DefaultCategory is used when a subscription carries no category.
const DefaultCategory = "Other"

type (
	BillingCycle string

	Status string

	Date struct {
		time.Time
	}

	// Subscription is the single record the projection and aggregation
	// engine operates on. Price is denominated in the billing cycle's own
	// cadence: a yearly subscription's Price is the annual charge.
	Subscription struct {
		ID        string
		Name      string
		Price     decimal.Decimal
		Cycle     BillingCycle
		Category  string
		StartDate Date
		EndDate   Date // zero value means open-ended
		Active    bool
	}
)

var (
	ErrEmptyName      = errors.New("empty name")
	ErrInvalidPrice   = errors.New("invalid price")
	ErrMissingStart   = errors.New("missing start date")
	ErrEndBeforeStart = errors.New("end date before start date")
)

// ParseCycle maps a raw cycle string onto a BillingCycle. Anything that is
// not recognized, including the empty string, defaults to monthly.
func ParseCycle(s string) BillingCycle {
	switch BillingCycle(strings.ToLower(strings.TrimSpace(s))) {
	case Yearly:
		return Yearly
	default:
		return Monthly
	}
}

// NewDate creates a Date pinned to UTC midnight of the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string. The zero Date is returned for
// anything unparseable; callers treat it as "absent" rather than an error.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	// Tolerate full timestamps by keeping only the calendar day.
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}
	}
	return Date{Time: t}
}

// String renders the date as YYYY-MM-DD, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// Normalized returns a copy with the defaults of the data-model boundary
// applied: unrecognized cycles become monthly, blank categories become
// "Other", and negative prices are coerced to zero. Every record entering
// the engine passes through here once, so the engine can assume
// well-formed input.
func (s Subscription) Normalized() Subscription {
	s.Cycle = ParseCycle(string(s.Cycle))
	if strings.TrimSpace(s.Category) == "" {
		s.Category = DefaultCategory
	}
	if s.Price.IsNegative() {
		s.Price = decimal.Zero
	}
	return s
}

// Validate reports the first problem with a record being created. The
// engine itself never validates; malformed data only degrades there.
func (s Subscription) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if s.StartDate.IsZero() {
		return ErrMissingStart
	}
	if !s.EndDate.IsZero() && s.EndDate.Before(s.StartDate.Time) {
		return ErrEndBeforeStart
	}
	return nil
}

// Status derives the subscription's display state: ended when the end
// date has passed, otherwise paused when the active flag is off.
func (s Subscription) Status(today Date) Status {
	if !s.EndDate.IsZero() && EndOfDay(s.EndDate).Before(StartOfDay(today)) {
		return StatusEnded
	}
	if !s.Active {
		return StatusPaused
	}
	return StatusActive
}

// CategoryKey is the case-insensitive grouping key for a category.
func CategoryKey(category string) string {
	c := strings.TrimSpace(category)
	if c == "" {
		c = DefaultCategory
	}
	return strings.ToLower(c)
}

// DisplayCategory capitalizes the first letter only, matching how the
// category legend renders grouped names.
func DisplayCategory(category string) string {
	key := CategoryKey(category)
	return strings.ToUpper(key[:1]) + key[1:]
}
