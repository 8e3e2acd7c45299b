package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	PlanFree     Plan = "free"
	PlanStandard Plan = "standard"
	PlanTeam     Plan = "team"
)

// FreePlanSubscriptionLimit caps how many subscriptions a free account
// may track. Premium plans are unlimited.
const FreePlanSubscriptionLimit = 10

type (
	Plan string

	// User carries the slice of account data the plan statistics need.
	User struct {
		ID       string
		Username string
		Plan     Plan
	}
)

// ParsePlan defaults unknown values to the free plan.
func ParsePlan(s string) Plan {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case PlanStandard:
		return PlanStandard
	case PlanTeam:
		return PlanTeam
	default:
		return PlanFree
	}
}

// MonthlyFee is what the account owner pays for the plan itself.
func (p Plan) MonthlyFee() decimal.Decimal {
	switch p {
	case PlanStandard:
		return decimal.NewFromInt(5)
	case PlanTeam:
		return decimal.NewFromInt(10)
	default:
		return decimal.Zero
	}
}

// SubscriptionLimit returns the plan's subscription cap and whether a cap
// applies at all.
func (p Plan) SubscriptionLimit() (int, bool) {
	if p == PlanFree {
		return FreePlanSubscriptionLimit, true
	}
	return 0, false
}

// CanAddSubscription reports whether an account holding currentCount
// subscriptions may add another one under its plan.
func CanAddSubscription(p Plan, currentCount int) bool {
	limit, capped := p.SubscriptionLimit()
	if !capped {
		return true
	}
	return currentCount < limit
}
