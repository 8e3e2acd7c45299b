package analytics

import (
	"github.com/shopspring/decimal"

	"subtrack/internal/core"
)

// PlanBucket is one plan's slice of the subscriber base.
type PlanBucket struct {
	Plan           core.Plan
	Count          int
	MonthlyRevenue decimal.Decimal
}

// PlanStats is the admin view over premium plans: per-plan subscriber
// counts and the revenue the plans themselves generate.
type PlanStats struct {
	Free           PlanBucket
	Standard       PlanBucket
	Team           PlanBucket
	PremiumCount   int
	MonthlyRevenue decimal.Decimal
	YearlyRevenue  decimal.Decimal
}

// ComputePlanStats buckets users by plan and prices each bucket at the
// plan's monthly fee.
func ComputePlanStats(users []core.User) PlanStats {
	stats := PlanStats{
		Free:           PlanBucket{Plan: core.PlanFree, MonthlyRevenue: decimal.Zero},
		Standard:       PlanBucket{Plan: core.PlanStandard, MonthlyRevenue: decimal.Zero},
		Team:           PlanBucket{Plan: core.PlanTeam, MonthlyRevenue: decimal.Zero},
		MonthlyRevenue: decimal.Zero,
	}
	for _, u := range users {
		switch core.ParsePlan(string(u.Plan)) {
		case core.PlanStandard:
			stats.Standard.Count++
		case core.PlanTeam:
			stats.Team.Count++
		default:
			stats.Free.Count++
		}
	}
	stats.Standard.MonthlyRevenue = core.PlanStandard.MonthlyFee().Mul(decimal.NewFromInt(int64(stats.Standard.Count)))
	stats.Team.MonthlyRevenue = core.PlanTeam.MonthlyFee().Mul(decimal.NewFromInt(int64(stats.Team.Count)))
	stats.PremiumCount = stats.Standard.Count + stats.Team.Count
	stats.MonthlyRevenue = stats.Standard.MonthlyRevenue.Add(stats.Team.MonthlyRevenue)
	stats.YearlyRevenue = stats.MonthlyRevenue.Mul(decimal.NewFromInt(12))
	return stats
}
