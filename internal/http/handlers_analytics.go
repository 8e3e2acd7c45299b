package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"subtrack/internal/analytics"
	"subtrack/internal/core"
)

// round2 is the presentation-layer rounding point; engine values stay
// full precision until here.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// viewConfigFromQuery builds the per-request view selection. Bad values
// degrade to the defaults: monthly mode, current year, from==to==year.
func viewConfigFromQuery(r *http.Request) analytics.ViewConfig {
	year := queryInt(r, "year", time.Now().UTC().Year())
	return analytics.ViewConfig{
		Mode:     analytics.ParseMode(r.URL.Query().Get("mode")),
		Year:     year,
		FromYear: queryInt(r, "from", year),
		ToYear:   queryInt(r, "to", year),
	}
}

// handleSeries returns the chart series the view selects: twelve monthly
// buckets in monthly mode, one bucket per year of [from, to] in yearly
// mode.
func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cfg := viewConfigFromQuery(r)
	key := fmt.Sprintf("%s-%d-%d-%d", cfg.Mode, cfg.Year, cfg.FromYear, cfg.ToYear)

	series, cached := s.seriesCache.Get(key)
	if !cached {
		subs, err := s.store.ListSubscriptions(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "List subscriptions failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load subscriptions")
			return
		}
		series, err = analytics.SeriesFor(subs, cfg)
		if err != nil {
			if errors.Is(err, analytics.ErrInvalidYearRange) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			slog.ErrorContext(r.Context(), "Series computation failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to compute series")
			return
		}
		s.seriesCache.Set(key, series)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mode":   string(cfg.Mode),
		"labels": series.Labels,
		"data":   series.Rounded(),
	})
}

// handleCategories returns per-category totals for the donut: merged
// case-insensitively, sorted descending, with a deterministic color per
// category.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	subs, err := s.store.ListSubscriptions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List subscriptions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load subscriptions")
		return
	}

	cfg := viewConfigFromQuery(r)
	totals := analytics.CategoryTotals(subs, cfg.Mode, cfg.Year)

	names := make([]string, 0, len(totals))
	for _, t := range totals {
		names = append(names, t.Name)
	}
	colors := analytics.AssignColors(names)

	type categoryJSON struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Color  string  `json:"color"`
	}
	out := make([]categoryJSON, 0, len(totals))
	for _, t := range totals {
		out = append(out, categoryJSON{Name: t.Name, Amount: round2(t.Amount), Color: colors[t.Name]})
	}
	writeJSON(w, http.StatusOK, map[string]any{"mode": string(cfg.Mode), "categories": out})
}

// handleSummary returns the headline numbers for the stat cards.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cfg := viewConfigFromQuery(r)
	key := fmt.Sprintf("%s-%d", cfg.Mode, cfg.Year)

	summary, cached := s.summaryCache.Get(key)
	if !cached {
		subs, err := s.store.ListSubscriptions(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "List subscriptions failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load subscriptions")
			return
		}
		summary = analytics.Summarize(subs, cfg.Mode, cfg.Year)
		s.summaryCache.Set(key, summary)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mode":            string(cfg.Mode),
		"total_monthly":   round2(summary.TotalMonthly),
		"total_yearly":    round2(summary.TotalYearly),
		"active_count":    summary.ActiveCount,
		"average_monthly": round2(summary.AverageMonthly),
	})
}

// handleTop returns the n most expensive subscriptions by monthly
// equivalent with their share of total monthly spend.
func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	subs, err := s.store.ListSubscriptions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List subscriptions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load subscriptions")
		return
	}

	n := queryInt(r, "n", 5)
	if n < 1 {
		n = 5
	}

	type topJSON struct {
		Name         string  `json:"name"`
		Category     string  `json:"category"`
		MonthlyPrice float64 `json:"monthly_price"`
		Share        float64 `json:"share"`
	}
	items := analytics.TopN(subs, n)
	out := make([]topJSON, 0, len(items))
	for _, item := range items {
		out = append(out, topJSON{
			Name:         item.Subscription.Name,
			Category:     core.DisplayCategory(item.Subscription.Category),
			MonthlyPrice: round2(item.MonthlyPrice),
			Share:        round2(item.Share),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"top": out})
}

// handlePlanStats returns the admin view over premium plans.
func (s *Server) handlePlanStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List users failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load users")
		return
	}

	stats := analytics.ComputePlanStats(users)

	type bucketJSON struct {
		Plan           string  `json:"plan"`
		Count          int     `json:"count"`
		MonthlyRevenue float64 `json:"monthly_revenue"`
	}
	bucket := func(b analytics.PlanBucket) bucketJSON {
		return bucketJSON{Plan: string(b.Plan), Count: b.Count, MonthlyRevenue: round2(b.MonthlyRevenue)}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"free":            bucket(stats.Free),
		"standard":        bucket(stats.Standard),
		"team":            bucket(stats.Team),
		"premium_count":   stats.PremiumCount,
		"monthly_revenue": round2(stats.MonthlyRevenue),
		"yearly_revenue":  round2(stats.YearlyRevenue),
	})
}
