package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"subtrack/internal/schedule"
)

// handleCalendar returns the month grid plus the day-to-subscriptions due
// map for the requested month, after the sort/filter pipeline has run.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
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

	year, month := parseYearMonth(r)
	sortBy := schedule.ParseSortBy(r.URL.Query().Get("sort"))
	filterBy := schedule.ParseFilterBy(r.URL.Query().Get("filter"))

	grid := schedule.Grid(year, month)
	dueMap := schedule.DueMap(subs, year, month, sortBy, filterBy)

	now := today()
	due := make(map[string][]subscriptionJSON, len(dueMap))
	for day, list := range dueMap {
		items := make([]subscriptionJSON, 0, len(list))
		for _, sub := range list {
			items = append(items, toSubscriptionJSON(sub, now))
		}
		due[strconv.Itoa(day)] = items
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"year":           grid.Year,
		"month":          int(grid.Month),
		"leading_blanks": grid.LeadingBlanks,
		"days":           grid.Days,
		"due":            due,
	})
}
