package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"subtrack/internal/core"
	"subtrack/internal/schedule"
	"subtrack/internal/storage"
)

// subscriptionJSON is the wire form of one subscription. Prices travel as
// decimal strings; dates as YYYY-MM-DD, end_date omitted when open-ended.
type subscriptionJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Cycle     string `json:"billing_cycle"`
	Category  string `json:"category"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Active    bool   `json:"is_active"`
	Status    string `json:"status"`
	EndsIn    *int   `json:"ends_in_days,omitempty"`
}

func toSubscriptionJSON(sub core.Subscription, today core.Date) subscriptionJSON {
	out := subscriptionJSON{
		ID:        sub.ID,
		Name:      sub.Name,
		Price:     sub.Price.String(),
		Cycle:     string(sub.Cycle),
		Category:  core.DisplayCategory(sub.Category),
		StartDate: sub.StartDate.String(),
		Active:    sub.Active,
		Status:    string(sub.Status(today)),
	}
	if !sub.EndDate.IsZero() {
		out.EndDate = sub.EndDate.String()
		if days, ok := schedule.DaysUntilEnd(sub, today); ok {
			out.EndsIn = &days
		}
	}
	return out
}

func today() core.Date {
	now := time.Now().UTC()
	return core.NewDate(now.Year(), now.Month(), now.Day())
}

// createSubscriptionRequest is the POST body for a new subscription.
type createSubscriptionRequest struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Cycle     string `json:"billing_cycle"`
	Category  string `json:"category"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// handleSubscriptions serves GET (list through the sort/filter pipeline,
// optional name search) and POST (create) on /api/subscriptions.
func (s *Server) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listSubscriptions(w, r)
	case http.MethodPost:
		s.createSubscription(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.store.ListSubscriptions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List subscriptions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load subscriptions")
		return
	}

	sortBy := schedule.ParseSortBy(r.URL.Query().Get("sort"))
	filterBy := schedule.ParseFilterBy(r.URL.Query().Get("filter"))
	prepared := schedule.Prepare(subs, sortBy, filterBy)

	if q := sanitizeInput(r.URL.Query().Get("q")); q != "" {
		prepared = schedule.Search(prepared, q)
	}

	now := today()
	out := make([]subscriptionJSON, 0, len(prepared))
	for _, sub := range prepared {
		out = append(out, toSubscriptionJSON(sub, now))
	}
	writeJSON(w, http.StatusOK, map[string]any{"subscriptions": out})
}

func (s *Server) createSubscription(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub := core.Subscription{
		Name:      sanitizeInput(req.Name),
		Price:     core.ParsePrice(req.Price),
		Cycle:     core.ParseCycle(req.Cycle),
		Category:  sanitizeInput(req.Category),
		StartDate: core.ParseDate(req.StartDate),
		EndDate:   core.ParseDate(req.EndDate),
		Active:    true,
	}.Normalized()

	if err := sub.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	existing, err := s.store.ListSubscriptions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List subscriptions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load subscriptions")
		return
	}
	if !core.CanAddSubscription(s.plan, len(existing)) {
		writeError(w, http.StatusForbidden, "subscription limit reached for current plan")
		return
	}

	created, err := s.store.CreateSubscription(r.Context(), sub)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create subscription failed", "error", err, "subscription_name", sub.Name)
		writeError(w, http.StatusInternalServerError, "failed to save subscription")
		return
	}

	s.invalidateViews()
	writeJSON(w, http.StatusCreated, toSubscriptionJSON(created, today()))
}

// handleSubscriptionByID serves DELETE /api/subscriptions/{id} and
// PATCH /api/subscriptions/{id} (active flag).
func (s *Server) handleSubscriptionByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/subscriptions/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodDelete:
		s.deleteSubscription(w, r, id)
	case http.MethodPatch:
		s.patchSubscription(w, r, id)
	default:
		w.Header().Set("Allow", "DELETE, PATCH")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) deleteSubscription(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.store.DeleteSubscription(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "subscription not found")
			return
		}
		slog.ErrorContext(r.Context(), "Delete subscription failed", "error", err, "subscription_id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete subscription")
		return
	}
	s.invalidateViews()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) patchSubscription(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Active *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.store.SetSubscriptionActive(r.Context(), id, *req.Active); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "subscription not found")
			return
		}
		slog.ErrorContext(r.Context(), "Update subscription failed", "error", err, "subscription_id", id)
		writeError(w, http.StatusInternalServerError, "failed to update subscription")
		return
	}
	s.invalidateViews()
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "is_active": *req.Active})
}
