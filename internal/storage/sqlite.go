package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"subtrack/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListSubscriptions returns the full snapshot in creation order, each row
// normalized so the engine sees well-formed records.
func (r *SQLiteRepository) ListSubscriptions(ctx context.Context) ([]core.Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, billing_cycle, category, start_date, COALESCE(end_date, ''), is_active
		FROM subscriptions
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []core.Subscription
	for rows.Next() {
		var (
			s                  core.Subscription
			price, cycle       string
			startDate, endDate string
			active             int
		)
		if err := rows.Scan(&s.ID, &s.Name, &price, &cycle, &s.Category, &startDate, &endDate, &active); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		s.Price = core.ParsePrice(price)
		s.Cycle = core.BillingCycle(cycle)
		s.StartDate = core.ParseDate(startDate)
		s.EndDate = core.ParseDate(endDate)
		s.Active = active != 0
		subs = append(subs, s.Normalized())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}
	return subs, nil
}

// CreateSubscription stores a new record and returns it with its id set.
func (r *SQLiteRepository) CreateSubscription(ctx context.Context, sub core.Subscription) (core.Subscription, error) {
	sub = sub.Normalized()
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	var endDate any
	if !sub.EndDate.IsZero() {
		endDate = sub.EndDate.String()
	}
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, name, price, billing_cycle, category, start_date, end_date, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Price.String(), string(sub.Cycle), sub.Category,
		sub.StartDate.String(), endDate, boolToInt(sub.Active), now, now)
	if err != nil {
		return core.Subscription{}, fmt.Errorf("create subscription: %w", err)
	}

	slog.InfoContext(ctx, "Subscription saved",
		"id", sub.ID,
		"name", sub.Name,
		"billing_cycle", sub.Cycle,
		"price", sub.Price.String())
	return sub, nil
}

// SetSubscriptionActive flips the paused flag without touching the rest
// of the record.
func (r *SQLiteRepository) SetSubscriptionActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions SET is_active = ?, updated_at = ? WHERE id = ?`,
		boolToInt(active), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update subscription active flag: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteSubscription(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	slog.InfoContext(ctx, "Subscription deleted", "id", id)
	return nil
}

func (r *SQLiteRepository) ListUsers(ctx context.Context) ([]core.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, plan FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []core.User
	for rows.Next() {
		var u core.User
		var plan string
		if err := rows.Scan(&u.ID, &u.Username, &plan); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Plan = core.ParsePlan(plan)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
