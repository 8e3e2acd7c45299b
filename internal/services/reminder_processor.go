// Package services orchestrates the engine against its collaborators.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"subtrack/internal/amqp"
	"subtrack/internal/core"
	"subtrack/internal/schedule"
	"subtrack/internal/storage"
)

// ReminderPublisher is the slice of the AMQP client the processor needs.
type ReminderPublisher interface {
	PublishDueReminder(ctx context.Context, msg *amqp.DueReminderMessage) error
}

// ReminderProcessor projects today's billing occurrences and publishes a
// reminder for each one.
type ReminderProcessor struct {
	store     storage.Store
	publisher ReminderPublisher
}

func NewReminderProcessor(store storage.Store, publisher ReminderPublisher) *ReminderProcessor {
	return &ReminderProcessor{store: store, publisher: publisher}
}

// ProcessDueReminders scans the snapshot for subscriptions billing on the
// given day and publishes one reminder per hit. It returns how many
// reminders went out; individual publish failures are logged and skipped
// so one bad record cannot stall the rest of the run.
func (p *ReminderProcessor) ProcessDueReminders(ctx context.Context, now time.Time) (int, error) {
	if p.store == nil {
		return 0, fmt.Errorf("processor not properly initialized")
	}

	subs, err := p.store.ListSubscriptions(ctx)
	if err != nil {
		return 0, fmt.Errorf("list subscriptions: %w", err)
	}

	today := core.NewDate(now.UTC().Year(), now.UTC().Month(), now.UTC().Day())
	slog.InfoContext(ctx, "Scanning subscriptions for due reminders",
		"total", len(subs),
		"date", today.String())

	published := 0
	for _, sub := range subs {
		if !sub.Active || !schedule.DueOn(sub, today) {
			continue
		}

		if p.publisher == nil {
			// Dry run without a broker: still counts as due.
			published++
			slog.InfoContext(ctx, "Subscription due today (no broker configured)",
				"subscription_id", sub.ID,
				"subscription_name", sub.Name)
			continue
		}

		msg := amqp.NewDueReminderMessage(sub.ID, sub.Name, sub.Price.String(), string(sub.Cycle), today.String())
		if err := p.publisher.PublishDueReminder(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "Failed to publish due reminder",
				"subscription_id", sub.ID,
				"error", err)
			continue
		}

		published++
		slog.InfoContext(ctx, "Due reminder published",
			"subscription_id", sub.ID,
			"subscription_name", sub.Name,
			"billing_cycle", sub.Cycle,
			"amount", sub.Price.String())
	}

	slog.InfoContext(ctx, "Reminder scan complete",
		"published", published,
		"total_checked", len(subs))
	return published, nil
}
