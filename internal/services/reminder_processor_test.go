package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"subtrack/internal/amqp"
	"subtrack/internal/core"
	"subtrack/internal/storage"
)

type capturePublisher struct {
	messages []*amqp.DueReminderMessage
	failFor  string
}

func (p *capturePublisher) PublishDueReminder(ctx context.Context, msg *amqp.DueReminderMessage) error {
	if p.failFor != "" && msg.SubscriptionID == p.failFor {
		return errors.New("broker unavailable")
	}
	p.messages = append(p.messages, msg)
	return nil
}

func seedStore(t *testing.T, subs ...core.Subscription) *storage.MemoryRepository {
	t.Helper()
	repo := storage.NewMemoryRepository()
	repo.Seed(subs, nil)
	return repo
}

func TestProcessDueReminders(t *testing.T) {
	dueToday := core.Subscription{
		ID: "due", Name: "Netflix", Price: core.ParsePrice("15.99"),
		Cycle: core.Monthly, StartDate: core.NewDate(2024, time.January, 10), Active: true,
	}
	notDue := core.Subscription{
		ID: "other-day", Name: "Spotify", Price: core.ParsePrice("9.99"),
		Cycle: core.Monthly, StartDate: core.NewDate(2024, time.January, 20), Active: true,
	}
	paused := core.Subscription{
		ID: "paused", Name: "Hulu", Price: core.ParsePrice("7.99"),
		Cycle: core.Monthly, StartDate: core.NewDate(2024, time.January, 10), Active: false,
	}

	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("publishes only subscriptions due today", func(t *testing.T) {
		pub := &capturePublisher{}
		p := NewReminderProcessor(seedStore(t, dueToday, notDue, paused), pub)

		count, err := p.ProcessDueReminders(context.Background(), now)
		if err != nil {
			t.Fatalf("ProcessDueReminders() error: %v", err)
		}
		if count != 1 || len(pub.messages) != 1 {
			t.Fatalf("published %d/%d, want 1", count, len(pub.messages))
		}
		msg := pub.messages[0]
		if msg.SubscriptionID != "due" || msg.DueDate != "2024-03-10" {
			t.Errorf("message = %+v", msg)
		}
		if msg.Amount != "15.99" || msg.BillingCycle != "monthly" {
			t.Errorf("payload = %q/%q", msg.Amount, msg.BillingCycle)
		}
	})

	t.Run("publish failure skips record and continues", func(t *testing.T) {
		second := dueToday
		second.ID = "due-2"
		second.Name = "Cloud"
		pub := &capturePublisher{failFor: "due"}
		p := NewReminderProcessor(seedStore(t, dueToday, second), pub)

		count, err := p.ProcessDueReminders(context.Background(), now)
		if err != nil {
			t.Fatalf("ProcessDueReminders() error: %v", err)
		}
		if count != 1 || len(pub.messages) != 1 || pub.messages[0].SubscriptionID != "due-2" {
			t.Errorf("published %d, messages %v", count, pub.messages)
		}
	})

	t.Run("nil publisher still counts due records", func(t *testing.T) {
		p := NewReminderProcessor(seedStore(t, dueToday), nil)
		count, err := p.ProcessDueReminders(context.Background(), now)
		if err != nil {
			t.Fatalf("ProcessDueReminders() error: %v", err)
		}
		if count != 1 {
			t.Errorf("count = %d, want 1", count)
		}
	})

	t.Run("nil store errors", func(t *testing.T) {
		p := NewReminderProcessor(nil, &capturePublisher{})
		if _, err := p.ProcessDueReminders(context.Background(), now); err == nil {
			t.Error("expected error for missing store")
		}
	})
}
