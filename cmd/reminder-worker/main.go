package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"subtrack/internal/amqp"
	"subtrack/internal/config"
	applog "subtrack/internal/log"
	"subtrack/internal/services"
	"subtrack/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.ComponentReminder, applog.Config{})
	applog.SetDefault(logger)

	logger.Info("Starting reminder-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	// Reminders are published to AMQP; without a broker the worker still
	// runs and logs what would have been due.
	var publisher services.ReminderPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without publishing", "error", err)
		} else {
			defer client.Close()
			publisher = client
			logger.Info("AMQP client initialized", applog.FieldQueue, cfg.AMQPQueue)
		}
	} else {
		logger.Info("AMQP disabled - due reminders will only be logged")
	}

	processor := services.NewReminderProcessor(repo, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("Reminder processor configured",
		"interval", cfg.ReminderInterval,
		"sqlite_db", cfg.SQLiteDBPath)

	ticker := time.NewTicker(cfg.ReminderInterval)
	defer ticker.Stop()

	// Run an initial scan on startup
	if count, err := processor.ProcessDueReminders(ctx, time.Now()); err != nil {
		logger.Error("Initial reminder scan failed", "error", err)
	} else {
		logger.Info("Initial reminder scan complete", "reminders_published", count)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				count, err := processor.ProcessDueReminders(ctx, now)
				if err != nil {
					logger.Error("Periodic reminder scan failed", "error", err)
				} else {
					logger.Info("Periodic reminder scan complete",
						"reminders_published", count,
						"next_check", now.Add(cfg.ReminderInterval).Format("15:04:05"))
				}
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("Shutdown signal received", "signal", sig.String())
	cancel()
	logger.Info("Reminder-worker shutdown complete")
}
