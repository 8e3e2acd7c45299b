package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Port:             "8082",
		DataBackend:      "sqlite",
		SQLiteDBPath:     filepath.Join(t.TempDir(), "subtrack.db"),
		Plan:             "free",
		AMQPExchange:     "subtrack",
		AMQPQueue:        "due_reminders",
		ReminderInterval: time.Hour,
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "PLAN", "AMQP_QUEUE", "REMINDER_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8082" {
		t.Errorf("Port = %q, want 8082", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Errorf("DataBackend = %q, want sqlite", cfg.DataBackend)
	}
	if cfg.Plan != "free" {
		t.Errorf("Plan = %q, want free", cfg.Plan)
	}
	if cfg.AMQPQueue != "due_reminders" {
		t.Errorf("AMQPQueue = %q, want due_reminders", cfg.AMQPQueue)
	}
	if cfg.ReminderInterval != time.Hour {
		t.Errorf("ReminderInterval = %v, want 1h", cfg.ReminderInterval)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("REMINDER_INTERVAL", "30m")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("DataBackend = %q, want memory", cfg.DataBackend)
	}
	if cfg.ReminderInterval != 30*time.Minute {
		t.Errorf("ReminderInterval = %v, want 30m", cfg.ReminderInterval)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("REMINDER_INTERVAL", "not-a-duration")
	if cfg := Load(); cfg.ReminderInterval != time.Hour {
		t.Errorf("ReminderInterval = %v, want default 1h", cfg.ReminderInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: ""},
		{name: "non-numeric port", mutate: func(c *Config) { c.Port = "abc" }, wantErr: "invalid port"},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: "invalid port"},
		{name: "unknown backend", mutate: func(c *Config) { c.DataBackend = "postgres" }, wantErr: "invalid data backend"},
		{name: "empty sqlite path", mutate: func(c *Config) { c.SQLiteDBPath = "" }, wantErr: "SQLite database path"},
		{name: "unknown plan", mutate: func(c *Config) { c.Plan = "gold" }, wantErr: "invalid plan"},
		{name: "bad amqp scheme", mutate: func(c *Config) { c.AMQPURL = "http://localhost" }, wantErr: "invalid AMQP URL scheme"},
		{name: "amqp without queue", mutate: func(c *Config) { c.AMQPURL = "amqp://localhost"; c.AMQPQueue = "" }, wantErr: "queue name cannot be empty"},
		{name: "interval too short", mutate: func(c *Config) { c.ReminderInterval = time.Second }, wantErr: "at least 1 minute"},
		{name: "interval too long", mutate: func(c *Config) { c.ReminderInterval = 48 * time.Hour }, wantErr: "at most 24 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.Port = "abc"
	cfg.DataBackend = "postgres"
	cfg.ReminderInterval = time.Second

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid port", "invalid data backend", "at least 1 minute"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}
