package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	if cfg.Port != "8080" || cfg.SessionStore != StoreMemory || cfg.SessionTTL != 2*time.Hour {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.MailEnabled() {
		t.Error("mail should be disabled without SMTP_HOST")
	}
	if !cfg.UsesDefaultSecret() {
		t.Error("default config should report the default secret")
	}
}

func TestUsesDefaultSecret(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "s3cr3t-from-vault")
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	if cfg.UsesDefaultSecret() {
		t.Error("custom JWT_SECRET reported as default")
	}
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "planner@example.com")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.SessionTTL != 15*time.Minute {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if cfg.SessionStore != StoreRedis || cfg.RedisDB != 3 {
		t.Errorf("store = %q db = %d", cfg.SessionStore, cfg.RedisDB)
	}
	if !cfg.MailEnabled() {
		t.Error("mail should be enabled")
	}
}

func TestNewConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finplan.yaml")
	body := "port: \"7070\"\nsession_ttl: 30m\nsession_store: postgres\nsweep_schedule: \"@hourly\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "6060")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}
	if cfg.Port != "6060" {
		t.Errorf("env should win over file, Port = %q", cfg.Port)
	}
	if cfg.SessionTTL != 30*time.Minute || cfg.SessionStore != StorePostgres || cfg.SweepSchedule != "@hourly" {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"bad ttl", "SESSION_TTL", "soon", "SESSION_TTL"},
		{"bad redis db", "REDIS_DB", "zero", "REDIS_DB"},
		{"unknown store", "SESSION_STORE", "etcd", "SESSION_STORE"},
		{"empty secret", "JWT_SECRET", "", "JWT_SECRET"},
		{"long key", "FINGERPRINT_KEY", strings.Repeat("k", 65), "FINGERPRINT_KEY"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", "")
			t.Setenv(tc.key, tc.value)
			_, err := NewConfig()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("NewConfig() error = %v, want mention of %s", err, tc.want)
			}
		})
	}
}

func TestNewConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := NewConfig(); err == nil {
		t.Error("expected error for missing config file")
	}
}
