package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Session store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// DefaultJWTSecret is the development signing secret; never use it in production
const DefaultJWTSecret = "secret"

// Config holds application configuration
type Config struct {
	Port           string        `yaml:"port"`
	LogLevel       string        `yaml:"log_level"`
	JWTSecret      string        `yaml:"jwt_secret"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	SessionStore   string        `yaml:"session_store"`
	DBConn         string        `yaml:"db_conn"`
	RedisAddr      string        `yaml:"redis_addr"`
	RedisPassword  string        `yaml:"redis_password"`
	RedisDB        int           `yaml:"redis_db"`
	SweepSchedule  string        `yaml:"sweep_schedule"`
	FingerprintKey string        `yaml:"fingerprint_key"`
	SMTPHost       string        `yaml:"smtp_host"`
	SMTPPort       string        `yaml:"smtp_port"`
	SMTPUsername   string        `yaml:"smtp_username"`
	SMTPPassword   string        `yaml:"smtp_password"`
	SenderEmail    string        `yaml:"sender_email"`
}

// Defaults returns the configuration used when nothing is set
func Defaults() *Config {
	return &Config{
		Port:           "8080",
		LogLevel:       "INFO",
		JWTSecret:      DefaultJWTSecret,
		SessionTTL:     2 * time.Hour,
		SessionStore:   StoreMemory,
		DBConn:         "host=localhost port=5436 user=test password=test dbname=finplan sslmode=disable",
		RedisAddr:      "localhost:6379",
		SweepSchedule:  "@every 10m",
		FingerprintKey: "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6",
		SMTPPort:       "587",
	}
}

// NewConfig loads configuration from CONFIG_FILE (if set) and then from
// environment variables, which take precedence.
func NewConfig() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.SessionStore = strings.ToLower(getEnv("SESSION_STORE", cfg.SessionStore))
	cfg.DBConn = getEnv("DB_CONN", cfg.DBConn)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.SweepSchedule = getEnv("SWEEP_SCHEDULE", cfg.SweepSchedule)
	cfg.FingerprintKey = getEnv("FINGERPRINT_KEY", cfg.FingerprintKey)
	cfg.SMTPHost = getEnv("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = getEnv("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", cfg.SMTPUsername)
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", cfg.SMTPPassword)
	cfg.SenderEmail = getEnv("SENDER_EMAIL", cfg.SenderEmail)

	if v, ok := os.LookupEnv("SESSION_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = ttl
	}
	if v, ok := os.LookupEnv("REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can start the service
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.FingerprintKey == "" {
		return fmt.Errorf("FINGERPRINT_KEY is required")
	}
	if len(c.FingerprintKey) > 64 {
		return fmt.Errorf("FINGERPRINT_KEY must be at most 64 bytes")
	}
	switch c.SessionStore {
	case StoreMemory:
	case StorePostgres:
		if c.DBConn == "" {
			return fmt.Errorf("DB_CONN is required for the postgres session store")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis session store")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore)
	}
	return nil
}

// UsesDefaultSecret reports whether tokens are signed with DefaultJWTSecret
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// MailEnabled reports whether SMTP delivery is configured
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
