// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr      string        `validate:"required"`
	LoginDelay      time.Duration `validate:"gt=0"`
	QuoteInterval   time.Duration `validate:"gt=0"`
	VisitorTTL      time.Duration `validate:"gt=0"`
	QuotesPath      string
	DBPath          string
	ShowLoginErrors bool
	SecureCookies   bool
	LogLevel        slog.Level
}

// JournalEnabled returns true when a database path is configured. Without
// one, login attempts are reported to the log only.
func (c *Config) JournalEnabled() bool {
	return c.DBPath != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// Optional variables with defaults: SMARTCAMPUS_LISTEN_ADDR (127.0.0.1:8080),
// SMARTCAMPUS_LOGIN_DELAY (1500ms), SMARTCAMPUS_QUOTE_INTERVAL (5s),
// SMARTCAMPUS_VISITOR_TTL (12h), SMARTCAMPUS_LOG_LEVEL (info).
// SMARTCAMPUS_QUOTES_PATH and SMARTCAMPUS_DB_PATH are unset by default.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:    "127.0.0.1:8080",
		LoginDelay:    1500 * time.Millisecond,
		QuoteInterval: 5 * time.Second,
		VisitorTTL:    12 * time.Hour,
		LogLevel:      slog.LevelInfo,
	}

	if v, ok := os.LookupEnv("SMARTCAMPUS_LISTEN_ADDR"); ok {
		cfg.ListenAddr = strings.TrimSpace(v)
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SMARTCAMPUS_LOGIN_DELAY", &cfg.LoginDelay},
		{"SMARTCAMPUS_QUOTE_INTERVAL", &cfg.QuoteInterval},
		{"SMARTCAMPUS_VISITOR_TTL", &cfg.VisitorTTL},
	}
	for _, d := range durations {
		v, ok := os.LookupEnv(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s has invalid duration %q: %w", d.key, v, err)
		}
		*d.dst = parsed
	}

	cfg.QuotesPath = os.Getenv("SMARTCAMPUS_QUOTES_PATH")
	cfg.DBPath = os.Getenv("SMARTCAMPUS_DB_PATH")

	flags := []struct {
		key string
		dst *bool
	}{
		{"SMARTCAMPUS_SHOW_LOGIN_ERRORS", &cfg.ShowLoginErrors},
		{"SMARTCAMPUS_SECURE_COOKIES", &cfg.SecureCookies},
	}
	for _, f := range flags {
		v, ok := os.LookupEnv(f.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s has invalid boolean %q: %w", f.key, v, err)
		}
		*f.dst = parsed
	}

	if v, ok := os.LookupEnv("SMARTCAMPUS_LOG_LEVEL"); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("SMARTCAMPUS_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

var configFieldEnv = map[string]string{
	"ListenAddr":    "SMARTCAMPUS_LISTEN_ADDR",
	"LoginDelay":    "SMARTCAMPUS_LOGIN_DELAY",
	"QuoteInterval": "SMARTCAMPUS_QUOTE_INTERVAL",
	"VisitorTTL":    "SMARTCAMPUS_VISITOR_TTL",
}

// validate checks cfg's struct tags and names the offending variable.
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	fe := verrs[0]
	key := configFieldEnv[fe.Field()]
	if fe.Tag() == "required" {
		return fmt.Errorf("%s must not be empty", key)
	}
	return fmt.Errorf("%s must be positive, got %v", key, fe.Value())
}
