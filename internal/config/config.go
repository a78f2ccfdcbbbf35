// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const minSecretKeyLength = 32

var (
	ErrSecretKeyMissing     = errors.New("SECRET_KEY is required")
	ErrSecretKeyPlaceholder = errors.New("SECRET_KEY uses an example placeholder")
	ErrSecretKeyTooShort    = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	ErrInvalidPort          = errors.New("PORT must be a number between 1 and 65535")
)

var placeholderSecrets = []string{
	"change_me_in_production",
	"replace_with_at_least_32_random_characters",
	"changeme",
	"secret",
}

type Config struct {
	Port                    string `env:"PORT" envDefault:"8080"`
	DBPath                  string `env:"DB_PATH" envDefault:"data/gloww.db"`
	SecretKey               string `env:"SECRET_KEY"`
	TimeZone                string `env:"TZ" envDefault:"UTC"`
	CookieSecure            bool   `env:"COOKIE_SECURE" envDefault:"false"`
	LogLevel                string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat               string `env:"LOG_FORMAT" envDefault:"json"`
	RecentSymptomWindowDays int    `env:"RECENT_SYMPTOM_WINDOW_DAYS" envDefault:"30"`
	ContentPath             string `env:"CONTENT_PATH"`
	TelegramBotToken        string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID          string `env:"TELEGRAM_CHAT_ID"`
	ReminderSchedule        string `env:"REMINDER_SCHEDULE" envDefault:"0 9 * * *"`
	ReminderDaysBefore      int    `env:"REMINDER_DAYS_BEFORE" envDefault:"2"`
	ReminderOvulation       bool   `env:"REMINDER_OVULATION" envDefault:"true"`
}

// Load reads an optional .env file (existing variables win) and parses the
// environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		// A missing .env is normal outside development.
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if _, err := ResolvePort(cfg.Port); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateSecretKey is only required by commands that issue session tokens.
func (cfg Config) ValidateSecretKey() (string, error) {
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret == "" {
		return "", ErrSecretKeyMissing
	}
	lowered := strings.ToLower(secret)
	for _, placeholder := range placeholderSecrets {
		if lowered == placeholder {
			return "", ErrSecretKeyPlaceholder
		}
	}
	if len(secret) < minSecretKeyLength {
		return "", ErrSecretKeyTooShort
	}
	return secret, nil
}

func (cfg Config) Location() *time.Location {
	location, err := time.LoadLocation(strings.TrimSpace(cfg.TimeZone))
	if err != nil {
		return time.UTC
	}
	return location
}

func (cfg Config) RemindersEnabled() bool {
	return strings.TrimSpace(cfg.TelegramBotToken) != "" && strings.TrimSpace(cfg.TelegramChatID) != ""
}

func ResolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", ErrInvalidPort
	}
	return port, nil
}
