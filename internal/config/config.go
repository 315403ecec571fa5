// Package config loads service settings from the environment, reading a
// .env file first when one exists.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	DeliveryRelay = "relay"
	DeliverySMTP  = "smtp"
)

type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	ContentFile string

	DatabasePath             string
	AnalyticsEnabled         bool
	AnalyticsRetentionMonths int

	ContactDelivery      string
	FormRelayURL         string
	FormRelayAccessKey   string
	SMTPHost             string
	SMTPPort             string
	SMTPUser             string
	SMTPPass             string
	ContactToEmail       string
	ContactRatePerMinute int

	ChatMinDelay   time.Duration
	ChatMaxDelay   time.Duration
	ChatSessionTTL time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (cfg Config, err error) {
	_ = godotenv.Load()

	cfg = Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		ContentFile: getEnv("CONTENT_FILE", ""),

		DatabasePath:             getEnv("DATABASE_PATH", "data/portfolio.db"),
		AnalyticsEnabled:         getBoolEnv("ANALYTICS_ENABLED", true),
		AnalyticsRetentionMonths: getIntEnv("ANALYTICS_RETENTION_MONTHS", 12),

		ContactDelivery:      strings.ToLower(getEnv("CONTACT_DELIVERY", DeliveryRelay)),
		FormRelayURL:         getEnv("FORM_RELAY_URL", "https://api.web3forms.com/submit"),
		FormRelayAccessKey:   getEnv("FORM_RELAY_ACCESS_KEY", ""),
		SMTPHost:             getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:             getEnv("SMTP_PORT", "587"),
		SMTPUser:             getEnv("SMTP_USER", ""),
		SMTPPass:             getEnv("SMTP_PASS", ""),
		ContactToEmail:       getEnv("TO_EMAIL", ""),
		ContactRatePerMinute: getIntEnv("CONTACT_RATE_PER_MINUTE", 5),

		ChatMinDelay:   getDurationEnv("CHAT_MIN_DELAY", 500*time.Millisecond),
		ChatMaxDelay:   getDurationEnv("CHAT_MAX_DELAY", 1500*time.Millisecond),
		ChatSessionTTL: getDurationEnv("CHAT_SESSION_TTL", 30*time.Minute),
	}

	err = cfg.Validate()
	return cfg, err
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() (err error) {
	if c.Port == "" {
		err = errors.New("PORT must not be empty")
		return err
	}

	if c.ContactDelivery != DeliveryRelay && c.ContactDelivery != DeliverySMTP {
		err = errors.Errorf("CONTACT_DELIVERY must be %q or %q, got %q", DeliveryRelay, DeliverySMTP, c.ContactDelivery)
		return err
	}

	if c.ChatMinDelay < 0 || c.ChatMaxDelay < c.ChatMinDelay {
		err = errors.Errorf("invalid chat delay range %s-%s", c.ChatMinDelay, c.ChatMaxDelay)
		return err
	}

	if c.ChatSessionTTL <= 0 {
		err = errors.New("CHAT_SESSION_TTL must be positive")
		return err
	}

	if c.ContactRatePerMinute <= 0 {
		err = errors.New("CONTACT_RATE_PER_MINUTE must be positive")
		return err
	}

	if c.AnalyticsRetentionMonths <= 0 {
		c.AnalyticsRetentionMonths = 12
	}

	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
