// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Accepted STORAGE_DRIVER and MAILER values.
const (
	StoragePostgres = "postgres"
	StorageBadger   = "badger"
	StorageMemory   = "memory"

	MailerLog  = "log"
	MailerSMTP = "smtp"
)

// Config holds every setting read from environment variables.
type Config struct {
	Port          string `env:"PORT,default=8080"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
	StorageDriver string `env:"STORAGE_DRIVER,default=postgres"`

	DB     DB
	Badger Badger
	Auth   Auth
	Mail   Mail
}

// DB holds PostgreSQL connection settings.
type DB struct {
	Host     string `env:"DB_HOST,default=localhost"`
	Port     string `env:"DB_PORT,default=5432"`
	User     string `env:"DB_USER,default=postgres"`
	Password string `env:"DB_PASSWORD,default=postgres"`
	Name     string `env:"DB_NAME,default=webinars"`
	SSLMode  string `env:"DB_SSLMODE,default=disable"`
}

// DSN builds a libpq-compatible connection string.
func (c DB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Badger holds the embedded store location.
type Badger struct {
	Path string `env:"BADGER_PATH,default=./data/badger"`
}

// Auth holds token signing settings.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET,required=true"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,default=24h"`
}

// Mail selects the notifier and holds SMTP relay settings.
type Mail struct {
	Driver   string `env:"MAILER,default=log"`
	Host     string `env:"SMTP_HOST,default=localhost"`
	Port     int    `env:"SMTP_PORT,default=25"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"MAIL_FROM,default=noreply@webinars.local"`
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case StoragePostgres, StorageBadger, StorageMemory:
	default:
		return fmt.Errorf("config error: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	switch c.Mail.Driver {
	case MailerLog, MailerSMTP:
	default:
		return fmt.Errorf("config error: unknown MAILER %q", c.Mail.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config error: JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config error: TOKEN_TTL must be positive")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
