// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Every field has an environment
// binding; SMTP credentials are the only values without a usable default.
type Config struct {
	Addr         string `env:"ADDR" envDefault:":8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/craftroast.db"`

	// AllowedOrigins is the CORS allow-list for the front-end.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	SMTPHost     string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string        `env:"SMTP_USERNAME"`
	SMTPPassword string        `env:"SMTP_PASSWORD"`
	SMTPTimeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`

	// SenderEmail is the From identity on notification mail.
	SenderEmail string `env:"SENDER_EMAIL" envDefault:"noreply@craftroast.example"`
	// NotifyEmail receives form notifications; falls back to the shop
	// inbox when unset.
	NotifyEmail string `env:"NOTIFY_EMAIL" envDefault:"orders@craftroast.example"`
}

// Load reads an optional .env file and parses the environment into a
// Config. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
