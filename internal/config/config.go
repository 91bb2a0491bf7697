package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr               string        `envconfig:"ADDR" default:":8080"`
	DBPath             string        `envconfig:"DB_PATH" default:"file:codecompass.db"`
	BaseURL            string        `envconfig:"BASE_URL" default:"http://localhost:8080"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"INFO"`
	SessionSecret      string        `envconfig:"SESSION_SECRET" default:"dev-only-change-me-in-prod"`
	SessionTTL         time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	FlashTTL           time.Duration `envconfig:"FLASH_TTL" default:"3s"`
	GitHubClientID     string        `envconfig:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string        `envconfig:"GITHUB_CLIENT_SECRET"`
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing.
func Load() (Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.BaseURL == "" {
		problems = append(problems, "BASE_URL cannot be empty")
	}
	if len(c.SessionSecret) < 16 {
		problems = append(problems, "SESSION_SECRET must be at least 16 characters")
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, "SESSION_TTL must be positive")
	}
	if c.FlashTTL <= 0 {
		problems = append(problems, "FLASH_TTL must be positive")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	// OAuth is optional, but a half-configured pair is always a mistake.
	if (c.GitHubClientID == "") != (c.GitHubClientSecret == "") {
		problems = append(problems, "GITHUB_CLIENT_ID and GITHUB_CLIENT_SECRET must be set together")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// GitHubEnabled reports whether GitHub sign-in is configured.
func (c Config) GitHubEnabled() bool {
	return c.GitHubClientID != "" && c.GitHubClientSecret != ""
}
