package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is everything the client reads from the environment.
type Config struct {
	APIURL      string        `env:"CONNECTIFY_API_URL,  default=http://localhost:1512"`
	Token       string        `env:"CONNECTIFY_TOKEN"`
	DebugLog    string        `env:"CONNECTIFY_DEBUG_LOG"`
	HTTPTimeout time.Duration `env:"CONNECTIFY_HTTP_TIMEOUT, default=30s"`
}

// Load reads configuration from a .env file (if present) and the
// environment. Environment variables win over .env entries.
func Load(ctx context.Context) (*Config, error) {
	// Best effort: a missing .env is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Dir returns the per-user state directory, ~/.connectify.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".connectify"), nil
}

// TokenPath returns the location of the persisted session token.
func TokenPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}
