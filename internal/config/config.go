package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeyEnvVars are the variables holding the Gemini key, in priority order.
var APIKeyEnvVars = []string{"GEMINI_KEY", "GEMINI_API_KEY"}

// Config is resolved once at startup and read-only afterwards.
type Config struct {
	Port     string
	LogLevel slog.Level
	APIKey   string
}

// HasAPIKey reports whether a remote model credential was found.
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	return Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: parseLevel(os.Getenv("LOG_LEVEL")),
		APIKey:   ResolveAPIKey(APIKeyEnvVars...),
	}, nil
}

// ResolveAPIKey returns the first non-blank value among keys, trimmed.
// It returns "" when none is set.
func ResolveAPIKey(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
