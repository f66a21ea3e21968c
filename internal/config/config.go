package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/averycrespi/calculator-mcp/pkg/types"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel    = "info"
	DefaultMaxSessions = 16
)

// envFiles are loaded in order before the config file is expanded. Variables that are
// already set are never overwritten.
var envFiles = []string{".env", ".env.local"}

// Default returns the configuration used when no config file is given
func Default() types.Config {
	return types.Config{
		LogLevel:    DefaultLogLevel,
		MaxSessions: DefaultMaxSessions,
	}
}

// Load reads the YAML config file at path, expanding ${VAR} references from the
// environment and any .env file. An empty path returns the defaults.
func Load(path string) (types.Config, error) {
	if err := loadEnvFiles(); err != nil {
		return types.Config{}, err
	}

	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return types.Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.MaxSessions == 0 {
		config.MaxSessions = DefaultMaxSessions
	}

	if err := Validate(config); err != nil {
		return types.Config{}, err
	}
	return config, nil
}

// Validate checks the log level and session limit
func Validate(config types.Config) error {
	if _, err := ParseLogLevel(config.LogLevel); err != nil {
		return err
	}
	if config.MaxSessions < 1 {
		return fmt.Errorf("invalid max_sessions %d: must be at least 1", config.MaxSessions)
	}
	return nil
}

// ParseLogLevel converts debug, info, warn or error (any case) to a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

func loadEnvFiles() error {
	for _, envFile := range envFiles {
		err := godotenv.Load(envFile)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		slog.Debug("Loaded environment variables", "file", envFile)
	}
	return nil
}
