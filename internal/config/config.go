// Package config resolves settings for the deviceprobe CLI.
package config

import (
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Environment variables that override defaults
const (
	EnvBind     = "DEVICEPROBE_BIND"
	EnvPort     = "DEVICEPROBE_PORT"
	EnvLogLevel = "DEVICEPROBE_LOG_LEVEL"
)

// Config holds CLI settings
type Config struct {
	Bind     string
	Port     string
	LogLevel string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Bind:     "127.0.0.1",
		Port:     "8080",
		LogLevel: "info",
	}
}

// FromEnv returns Default overridden by any DEVICEPROBE_* variables
func FromEnv() Config {
	cfg := Default()
	if v := strings.TrimSpace(os.Getenv(EnvBind)); v != "" {
		cfg.Bind = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// Address returns bind:port
func (c Config) Address() string {
	return net.JoinHostPort(c.Bind, c.Port)
}

// Level parses LogLevel
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.InfoLevel, errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// LoadDotEnv loads the first .env found from dir up to the filesystem root.
// Variables already set in the environment win. It returns the loaded path,
// or "" when there is none.
func LoadDotEnv(dir string) (string, error) {
	path, err := findDotEnv(dir)
	if err != nil || path == "" {
		return "", err
	}
	if err := godotenv.Load(path); err != nil {
		return "", errors.Wrapf(err, "load %s", path)
	}
	return path, nil
}

func findDotEnv(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		} else if err != nil && !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
