// Package config loads service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the simulator service configuration.
type Config struct {
	Port      int    // QSIM_PORT
	LogLevel  string // QSIM_LOG_LEVEL
	DevMode   bool   // QSIM_DEV_MODE
	MaxQubits int    // QSIM_MAX_QUBITS: per-request register cap (2^n amplitudes)
	MaxShots  int    // QSIM_MAX_SHOTS: per-request sampling cap
}

// Load reads configuration from the environment. Missing variables fall
// back to defaults; malformed values are errors.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      8080,
		LogLevel:  "info",
		MaxQubits: 12,
		MaxShots:  1 << 20,
	}

	var err error
	if cfg.Port, err = intEnv("QSIM_PORT", cfg.Port); err != nil {
		return nil, err
	}
	if v := os.Getenv("QSIM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("QSIM_DEV_MODE"); v == "1" || v == "true" {
		cfg.DevMode = true
	}
	if cfg.MaxQubits, err = intEnv("QSIM_MAX_QUBITS", cfg.MaxQubits); err != nil {
		return nil, err
	}
	if cfg.MaxShots, err = intEnv("QSIM_MAX_SHOTS", cfg.MaxShots); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, nil
}
