package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Config holds every setting of the command line driver. Flags given on the
// command line take precedence over values read from the config file.
type Config struct {
	LogLevel     string  `json:"log_level"`
	WordSource   string  `json:"word_source"`
	Vowels       string  `json:"vowels"`
	Count        int     `json:"count"`
	MaxSteps     int     `json:"max_steps"`
	Temperature  float64 `json:"temperature"`
	TopK         int     `json:"top_k"`
	Seed         *uint64 `json:"seed"` // null draws from the shared random source
	MinFrequency int     `json:"min_frequency"`
	OutputPath   string  `json:"output_path"` // empty writes to stdout
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		WordSource:   "./top10000en.txt",
		Vowels:       "aeiou",
		Count:        100,
		MaxSteps:     1024,
		Temperature:  1.0,
		TopK:         0,
		Seed:         nil,
		MinFrequency: 0,
		OutputPath:   "",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Warn instead of failing, the defaults are still usable.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// parseLogLevel maps a config log level to a slog.Level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
