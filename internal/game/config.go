package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds game configuration options.
type Config struct {
	// Screen size in cells. The map is drawn from the top-left corner.
	Width  int
	Height int

	Title string

	// FPS caps the frame rate. Zero disables the cap.
	FPS int

	// LogFile receives log output while the screen is active. Empty discards it.
	LogFile  string
	LogLevel string

	// Telemetry enables the OTLP trace exporter.
	Telemetry bool
}

// DefaultConfig returns an 80x50 screen capped at 20 fps.
func DefaultConfig() Config {
	return Config{
		Width:    80,
		Height:   50,
		Title:    "roguetut",
		FPS:      20,
		LogLevel: "info",
	}
}

// LoadConfig reads a .env file if present, then ROGUETUT_* environment variables.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := DefaultConfig()

	var err error
	if cfg.Width, err = envInt("ROGUETUT_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = envInt("ROGUETUT_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.FPS, err = envInt("ROGUETUT_FPS", cfg.FPS); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("ROGUETUT_TELEMETRY"); v != "" {
		if cfg.Telemetry, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("ROGUETUT_TELEMETRY: %w", err)
		}
	}
	if v := os.Getenv("ROGUETUT_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("ROGUETUT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogFile = os.Getenv("ROGUETUT_LOG_FILE")

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("invalid screen size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
