package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything marquee reads from config.toml.
type Config struct {
	APIBaseURL        string
	PlaceholderPoster string
	IMDbTitleURL      string
	RequestTimeout    time.Duration
	LatestOnly        bool
	ProbePosters      bool
	LogFile           string
	LogLevel          string
}

// EnvAPIBaseURL overrides api_base_url when set.
const EnvAPIBaseURL = "MARQUEE_API_BASE_URL"

const (
	defaultConfigPath        = "~/.config/marquee/config.toml"
	defaultAPIBaseURL        = "http://localhost:8080/api"
	defaultPlaceholderPoster = "/no-image.png"
	defaultIMDbTitleURL      = "https://www.imdb.com/title/%s"
	defaultRequestTimeout    = 10 * time.Second
	defaultLogFile           = "~/.local/state/marquee/marquee.log"
	defaultLogLevel          = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:        defaultAPIBaseURL,
		PlaceholderPoster: defaultPlaceholderPoster,
		IMDbTitleURL:      defaultIMDbTitleURL,
		RequestTimeout:    defaultRequestTimeout,
		LatestOnly:        true,
		ProbePosters:      true,
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
	}
}

// Load locates and parses the marquee config, falling back to defaults when
// missing. The MARQUEE_API_BASE_URL environment variable wins over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL        string `toml:"api_base_url"`
		PlaceholderPoster string `toml:"placeholder_poster"`
		IMDbTitleURL      string `toml:"imdb_title_url"`
		RequestTimeout    string `toml:"request_timeout"`
		LatestOnly        *bool  `toml:"latest_only"`
		ProbePosters      *bool  `toml:"probe_posters"`
		LogFile           string `toml:"log_file"`
		LogLevel          string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBaseURL = orDefault(raw.APIBaseURL, defaultAPIBaseURL)
	cfg.PlaceholderPoster = orDefault(raw.PlaceholderPoster, defaultPlaceholderPoster)
	cfg.IMDbTitleURL = orDefault(raw.IMDbTitleURL, defaultIMDbTitleURL)
	cfg.LogFile = mustExpand(orDefault(raw.LogFile, defaultLogFile))
	cfg.LogLevel = strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel))

	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}
	if raw.LatestOnly != nil {
		cfg.LatestOnly = *raw.LatestOnly
	}
	if raw.ProbePosters != nil {
		cfg.ProbePosters = *raw.ProbePosters
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Path returns the config file Load reads for path.
func Path(path string) (string, error) {
	return resolvePath(path)
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIBaseURL)); v != "" {
		cfg.APIBaseURL = v
	}
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
