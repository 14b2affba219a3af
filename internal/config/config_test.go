package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIBaseURL, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, defaultAPIBaseURL)
	}
	if cfg.PlaceholderPoster != "/no-image.png" {
		t.Fatalf("PlaceholderPoster = %q", cfg.PlaceholderPoster)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %s, want 10s", cfg.RequestTimeout)
	}
	if !cfg.LatestOnly || !cfg.ProbePosters {
		t.Fatalf("LatestOnly = %v, ProbePosters = %v, want both true", cfg.LatestOnly, cfg.ProbePosters)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIBaseURL, "")

	path := writeConfig(t, `
api_base_url = "  http://movies.lan:9000/api  "
placeholder_poster = " /static/none.png "
imdb_title_url = "https://imdb.example/title/%s"
request_timeout = "2500ms"
latest_only = false
probe_posters = false
log_file = "  ~/logs/marquee.log  "
log_level = "DEBUG"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://movies.lan:9000/api" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PlaceholderPoster != "/static/none.png" {
		t.Fatalf("PlaceholderPoster = %q", cfg.PlaceholderPoster)
	}
	if cfg.IMDbTitleURL != "https://imdb.example/title/%s" {
		t.Fatalf("IMDbTitleURL = %q", cfg.IMDbTitleURL)
	}
	if cfg.RequestTimeout != 2500*time.Millisecond {
		t.Fatalf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if cfg.LatestOnly || cfg.ProbePosters {
		t.Fatalf("LatestOnly = %v, ProbePosters = %v, want both false", cfg.LatestOnly, cfg.ProbePosters)
	}
	if cfg.LogFile != filepath.Join(home, "logs/marquee.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIBaseURL, "")

	cfg, err := Load(writeConfig(t, `
api_base_url = "   "
log_file = ""
request_timeout = " "
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, defaultAPIBaseURL)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %s, want default", cfg.RequestTimeout)
	}
	if !cfg.LatestOnly {
		t.Fatalf("LatestOnly = false, want default true when key absent")
	}
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIBaseURL, " https://api.example.test/v1 ")

	cfg, err := Load(writeConfig(t, `api_base_url = "http://ignored/api"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.test/v1" {
		t.Fatalf("APIBaseURL = %q, want env value", cfg.APIBaseURL)
	}

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.test/v1" {
		t.Fatalf("APIBaseURL without file = %q, want env value", cfg.APIBaseURL)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `api_base_url = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidTimeoutFails(t *testing.T) {
	for _, value := range []string{"soon", "-1s", "0s"} {
		_, err := Load(writeConfig(t, `request_timeout = "`+value+`"`))
		if err == nil {
			t.Fatalf("request_timeout %q: Load returned nil error", value)
		}
		if !strings.Contains(err.Error(), "request_timeout") {
			t.Fatalf("request_timeout %q: error = %q", value, err.Error())
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestPath_DefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Path("")
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	if got != filepath.Join(home, ".config/marquee/config.toml") {
		t.Fatalf("Path = %q", got)
	}
}
