// ABOUTME: Tests for configuration loading and validation
// ABOUTME: Covers env/file layering, athlete id rules, and fail-fast checks
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearConfigEnv blanks every variable Load reads so tests start clean.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_KEY", "ATHLETE_ID", "INTERVALS_API_BASE_URL",
		"MCP_TRANSPORT", "MCP_HOST", "MCP_PORT", "MCP_PATH",
		"MCP_SERVER_API_KEY", "LOG_LEVEL", "INTERVALS_HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads from environment with defaults", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "secret")
		t.Setenv("ATHLETE_ID", "i12345")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}

		if cfg.APIKey != "secret" {
			t.Errorf("expected APIKey 'secret', got %q", cfg.APIKey)
		}
		if cfg.AthleteID != "i12345" {
			t.Errorf("expected AthleteID 'i12345', got %q", cfg.AthleteID)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base URL, got %q", cfg.BaseURL)
		}
		if cfg.TransportKind() != TransportStdio {
			t.Errorf("expected stdio transport, got %q", cfg.Transport)
		}
		if cfg.ListenAddr() != "127.0.0.1:9000" {
			t.Errorf("unexpected listen address %q", cfg.ListenAddr())
		}
		if cfg.HTTPTimeout.Seconds() != 30 {
			t.Errorf("expected 30s timeout, got %v", cfg.HTTPTimeout)
		}
	})

	t.Run("fails without API key", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("ATHLETE_ID", "i12345")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "API_KEY") {
			t.Fatalf("expected API_KEY error, got %v", err)
		}
	})

	t.Run("normalizes bare digit athlete id", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "secret")
		t.Setenv("ATHLETE_ID", "98765")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.AthleteID != "i98765" {
			t.Errorf("expected normalized id 'i98765', got %q", cfg.AthleteID)
		}
	})

	t.Run("rejects malformed athlete id", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "secret")
		t.Setenv("ATHLETE_ID", "athlete-one")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "athlete id") {
			t.Fatalf("expected athlete id error, got %v", err)
		}
	})

	t.Run("networked transport requires server key", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "secret")
		t.Setenv("ATHLETE_ID", "i12345")
		t.Setenv("MCP_TRANSPORT", "http")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "MCP_SERVER_API_KEY") {
			t.Fatalf("expected MCP_SERVER_API_KEY error, got %v", err)
		}

		t.Setenv("MCP_SERVER_API_KEY", "mcp-secret")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed with server key set: %v", err)
		}
		if cfg.TransportKind() != TransportHTTP {
			t.Errorf("expected http transport, got %q", cfg.Transport)
		}
	})

	t.Run("stdio transport needs no server key", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "secret")
		t.Setenv("ATHLETE_ID", "i12345")
		t.Setenv("MCP_TRANSPORT", "stdio")

		if _, err := Load(); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
	})

	t.Run("rejects unknown transport", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "secret")
		t.Setenv("ATHLETE_ID", "i12345")
		t.Setenv("MCP_TRANSPORT", "websocket")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "MCP_TRANSPORT") {
			t.Fatalf("expected transport error, got %v", err)
		}
	})

	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("API_KEY", "secret")
		t.Setenv("ATHLETE_ID", "i12345")
		t.Setenv("INTERVALS_API_BASE_URL", "https://example.com/api/v1/")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.BaseURL != "https://example.com/api/v1" {
			t.Errorf("expected trimmed base URL, got %q", cfg.BaseURL)
		}
	})
}

func TestConfigFile(t *testing.T) {
	writeFile := func(t *testing.T, dir, content string) string {
		t.Helper()
		path := filepath.Join(dir, ConfigFileName)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		return path
	}

	t.Run("finds file in parent directory", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, `api_key = "from-file"`)
		nested := filepath.Join(root, "a", "b")
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}

		found, err := FindConfigFileFrom(nested)
		if err != nil {
			t.Fatalf("FindConfigFileFrom failed: %v", err)
		}
		if found != filepath.Join(root, ConfigFileName) {
			t.Errorf("expected file in %s, got %q", root, found)
		}
	})

	t.Run("returns empty when absent", func(t *testing.T) {
		found, err := FindConfigFileFrom(t.TempDir())
		if err != nil {
			t.Fatalf("FindConfigFileFrom failed: %v", err)
		}
		if found != "" {
			t.Errorf("expected no file, got %q", found)
		}
	})

	t.Run("environment wins over file values", func(t *testing.T) {
		clearConfigEnv(t)
		dir := t.TempDir()
		writeFile(t, dir, "api_key = \"file-key\"\nathlete_id = \"i111\"\nbase_url = \"https://file.example/api\"\n")
		t.Chdir(dir)
		t.Setenv("API_KEY", "env-key")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.APIKey != "env-key" {
			t.Errorf("expected env API key to win, got %q", cfg.APIKey)
		}
		if cfg.AthleteID != "i111" {
			t.Errorf("expected athlete id from file, got %q", cfg.AthleteID)
		}
		if cfg.BaseURL != "https://file.example/api" {
			t.Errorf("expected base URL from file, got %q", cfg.BaseURL)
		}
	})
}

func TestNormalizeAthleteID(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"i12345", "i12345", false},
		{"12345", "i12345", false},
		{" i42 ", "i42", false},
		{"", "", true},
		{"i", "", true},
		{"iabc", "", true},
		{"x123", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizeAthleteID(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NormalizeAthleteID(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeAthleteID(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeAthleteID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
