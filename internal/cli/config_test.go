package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixvec/pixvec/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
mode = "lego"
output_dir = "out"
max_pixels = 500000
warn_threshold = 10000

[cache]
backend = "redis"
redis_addr = "localhost:6379"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Mode != "lego" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "lego")
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
	if cfg.MaxPixels != 500000 {
		t.Errorf("MaxPixels = %d, want 500000", cfg.MaxPixels)
	}
	if cfg.Cache.Backend != cacheBackendRedis {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, cacheBackendRedis)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("Cache.RedisAddr = %q, want %q", cfg.Cache.RedisAddr, "localhost:6379")
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("missing default config should yield zero Config, got %+v", cfg)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad toml", content: `mode = [`},
		{name: "unknown backend", content: "[cache]\nbackend = \"memcached\"\n"},
		{name: "negative max_pixels", content: "max_pixels = -1\n"},
		{name: "negative shape_budget", content: "shape_budget = -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := loadConfig(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestDefaultConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	path, err := defaultConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	expected := filepath.Join("/tmp/custom-config", appName, "config.toml")
	if path != expected {
		t.Errorf("defaultConfigPath() = %q, want %q", path, expected)
	}
}
