package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir == "" {
		t.Error("cacheDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join("/tmp/custom-cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		outDir string
		format string
		want   string
	}{
		{
			name:   "next to input",
			input:  filepath.Join("sprites", "hero.png"),
			format: "svg",
			want:   filepath.Join("sprites", "hero.svg"),
		},
		{
			name:   "into output dir",
			input:  filepath.Join("sprites", "hero.png"),
			outDir: "out",
			format: "json",
			want:   filepath.Join("out", "hero.json"),
		},
		{
			name:   "no extension on input",
			input:  "hero",
			format: "svg",
			want:   "hero.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.input, tt.outDir, tt.format)
			if got != tt.want {
				t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.input, tt.outDir, tt.format, got, tt.want)
			}
		})
	}
}

func TestDedupePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.svg")

	if got := dedupePath(path); got != path {
		t.Errorf("dedupePath on fresh path = %q, want %q", got, path)
	}

	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "hero_1.svg")
	if got := dedupePath(path); got != want {
		t.Errorf("dedupePath with existing file = %q, want %q", got, want)
	}

	if err := os.WriteFile(want, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	want2 := filepath.Join(dir, "hero_2.svg")
	if got := dedupePath(path); got != want2 {
		t.Errorf("dedupePath with two existing files = %q, want %q", got, want2)
	}
}

func TestWriteArtifactNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.svg")

	first, err := writeArtifact(path, []byte("first"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := writeArtifact(path, []byte("second"))
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatalf("second write reused path %q", first)
	}
	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("original file was overwritten: %q", data)
	}
}
