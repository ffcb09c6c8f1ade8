package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// cacheDir returns the cache directory using the XDG standard (~/.cache/pixvec/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// outputPath builds the destination path for a converted artifact.
// The file name is the input's base name with the format's extension,
// placed in outDir (or next to the input when outDir is empty).
func outputPath(input, outDir, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base+"."+format)
}

// dedupePath returns path if no file exists there, otherwise the first
// "name_N.ext" variant that is free. Existing outputs are never overwritten.
func dedupePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// writeArtifact writes data to the deduped output path, creating the
// directory if needed, and returns the path actually written.
func writeArtifact(path string, data []byte) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	path = dedupePath(path)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
