package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pixvec/pixvec/pkg/errors"
)

// Cache backend names accepted in the [cache] config section.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Config holds user defaults loaded from the TOML config file.
// Command-line flags override config values, which override built-in defaults.
type Config struct {
	Mode          string      `toml:"mode"`
	OutputDir     string      `toml:"output_dir"`
	Formats       string      `toml:"formats"`
	MaxPixels     int         `toml:"max_pixels"`
	WarnThreshold int         `toml:"warn_threshold"`
	ShapeBudget   int         `toml:"shape_budget"`
	Cache         CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"` // "file" (default), "redis", or "none"
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// defaultConfigPath returns the config file location using the XDG standard
// (~/.config/pixvec/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location when path
// is empty. A missing file at the default location yields a zero Config; a
// missing file named explicitly is an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "", cacheBackendFile, cacheBackendRedis, cacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (must be 'file', 'redis', or 'none')", c.Cache.Backend)
	}
	if c.MaxPixels < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_pixels must not be negative")
	}
	if c.WarnThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "warn_threshold must not be negative")
	}
	if c.ShapeBudget < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "shape_budget must not be negative")
	}
	return nil
}
