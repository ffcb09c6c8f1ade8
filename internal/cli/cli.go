// Package cli implements the pixvec command-line interface.
//
// This package provides commands for converting pixel-art images into
// vector documents, inspecting images before conversion, and managing
// the artifact cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - convert: Convert one or more images to SVG, JSON, or PNG
//   - inspect: Print image statistics and per-mode shape estimates
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixvec/pixvec/pkg/batch"
	"github.com/pixvec/pixvec/pkg/cache"
)

const (
	// appName is the application name used for directories and display.
	appName = "pixvec"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version information, set by SetVersion from ldflags-injected values.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// versionTemplate formats the --version output with build metadata.
func versionTemplate() string {
	return "pixvec " + version + "\ncommit: " + commit + "\nbuilt: " + date + "\n"
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "pixvec",
		Short:        "Pixvec converts pixel art into crisp vector graphics",
		Long:         `Pixvec is a CLI tool for converting pixel-art rasters into scalable vector documents, either as compact merged shapes or as one tile per pixel.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(versionTemplate())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/pixvec/config.toml)")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a batch runner wired to the configured cache backend.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *batch.Runner {
	store := c.newCache(ctx, noCache)
	return batch.NewRunner(store, nil, c.Logger)
}

// newCache selects the cache backend from the config. Backend failures fall
// back to a no-op cache rather than aborting the conversion.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache || c.Config.Cache.Backend == cacheBackendNone {
		return cache.NewNullCache()
	}

	if c.Config.Cache.Backend == cacheBackendRedis {
		store, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Config.Cache.RedisAddr,
			Password: c.Config.Cache.RedisPassword,
			DB:       c.Config.Cache.RedisDB,
		})
		if err != nil {
			c.Logger.Warn("Redis cache unavailable, continuing without cache", "err", err)
			return cache.NewNullCache()
		}
		return store
	}

	dir := c.Config.Cache.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("File cache unavailable, continuing without cache", "err", err)
		return cache.NewNullCache()
	}
	return store
}
