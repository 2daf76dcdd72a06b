// Package cli implements the boardkit command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/boardkit/boardkit/pkg/buildinfo"
	"github.com/boardkit/boardkit/pkg/cache"
	"github.com/boardkit/boardkit/pkg/pipeline"
	"github.com/boardkit/boardkit/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "boardkit"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration (or defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "boardkit",
		Short:        "Boardkit lays out and renders hierarchical grid compositions",
		Long:         `Boardkit is a CLI tool for composing hierarchical 2D grid layouts: flexbox-style auto-layout, container nesting, smart-guide snapping, and rendering to text, SVG, and Graphviz diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.hierarchyCommand())
	root.AddCommand(c.boardCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Store Factory
// =============================================================================

// storeFlags are the persistent flags shared by commands that hit the board
// store.
type storeFlags struct {
	backend   string
	redisAddr string
	mongoURI  string
}

// register attaches the store selection flags to cmd.
func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.backend, "store", "file", "board store backend: file, redis, mongo")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", "localhost:6379", "redis address (with --store redis)")
	cmd.Flags().StringVar(&f.mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongodb URI (with --store mongo)")
}

// open creates the selected store backend.
func (c *CLI) openStore(cmd *cobra.Command, f storeFlags) (store.Store, error) {
	switch f.backend {
	case "file":
		dir, err := boardsDir()
		if err != nil {
			return nil, fmt.Errorf("resolve boards dir: %w", err)
		}
		return store.NewFileStore(dir)
	case "redis":
		return store.NewRedisStore(store.RedisConfig{Addr: f.redisAddr}), nil
	case "mongo":
		return store.NewMongoStore(cmd.Context(), store.MongoConfig{URI: f.mongoURI})
	default:
		return nil, fmt.Errorf("unknown store backend: %s (must be 'file', 'redis', or 'mongo')", f.backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/boardkit/).
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

// configDir returns the config directory using XDG standard (~/.config/boardkit/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// boardsDir returns the directory the file store keeps board documents in.
func boardsDir() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "boards"), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
