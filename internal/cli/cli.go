// Package cli implements the architectus command-line interface.
//
// The command tree is built with cobra. Every command shares one [CLI]
// value carrying the logger and the loaded configuration file; flags
// override configuration values.
//
// # Commands
//
//   - generate: generate a plan and write it as ascii, svg, json, dot or graph
//   - components: list the available archetypes
//   - preview: browse seeds interactively in the terminal
//   - serve: run the HTTP API
//   - cache: manage the plan cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/architectus/pkg/cache"
	"github.com/matzehuels/architectus/pkg/component"
	"github.com/matzehuels/architectus/pkg/config"
	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/generator"
	"github.com/matzehuels/architectus/pkg/template"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "architectus"

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
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the configuration file selected by --config.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// =============================================================================
// Generator Factory
// =============================================================================

// templateIndex records the templates registered with a generator.
type templateIndex struct {
	hashes map[string]string // component name -> hash of the encoded template
	names  map[string]string // file path -> component name
}

// newGenerator creates a generator with the built-in components, the
// configured templates and any extra template files.
func (c *CLI) newGenerator(ctx context.Context, noCache bool, extraTemplates []string) (*generator.Generator, templateIndex, error) {
	reg := component.Default()
	idx := templateIndex{hashes: make(map[string]string), names: make(map[string]string)}
	for _, path := range append(append([]string{}, c.Config.Templates...), extraTemplates...) {
		t, err := template.Load(path)
		if err != nil {
			return nil, idx, err
		}
		if err := reg.Register(t); err != nil {
			return nil, idx, err
		}
		idx.hashes[t.Name()] = t.Hash()
		idx.names[path] = t.Name()
		c.Logger.Debug("registered template", "name", t.Name(), "path", path)
	}

	pc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, idx, err
	}
	var keyer cache.Keyer
	if c.Config.Cache.Backend == config.CacheRedis {
		keyer = cache.NewScopedKeyer(nil, appName+":")
	}
	return generator.New(reg, pc, keyer, c.Logger), idx, nil
}

// newCache opens the configured cache backend.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg := c.Config.Cache
	switch cfg.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	dir, err := c.fileCacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/architectus/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "locate home directory")
	}
	return filepath.Join(home, ".cache", appName), nil
}
