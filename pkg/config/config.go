// Package config loads the architectus configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/architectus/config.toml
// (or ~/.config/architectus/config.toml). Every key is optional; command
// line flags override file values.
//
//	templates = ["~/plans/courtyard.toml"]
//
//	[generate]
//	width = 16
//	height = 10
//	component = "family"
//	margin = [1, 1, 1, 1]
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	mongo_uri = "mongodb://localhost:27017"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
)

const appName = "architectus"

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the decoded configuration file.
type Config struct {
	// Templates are TOML layout templates registered as extra components.
	Templates []string `toml:"templates"`

	Generate Generate `toml:"generate"`
	Cache    Cache    `toml:"cache"`
	Server   Server   `toml:"server"`
}

// Generate holds defaults for generation flags.
type Generate struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Component   string `toml:"component"`
	Margin      []int  `toml:"margin"`
	MaxAttempts int    `toml:"attempts"`
	Format      string `toml:"format"`
}

// Cache selects the plan cache backend.
type Cache struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Server configures `architectus serve`.
type Server struct {
	Addr          string `toml:"addr"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Generate: Generate{Format: "ascii"},
		Cache:    Cache{Backend: CacheFile},
		Server:   Server{Addr: ":8080", MongoDatabase: appName},
	}
}

// DefaultPath returns the XDG location of the configuration file.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path means
// [DefaultPath], which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config")
	}
	if err := cfg.decode(data, filepath.Dir(path)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. Relative template paths are
// resolved against dir.
func Parse(data []byte, dir string) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data, dir); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, dir string) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidFormat, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	for i, t := range c.Templates {
		c.Templates[i] = resolvePath(t, dir)
	}
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := c.Generate.MarginThickness(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend must be one of: none, file, redis (got %q)", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
	}
	if c.Generate.Component != "" {
		if err := errors.ValidateComponentName(c.Generate.Component); err != nil {
			return err
		}
	}
	return nil
}

// MarginThickness converts the margin list (1, 2 or 4 values) to a
// thickness. It returns nil when no margin is configured.
func (g Generate) MarginThickness() (*geom.ThicknessInt, error) {
	if len(g.Margin) == 0 {
		return nil, nil
	}
	t, err := geom.Thickness(g.Margin...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "generate.margin")
	}
	return &t, nil
}

// Encode writes the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

func resolvePath(p, dir string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}
