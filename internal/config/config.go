// Package config loads the Topograph server configuration.
//
// Configuration comes from an optional TOML file; every field has a working
// default so the server runs with no file at all. Command-line flags
// override file values, which override defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/planvista/topograph/pkg/errors"
	"github.com/planvista/topograph/pkg/layout"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the full server configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `toml:"listen"`

	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Layout LayoutConfig `toml:"layout"`
}

// CacheConfig selects and configures the transform-result cache.
type CacheConfig struct {
	// Backend is one of "none", "file", or "redis".
	Backend string `toml:"backend"`

	// Dir is the file cache directory. Empty uses a "topograph" directory
	// under the user cache dir.
	Dir string `toml:"dir"`

	// TTL is how long transform results stay cached.
	TTL Duration `toml:"ttl"`

	// Redis connection settings, used when Backend is "redis".
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig configures graph persistence. An empty MongoURI selects the
// in-memory store.
type StoreConfig struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// LayoutConfig carries the layout defaults handed to the builder.
type LayoutConfig struct {
	Spacing         float64 `toml:"spacing"`
	HardwareSpacing float64 `toml:"hardware_spacing"`
	Columns         int     `toml:"columns"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Listen: ":8080",
		Cache: CacheConfig{
			Backend:   CacheFile,
			TTL:       Duration(24 * time.Hour),
			RedisAddr: "localhost:6379",
		},
		Store: StoreConfig{
			Database: "topograph",
		},
		Layout: LayoutConfig{
			Spacing:         layout.DefaultSpacing,
			HardwareSpacing: layout.DefaultHardwareSpacing,
			Columns:         layout.DefaultColumns,
		},
	}
}

// Load reads a config file over the defaults. An empty path returns the
// defaults unchanged; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (available: none, file, redis)", c.Cache.Backend)
	}
	if c.Layout.Spacing < 0 || c.Layout.HardwareSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout spacing must not be negative")
	}
	return nil
}

// Duration wraps time.Duration for TOML decoding from strings like "24h".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
