package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the tool configuration.
const (
	cacheBackendFile   = "file"
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
	cacheBackendNone   = "none"
)

// Config is the tool-level configuration, read from
// ~/.config/diagram-builder/config.toml (or --config). All fields are
// optional; the zero value means file-backed caching and an in-memory
// store.
type Config struct {
	Cache CacheConfig `toml:"cache"`
	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// CacheConfig selects and locates the build cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"` // file, memory, redis, none
	Dir     string `toml:"dir"`     // file backend only
}

// RedisConfig holds connection settings for the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds connection settings for the graph store.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// validBackends is the set of accepted cache backend names.
var validBackends = map[string]bool{
	"":                 true,
	cacheBackendFile:   true,
	cacheBackendMemory: true,
	cacheBackendRedis:  true,
	cacheBackendNone:   true,
}

// loadConfig reads the configuration file at path, or the default location
// when path is empty. A missing file is not an error; the zero config is
// returned.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if !validBackends[cfg.Cache.Backend] {
		return Config{}, fmt.Errorf("config %s: unknown cache backend %q", path, cfg.Cache.Backend)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config location for the tool.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
