package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	KVBackendSQLite = "sqlite"
	KVBackendRedis  = "redis"
	KVBackendMemory = "memory"

	SnapshotBackendRedis    = "redis"
	SnapshotBackendPostgres = "postgres"
)

type Config struct {
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// local device storage
	DataDir   string `toml:"data_dir"`
	KVBackend string `toml:"kv_backend"`
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// cloud sync client
	SyncEnabled    bool   `toml:"sync_enabled"`
	SyncEndpoint   string `toml:"sync_endpoint"`
	SyncDebounceMs int    `toml:"sync_debounce_ms"`

	// sync server
	Host                  string   `toml:"host"`
	Port                  int      `toml:"port"`
	PrometheusMetricsHost string   `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string   `toml:"prometheus_metrics_port"`
	SnapshotBackend       string   `toml:"snapshot_backend"`
	SnapshotCacheSizeMB   int      `toml:"snapshot_cache_size_mb"`
	SyncRateLimitPerMin   int      `toml:"sync_rate_limit_per_min"`
	CorsAllowedOrigins    []string `toml:"cors_allowed_origins"`
	PostgresHost          string   `toml:"postgres_host"`
	PostgresPort          string   `toml:"postgres_port"`
	PostgresDBName        string   `toml:"postgres_db_name"`

	// secrets, only ever read from env
	FallbackAPIKey string `toml:"-"`
	RedisPassword  string `toml:"-"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config at path and returns the section for env.
// A missing file is not an error: defaults are used instead.
func Load(env, path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = &Config{}
	} else if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg = &Config{}
	} else {
		var t Toml
		if _, err := toml.DecodeFile(path, &t); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
		cfg, err = t.Get(env)
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			return nil, fmt.Errorf("config section for env [%s] missing in %s", env, path)
		}
	}

	if cfg.Environment == "" {
		cfg.Environment = env
	}

	applyEnvOverrides(cfg)
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOOOVE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("MOOOVE_KV_BACKEND"); v != "" {
		cfg.KVBackend = v
	}
	if v := os.Getenv("MOOOVE_SYNC_ENDPOINT"); v != "" {
		cfg.SyncEndpoint = v
		cfg.SyncEnabled = true
	}
	if v := os.Getenv("MOOOVE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MOOOVE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	cfg.FallbackAPIKey = os.Getenv("MOOOVE_FALLBACK_API_KEY")
	cfg.RedisPassword = os.Getenv("MOOOVE_REDIS_PASS")
}

func (c *Config) setDefaults() error {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.KVBackend == "" {
		c.KVBackend = KVBackendSQLite
	}
	if c.DataDir == "" {
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve user config dir: %w", err)
		}
		c.DataDir = filepath.Join(userConfigDir, "mooove")
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.SyncDebounceMs <= 0 {
		c.SyncDebounceMs = 2000
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9010
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "9011"
	}
	if c.SnapshotBackend == "" {
		c.SnapshotBackend = SnapshotBackendRedis
	}
	if c.SnapshotCacheSizeMB <= 0 {
		c.SnapshotCacheSizeMB = 16
	}
	if c.SyncRateLimitPerMin <= 0 {
		c.SyncRateLimitPerMin = 60
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.KVBackend {
	case KVBackendSQLite, KVBackendRedis, KVBackendMemory:
	default:
		return fmt.Errorf("unknown kv backend: %s", c.KVBackend)
	}
	switch c.SnapshotBackend {
	case SnapshotBackendRedis, SnapshotBackendPostgres:
	default:
		return fmt.Errorf("unknown snapshot backend: %s", c.SnapshotBackend)
	}
	if c.SyncEnabled && c.SyncEndpoint == "" {
		return errors.New("sync enabled but sync_endpoint not set")
	}
	return nil
}

func (c *Config) SyncDebounce() time.Duration {
	return time.Duration(c.SyncDebounceMs) * time.Millisecond
}

func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "mooove.db")
}
