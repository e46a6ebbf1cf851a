package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Storage backends for durable session data.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds runtime settings for the techblog client.
//
// Units: RequestTimeout and SearchDebounce are time.Duration values.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SearchDebounce time.Duration
	PageSize       int
	AdminPageSize  int

	StorageBackend string
	StoragePath    string
	RedisAddr      string
	RedisKey       string
	// StorageSecret, when set, encrypts stored session data.
	StorageSecret string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.SearchDebounce = 500 * time.Millisecond
	c.PageSize = 12
	c.AdminPageSize = 10
	c.StorageBackend = StorageSQLite
	c.StoragePath = "techblog.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisKey = "techblog:session"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate rejects settings the client cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.APIBaseURL) == "" {
		errs = append(errs, errors.New("api base url is empty"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}
	if c.SearchDebounce < 0 {
		errs = append(errs, fmt.Errorf("search debounce must not be negative, got %s", c.SearchDebounce))
	}
	if c.PageSize <= 0 || c.AdminPageSize <= 0 {
		errs = append(errs, errors.New("page sizes must be positive"))
	}
	switch c.StorageBackend {
	case StorageSQLite:
		if c.StoragePath == "" {
			errs = append(errs, errors.New("storage path is empty"))
		}
	case StorageRedis:
		if c.RedisAddr == "" || c.RedisKey == "" {
			errs = append(errs, errors.New("redis address and key are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.StorageBackend))
	}
	return errors.Join(errs...)
}

// LoadConfig constructs a Config from os.Args and the environment.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then overlays the JSON file (if -c/-config is
// given), TECHBLOG_* environment variables and finally command-line flags.
// Later sources take precedence over earlier ones.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
