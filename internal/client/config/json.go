package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/techblog/internal/flagx"
	"github.com/dmitrijs2005/techblog/internal/timex"
)

// JsonConfig is the on-disk DTO. Zero values mean "not set" and leave the
// current Config value alone.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SearchDebounce timex.Duration `json:"search_debounce"`
	PageSize       int            `json:"page_size"`
	AdminPageSize  int            `json:"admin_page_size"`
	StorageBackend string         `json:"storage_backend"`
	StoragePath    string         `json:"storage_path"`
	RedisAddr      string         `json:"redis_addr"`
	RedisKey       string         `json:"redis_key"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.StoragePath, jc.StoragePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisKey, jc.RedisKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)

	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.AdminPageSize != 0 {
		cfg.AdminPageSize = jc.AdminPageSize
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
