package config

import (
	"github.com/spf13/viper"
)

const envPrefix = "TECHBLOG"

// parseEnv overlays cfg with TECHBLOG_* environment variables, e.g.
// TECHBLOG_API_BASE_URL or TECHBLOG_SEARCH_DEBOUNCE=300ms.
// TECHBLOG_STORAGE_SECRET is only read from the environment.
func parseEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	stringKeys := map[string]*string{
		"api_base_url":    &cfg.APIBaseURL,
		"storage_backend": &cfg.StorageBackend,
		"storage_path":    &cfg.StoragePath,
		"redis_addr":      &cfg.RedisAddr,
		"redis_key":       &cfg.RedisKey,
		"storage_secret":  &cfg.StorageSecret,
		"log_level":       &cfg.LogLevel,
		"log_format":      &cfg.LogFormat,
	}
	for key, dst := range stringKeys {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	if v.IsSet("request_timeout") {
		cfg.RequestTimeout = v.GetDuration("request_timeout")
	}
	if v.IsSet("search_debounce") {
		cfg.SearchDebounce = v.GetDuration("search_debounce")
	}
	if v.IsSet("page_size") {
		cfg.PageSize = v.GetInt("page_size")
	}
	if v.IsSet("admin_page_size") {
		cfg.AdminPageSize = v.GetInt("admin_page_size")
	}
}
