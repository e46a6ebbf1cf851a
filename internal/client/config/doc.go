// Package config loads runtime configuration for the techblog client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. TECHBLOG_* environment variables (see parseEnv), read through viper.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite session database
//
// # JSON schema
//
// Durations accept strings like "500ms" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://blog.example.com/api",
//	  "request_timeout": "10s",
//	  "search_debounce": "500ms",
//	  "page_size": 12,
//	  "storage_backend": "sqlite",
//	  "storage_path": "techblog.db"
//	}
package config
