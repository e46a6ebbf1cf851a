package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_base_url":    "https://blog.example.com/api",
		"request_timeout": "15s",
		"search_debounce": "300ms",
		"admin_page_size": 20,
		"storage_backend": "redis",
		"redis_key":       "blog:s",
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "https://blog.example.com/api", cfg.APIBaseURL)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
		assert.Equal(t, 20, cfg.AdminPageSize)
		assert.Equal(t, 12, cfg.PageSize, "absent keys keep defaults")
		assert.Equal(t, StorageRedis, cfg.StorageBackend)
		assert.Equal(t, "blog:s", cfg.RedisKey)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://keep"}
		parseJson(cfg, []string{"latest"})
		assert.Equal(t, "http://keep", cfg.APIBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
