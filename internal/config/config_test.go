package config

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(contents), 0o644))
	return dir
}

func TestMustLoad(t *testing.T) {
	t.Run("reads all fields", func(t *testing.T) {
		dir := writeConfig(t, `
port: "9090"
store_base_url: "https://dummyjson.com"
default_limit: 20
log_level: "debug"
log_json: true
allow_origins:
  - "http://localhost:3000"
`)
		cfg := MustLoad(dir)
		assert.Equal(t, "9090", cfg.Public.Port)
		assert.Equal(t, "https://dummyjson.com", cfg.Public.StoreBaseURL)
		assert.Equal(t, 20, cfg.Public.DefaultLimit)
		assert.Equal(t, "debug", cfg.Public.LogLevel)
		assert.True(t, cfg.Public.LogJSON)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.AllowOrigins)
	})

	t.Run("fills defaults", func(t *testing.T) {
		dir := writeConfig(t, `store_base_url: "https://dummyjson.com"`)
		cfg := MustLoad(dir)
		assert.Equal(t, "8081", cfg.Public.Port)
		assert.Equal(t, 10, cfg.Public.DefaultLimit)
	})

	t.Run("panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(t.TempDir()) })
	})
}
