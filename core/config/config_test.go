package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webroot/core/config"
	"github.com/dmitrymomot/webroot/core/static"
)

type serviceConfig struct {
	Name    string        `env:"TEST_SERVICE_NAME" envDefault:"webroot"`
	Timeout time.Duration `env:"TEST_SERVICE_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

// Tests in this file mutate the process environment and the package cache,
// so they do not run in parallel.

func TestLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Run("defaults", func(t *testing.T) {
		config.Reset()

		var cfg serviceConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "webroot", cfg.Name)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_SERVICE_NAME", "files")
		t.Setenv("TEST_SERVICE_TIMEOUT", "1m")

		var cfg serviceConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "files", cfg.Name)
		assert.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_SERVICE_NAME", "first")

		var first serviceConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_SERVICE_NAME", "second")

		var second serviceConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_REQUIRED_SECRET")
	})

	t.Run("must load panics", func(t *testing.T) {
		config.Reset()

		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoad_StaticConfig(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("STATIC_ROOT", "/srv/www")
	t.Setenv("STATIC_ENCODINGS", "br,gzip")

	var cfg static.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "/srv/www", cfg.Root)
	assert.Equal(t, static.DefaultIndexFile, cfg.IndexFile)
	assert.Equal(t, static.DefaultCacheControl, cfg.CacheControl)
	assert.Equal(t, []string{"br", "gzip"}, cfg.Encodings)
}
