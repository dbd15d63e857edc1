package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brkit/pkg/config"
)

type defaultsConfig struct {
	Locale string `env:"BRKIT_CFG_DEFAULT_LOCALE" envDefault:"portugues_brasil"`
	Offset int    `env:"BRKIT_CFG_DEFAULT_OFFSET" envDefault:"3"`
	Strict bool   `env:"BRKIT_CFG_DEFAULT_STRICT" envDefault:"true"`
}

type successConfig struct {
	Locale string `env:"BRKIT_CFG_SUCCESS_LOCALE" envDefault:"portugues_brasil"`
	Offset int    `env:"BRKIT_CFG_SUCCESS_OFFSET" envDefault:"3"`
}

type cachedConfig struct {
	Locale string `env:"BRKIT_CFG_CACHED_LOCALE"`
}

type concurrentConfig struct {
	Region string `env:"BRKIT_CFG_CONCURRENT_REGION" envDefault:"BR"`
}

type requiredConfig struct {
	Timezone string `env:"BRKIT_CFG_REQUIRED_TZ,required"`
}

type badNumberConfig struct {
	Offset int `env:"BRKIT_CFG_BAD_OFFSET"`
}

func TestLoad_Success(t *testing.T) {
	config.ResetCache()
	t.Setenv("BRKIT_CFG_SUCCESS_LOCALE", "ingles")
	t.Setenv("BRKIT_CFG_SUCCESS_OFFSET", "0")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "ingles", cfg.Locale)
	assert.Equal(t, 0, cfg.Offset)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("BRKIT_CFG_DEFAULT_LOCALE")
	os.Unsetenv("BRKIT_CFG_DEFAULT_OFFSET")
	os.Unsetenv("BRKIT_CFG_DEFAULT_STRICT")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "portugues_brasil", cfg.Locale)
	assert.Equal(t, 3, cfg.Offset)
	assert.True(t, cfg.Strict)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.ResetCache()
	t.Setenv("BRKIT_CFG_CACHED_LOCALE", "chines")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("BRKIT_CFG_CACHED_LOCALE", "frances")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "chines", second.Locale)

	var reloaded cachedConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "frances", reloaded.Locale)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("BRKIT_CFG_REQUIRED_TZ")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("BRKIT_CFG_REQUIRED_TZ", "America/Sao_Paulo")

	var retried requiredConfig
	require.NoError(t, config.Load(&retried))
	assert.Equal(t, "America/Sao_Paulo", retried.Timezone)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("BRKIT_CFG_BAD_OFFSET", "three")

	var cfg badNumberConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReloadConfig(cfg), config.ErrNilPointer)
}

func TestLoad_Concurrent(t *testing.T) {
	config.ResetCache()
	t.Setenv("BRKIT_CFG_CONCURRENT_REGION", "PT")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var cfg concurrentConfig
			if err := config.Load(&cfg); err == nil {
				results[i] = cfg.Region
			}
		}(i)
	}
	wg.Wait()

	for _, region := range results {
		assert.Equal(t, "PT", region)
	}
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("BRKIT_CFG_REQUIRED_TZ")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
