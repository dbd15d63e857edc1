package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brkit/pkg/config"
)

type envFileConfig struct {
	Locale  string   `env:"BRKIT_TEST_LOCALE"`
	Offset  int      `env:"BRKIT_TEST_OFFSET"`
	Regions []string `env:"BRKIT_TEST_REGIONS" envSeparator:","`
	Quoted  string   `env:"BRKIT_TEST_QUOTED"`
	Empty   string   `env:"BRKIT_TEST_EMPTY"`
	Only    string   `env:"BRKIT_TEST_ONLY_OVERRIDE"`
}

func unsetEnvFileVars() {
	for _, key := range []string{
		"BRKIT_TEST_LOCALE",
		"BRKIT_TEST_OFFSET",
		"BRKIT_TEST_REGIONS",
		"BRKIT_TEST_QUOTED",
		"BRKIT_TEST_EMPTY",
		"BRKIT_TEST_ONLY_OVERRIDE",
	} {
		os.Unsetenv(key)
	}
	config.ResetCache()
}

func TestLoadEnv_SingleFile(t *testing.T) {
	unsetEnvFileVars()
	t.Cleanup(unsetEnvFileVars)

	require.NoError(t, config.LoadEnv("testdata/.env.base"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "ingles", cfg.Locale)
	assert.Equal(t, 0, cfg.Offset)
	assert.Equal(t, []string{"BR", "PT", "US"}, cfg.Regions)
	assert.Equal(t, "pt-BR amounts", cfg.Quoted)
	assert.Empty(t, cfg.Empty)
	assert.Empty(t, cfg.Only)
}

func TestLoadEnv_LaterFilesOverride(t *testing.T) {
	unsetEnvFileVars()
	t.Cleanup(unsetEnvFileVars)

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "frances", cfg.Locale)
	assert.Equal(t, 0, cfg.Offset)
	assert.Equal(t, "present", cfg.Only)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/missing.env")
	})
	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/.env.override")
	})
	os.Unsetenv("BRKIT_TEST_LOCALE")
	os.Unsetenv("BRKIT_TEST_ONLY_OVERRIDE")
}

func TestLoadEnv_DefaultFileIsOptional(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, config.LoadEnv())

	require.NoError(t, os.WriteFile(".env", []byte("BRKIT_TEST_DEFAULT_FILE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BRKIT_TEST_DEFAULT_FILE") })

	require.NoError(t, config.LoadEnv())
	assert.Equal(t, "loaded", os.Getenv("BRKIT_TEST_DEFAULT_FILE"))
}
