package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/config"
	"github.com/dmitrymomot/notifykit/pkg/notification"
)

type defaultsConfig struct {
	Str  string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	Int  int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	Bool bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type successConfig struct {
	Str string `env:"TEST_STRING_SUCCESS"`
	Int int    `env:"TEST_INT_SUCCESS"`
}

type singletonConfig struct {
	Str string `env:"TEST_STRING_SINGLETON"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Str  string   `env:"TEST_FILE_STRING"`
	List []string `env:"TEST_FILE_LIST" envSeparator:","`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("TEST_STRING_DEFAULT")
		os.Unsetenv("TEST_INT_DEFAULT")
		os.Unsetenv("TEST_BOOL_DEFAULT")

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "default_value", cfg.Str)
		assert.Equal(t, 42, cfg.Int)
		assert.True(t, cfg.Bool)
	})

	t.Run("values from environment", func(t *testing.T) {
		t.Setenv("TEST_STRING_SUCCESS", "value")
		t.Setenv("TEST_INT_SUCCESS", "100")

		var cfg successConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "value", cfg.Str)
		assert.Equal(t, 100, cfg.Int)
	})

	t.Run("cached per type", func(t *testing.T) {
		t.Setenv("TEST_STRING_SINGLETON", "first")
		var first singletonConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_STRING_SINGLETON", "second")
		var second singletonConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Str)

		config.ResetCache()
		var third singletonConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Str)
	})

	t.Run("missing required", func(t *testing.T) {
		os.Unsetenv("TEST_REQUIRED_VALUE")
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *successConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("engine config", func(t *testing.T) {
		t.Setenv("NOTIFY_DEFAULT_LANGUAGE", "de")
		t.Setenv("NOTIFY_RENDER_TIMEOUT", "2s")
		config.ResetCache()

		var cfg notification.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "de", cfg.DefaultLanguage)
		assert.Equal(t, 2*time.Second, cfg.RenderTimeout)
		assert.False(t, cfg.ConcurrentRender)
		assert.Len(t, cfg.Options(), 2)
	})
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_FILE_STRING")
	os.Unsetenv("TEST_FILE_LIST")
	t.Cleanup(func() {
		os.Unsetenv("TEST_FILE_STRING")
		os.Unsetenv("TEST_FILE_LIST")
	})
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Str)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}

func TestEnvironment(t *testing.T) {
	assert.True(t, config.Environment("prod").IsProduction())
	assert.True(t, config.Production.IsProduction())
	assert.True(t, config.Environment("stage").IsStaging())
	assert.True(t, config.Environment("dev").IsDevelopment())
	assert.False(t, config.Development.IsProduction())

	os.Unsetenv("APP_ENV")
	config.ResetCache()
	var app config.App
	require.NoError(t, config.Load(&app))
	assert.Equal(t, config.Development, app.Environment)
}
