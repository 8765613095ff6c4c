package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovativeGem/userkit/pkg/config"
)

type clientConfig struct {
	BaseURL  string `env:"TEST_API_URL" envDefault:"http://localhost:8080"`
	PageSize int    `env:"TEST_PAGE_SIZE" envDefault:"10"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_API_URL", "https://api.example.com")
	t.Setenv("TEST_PAGE_SIZE", "25")

	var cfg clientConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()

	var cfg clientConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_API_URL", "https://first.example.com")

	var first clientConfig
	require.NoError(t, config.Load(&first))

	// The environment changes, but the cached value is served.
	t.Setenv("TEST_API_URL", "https://second.example.com")

	var second clientConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "https://first.example.com", second.BaseURL)

	// Reset forces a re-read.
	config.Reset()
	var third clientConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "https://second.example.com", third.BaseURL)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[clientConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	config.Reset()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
