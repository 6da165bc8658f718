package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "eazywed", cfg.DatabaseName)
	assert.Equal(t, 5, cfg.DefaultPageLimit)
	assert.Equal(t, 50, cfg.MaxPageLimit)
	assert.Equal(t, 1000, cfg.LogBodyLimit)
	assert.Equal(t, 5*time.Minute, cfg.StatsCacheTTL)
	assert.Equal(t, "@hourly", cfg.CompletionSweep)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("DEFAULT_PAGE_LIMIT", "10")
	t.Setenv("ENV", "production")

	v := viper.New()
	v.AutomaticEnv()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, 10, cfg.DefaultPageLimit)
	assert.Equal(t, "production", cfg.Env)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSOrigins: " http://localhost:5173, ,https://eazywed.pk "}
	assert.Equal(t, []string{"http://localhost:5173", "https://eazywed.pk"}, cfg.AllowedOrigins())

	assert.Empty(t, Config{}.AllowedOrigins())
}
