package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/streamlens")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/streamlens", cfg.DatabaseURL)
	assert.Equal(t, 8000, cfg.APIPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8, cfg.TMDBWatchProvider)
	assert.Equal(t, "FR", cfg.TMDBWatchRegion)
	assert.Equal(t, 5, cfg.ExtractPages)
	assert.Equal(t, 4, cfg.EnrichWorkers)
	assert.Equal(t, 10*time.Second, cfg.EnrichTimeout)
	assert.Equal(t, "db/api", cfg.SnapshotDir)
	assert.True(t, cfg.CacheEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/streamlens")
	t.Setenv("API_PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("EXTRACT_PAGES", "12")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.APIPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 12, cfg.ExtractPages)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestMediaKind(t *testing.T) {
	assert.True(t, MediaMovies.Valid())
	assert.True(t, MediaSeries.Valid())
	assert.False(t, MediaKind("films").Valid())

	assert.Equal(t, "movie", MediaMovies.Endpoint())
	assert.Equal(t, "tv", MediaSeries.Endpoint())
}

func TestValidStatType(t *testing.T) {
	for _, s := range StatTypes {
		assert.True(t, ValidStatType(s), s)
	}
	assert.False(t, ValidStatType("plot_twists"))
	assert.False(t, ValidStatType(""))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	t.Setenv("X_INT", "42")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_BAD_INT", "nope")

	assert.Equal(t, "value", envOr("X_STR", "fallback"))
	assert.Equal(t, "fallback", envOr("X_UNSET", "fallback"))
	assert.Equal(t, 42, envInt("X_INT", 1))
	assert.Equal(t, 1, envInt("X_BAD_INT", 1))
	assert.True(t, envBool("X_BOOL", false))
	assert.False(t, envBool("X_UNSET", false))
}
