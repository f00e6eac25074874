// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Media registry
// --------------------------------------------------------------------------

// MediaKind identifies one of the two catalog kinds the service tracks.
type MediaKind string

const (
	MediaMovies MediaKind = "movies"
	MediaSeries MediaKind = "series"
)

// MediaKinds lists all kinds in canonical order.
var MediaKinds = []MediaKind{MediaMovies, MediaSeries}

// Valid reports whether the kind is one the service knows about.
func (m MediaKind) Valid() bool {
	return m == MediaMovies || m == MediaSeries
}

// Endpoint returns the content-API path segment for the kind
// ("movie" for movies, "tv" for series).
func (m MediaKind) Endpoint() string {
	if m == MediaSeries {
		return "tv"
	}
	return "movie"
}

// --------------------------------------------------------------------------
// Stat registry
// --------------------------------------------------------------------------

const (
	StatCountryDistribution = "country_distribution"
	StatGenreDistribution   = "genre_distribution"
	StatYearlyDistribution  = "yearly_distribution"
	StatCountryAvgRatings   = "country_avg_ratings"
	StatGenreAvgRatings     = "genre_avg_ratings"
)

// StatTypes lists every stat type in canonical order. Combined with
// MediaKinds this yields the 10 snapshot keys a pipeline run produces.
var StatTypes = []string{
	StatCountryDistribution,
	StatGenreDistribution,
	StatYearlyDistribution,
	StatCountryAvgRatings,
	StatGenreAvgRatings,
}

// ValidStatType reports whether s is a known stat type.
func ValidStatType(s string) bool {
	for _, t := range StatTypes {
		if t == s {
			return true
		}
	}
	return false
}

// --------------------------------------------------------------------------
// Table names — single source of truth, matches schema.sql
// --------------------------------------------------------------------------

const (
	MoviesTable = "movies"
	SeriesTable = "series"
	StatsTable  = "stats"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Document store
	MongoURI    string
	MongoDBName string

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Content API (TMDB)
	TMDBAPIKey        string
	TMDBBaseURL       string
	TMDBWatchProvider int // streaming provider filter (8 = Netflix)
	TMDBWatchRegion   string
	ExtractPages      int

	// Enrichment
	EnrichWorkers int
	EnrichTimeout time.Duration

	// Snapshot sinks
	SnapshotDir string

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", envOr("POSTGRES_URL", ""))
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or POSTGRES_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		MongoURI:    envOr("MONGO_URI", ""),
		MongoDBName: envOr("MONGO_DB_NAME", "streamlens"),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		TMDBAPIKey:        envOr("TMDB_API_KEY", ""),
		TMDBBaseURL:       envOr("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBWatchProvider: envInt("TMDB_WATCH_PROVIDER", 8),
		TMDBWatchRegion:   envOr("TMDB_WATCH_REGION", "FR"),
		ExtractPages:      envInt("EXTRACT_PAGES", 5),

		EnrichWorkers: envInt("ENRICH_WORKERS", 4),
		EnrichTimeout: time.Duration(envInt("ENRICH_TIMEOUT_SECONDS", 10)) * time.Second,

		SnapshotDir: envOr("SNAPSHOT_DIR", "db/api"),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
