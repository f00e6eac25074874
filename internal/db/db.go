// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamlens/streamlens-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers all statements the API and pipeline
// layers use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// API: latest stat snapshot lookup
		"get_latest_stat": "SELECT data, created_at FROM stats WHERE stat_type = $1 AND media_type = $2",

		// API: title listings
		"list_movies": "SELECT tmdb_id, title, release_date, rating, genre, original_language, poster_path FROM movies ORDER BY tmdb_id",
		"list_series": "SELECT tmdb_id, title, first_air_date, rating, genre, original_language, poster_path FROM series ORDER BY tmdb_id",
		"movie_by_id": "SELECT tmdb_id, title, release_date, rating, genre, original_language, poster_path FROM movies WHERE tmdb_id = $1",
		"serie_by_id": "SELECT tmdb_id, title, first_air_date, rating, genre, original_language, poster_path FROM series WHERE tmdb_id = $1",

		// Pipeline: full title snapshots (series aliases first_air_date so
		// both kinds share one column layout)
		"fetch_all_movies": "SELECT tmdb_id, title, release_date, rating, genre, original_language, poster_path FROM movies",
		"fetch_all_series": "SELECT tmdb_id, title, first_air_date AS release_date, rating, genre, original_language, poster_path FROM series",

		// Pipeline: latest stat upsert
		"upsert_latest_stat": `
			INSERT INTO stats (stat_type, media_type, data, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (stat_type, media_type)
			DO UPDATE SET data = EXCLUDED.data, created_at = EXCLUDED.created_at`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
