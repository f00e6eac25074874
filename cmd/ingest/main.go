// Command ingest is the Streamlens data ingestion CLI.
//
// Usage:
//
//	streamlens-ingest extract
//	streamlens-ingest extract --pages 10
//	streamlens-ingest stats
//	streamlens-ingest stats --no-enrich
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/streamlens/streamlens-data/internal/config"
	"github.com/streamlens/streamlens-data/internal/db"
	"github.com/streamlens/streamlens-data/internal/docstore"
	"github.com/streamlens/streamlens-data/internal/enrich"
	"github.com/streamlens/streamlens-data/internal/ingest"
	"github.com/streamlens/streamlens-data/internal/pipeline"
	"github.com/streamlens/streamlens-data/internal/provider/tmdb"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "streamlens-ingest",
		Short: "Streamlens catalog ingestion and statistics CLI",
	}

	root.AddCommand(extractCmd())
	root.AddCommand(statsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// extract command
// --------------------------------------------------------------------------

func extractCmd() *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract catalog titles from TMDB into Postgres (and MongoDB if configured)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDB(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if cfg.TMDBAPIKey == "" {
					return fmt.Errorf("TMDB_API_KEY is required")
				}
				if pages > 0 {
					cfg.ExtractPages = pages
				}

				client := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey, 4, logger)

				var docs *docstore.Store
				if cfg.MongoURI != "" {
					var err error
					docs, err = docstore.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
					if err != nil {
						return fmt.Errorf("connect document store: %w", err)
					}
					defer docs.Close(context.Background())
					logger.Info("Document store connected", "db", cfg.MongoDBName)
				} else {
					logger.Info("Document store disabled (no MONGO_URI)")
				}

				start := time.Now()
				result := ingest.Run(ctx, pool.Pool, docs, client, cfg, logger)
				logger.Info("Extract finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				if len(result.Errors) > 0 {
					for _, e := range result.Errors {
						logger.Error("extract error", "error", e)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 0, "Discover pages per media kind (0 = configured default)")
	return cmd
}

// --------------------------------------------------------------------------
// stats command
// --------------------------------------------------------------------------

func statsCmd() *cobra.Command {
	var noEnrich bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Recompute all statistics snapshots and write them to the sinks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDB(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				var lookup enrich.OriginLookup
				if !noEnrich && cfg.TMDBAPIKey != "" {
					lookup = tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey, 4, logger)
				} else {
					logger.Info("Country enrichment disabled",
						"no_enrich_flag", noEnrich, "api_key_set", cfg.TMDBAPIKey != "")
				}

				result, err := pipeline.Run(ctx, pool.Pool, lookup, cfg, logger)
				if len(result.Errors) > 0 {
					for _, e := range result.Errors {
						logger.Error("stats error", "error", e)
					}
				}
				if err != nil {
					return err
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&noEnrich, "no-enrich", false, "Skip origin-country enrichment")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runWithDB handles config loading, DB connection, and context cancellation.
func runWithDB(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
