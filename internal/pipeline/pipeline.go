package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamlens/streamlens-data/internal/catalog"
	"github.com/streamlens/streamlens-data/internal/config"
	"github.com/streamlens/streamlens-data/internal/enrich"
	"github.com/streamlens/streamlens-data/internal/snapshot"
	"github.com/streamlens/streamlens-data/internal/stats"
)

// Snapshot is one aggregated (stat_type, media_type) payload awaiting
// persistence.
type Snapshot struct {
	StatType string
	Media    config.MediaKind
	Payload  any
}

// Run executes one full statistics run. A hard failure in Extract, Enrich or
// Aggregate aborts before any persistence — the latest snapshots must never
// reflect a partially available dataset. Persist is best-effort per key;
// its failures land in RunResult.Errors.
func Run(ctx context.Context, pool *pgxpool.Pool, lookup enrich.OriginLookup, cfg *config.Config, logger *slog.Logger) (RunResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	var result RunResult

	// 1. Extract
	movies, err := fetchAllTitles(ctx, pool, config.MediaMovies)
	if err != nil {
		result.Duration = time.Since(start)
		return result, fmt.Errorf("extract movies: %w", err)
	}
	series, err := fetchAllTitles(ctx, pool, config.MediaSeries)
	if err != nil {
		result.Duration = time.Since(start)
		return result, fmt.Errorf("extract series: %w", err)
	}
	result.MoviesExtracted = movies.Len()
	result.SeriesExtracted = series.Len()
	logger.Info("Extract done", "movies", movies.Len(), "series", series.Len())

	// 2. Enrich
	if lookup != nil {
		for _, e := range []struct {
			kind  config.MediaKind
			table *catalog.Table
		}{
			{config.MediaMovies, movies},
			{config.MediaSeries, series},
		} {
			res, err := enrich.Titles(ctx, e.table, e.kind, lookup,
				cfg.EnrichWorkers, cfg.EnrichTimeout, logger)
			if err != nil {
				result.Duration = time.Since(start)
				return result, fmt.Errorf("enrich %s: %w", e.kind, err)
			}
			result.TitlesEnriched += res.Enriched
			result.EnrichmentMisses += res.Missing
		}
	}

	// 3. Aggregate
	snapshots, skipped, err := Aggregate(movies, series)
	if err != nil {
		result.Duration = time.Since(start)
		return result, fmt.Errorf("aggregate: %w", err)
	}
	result.DatesSkipped = skipped
	logger.Info("Aggregate done", "snapshots", len(snapshots), "bad_dates", skipped)

	// 4. Persist — every key attempted, failures collected.
	writer := snapshot.NewWriter(cfg.SnapshotDir, pool, time.Now(), logger)
	for _, s := range snapshots {
		if err := writer.Write(ctx, s.StatType, s.Media, s.Payload); err != nil {
			result.AddErrorf("write %s/%s: %v", s.StatType, s.Media, err)
			logger.Error("Snapshot write failed",
				"stat_type", s.StatType, "media_type", s.Media, "error", err)
			continue
		}
		result.SnapshotsWritten++
	}

	result.Duration = time.Since(start)
	logger.Info("Pipeline run complete", "summary", result.Summary())
	return result, nil
}

// Aggregate computes all 10 snapshot payloads from the two title tables.
// It is pure: no I/O, order-independent over input rows. The int returned is
// the number of rows excluded from yearly counts for bad dates.
func Aggregate(movies, series *catalog.Table) ([]Snapshot, int, error) {
	tables := []struct {
		media config.MediaKind
		table *catalog.Table
	}{
		{config.MediaMovies, movies},
		{config.MediaSeries, series},
	}

	var snapshots []Snapshot
	skippedTotal := 0

	for _, t := range tables {
		countryDist, err := stats.CategoryDistribution(t.table, catalog.ColCountryName)
		if err != nil {
			return nil, 0, err
		}
		genreDist, err := stats.CategoryDistribution(t.table, catalog.ColGenre)
		if err != nil {
			return nil, 0, err
		}
		yearly, skipped, err := stats.YearCounts(t.table)
		if err != nil {
			return nil, 0, err
		}
		skippedTotal += skipped
		countryRatings, err := stats.AverageRatings(t.table, catalog.ColCountryName)
		if err != nil {
			return nil, 0, err
		}
		genreRatings, err := stats.AverageRatings(t.table, catalog.ColGenre)
		if err != nil {
			return nil, 0, err
		}

		snapshots = append(snapshots,
			Snapshot{config.StatCountryDistribution, t.media, snapshot.FromDistribution(countryDist)},
			Snapshot{config.StatGenreDistribution, t.media, snapshot.FromDistribution(genreDist)},
			Snapshot{config.StatYearlyDistribution, t.media, snapshot.FromDistribution(yearly)},
			Snapshot{config.StatCountryAvgRatings, t.media, snapshot.FromRatings(countryRatings)},
			Snapshot{config.StatGenreAvgRatings, t.media, snapshot.FromRatings(genreRatings)},
		)
	}

	return snapshots, skippedTotal, nil
}
