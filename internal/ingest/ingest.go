package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamlens/streamlens-data/internal/config"
	"github.com/streamlens/streamlens-data/internal/docstore"
	"github.com/streamlens/streamlens-data/internal/provider/tmdb"
)

// Run extracts both catalog kinds and loads them into Postgres and, when a
// document store is configured, MongoDB. Extraction failure for a kind is
// fatal for that kind (a partial catalog page set is never loaded); load
// failures are collected per title.
func Run(ctx context.Context, pool *pgxpool.Pool, docs *docstore.Store, client *tmdb.Client, cfg *config.Config, logger *slog.Logger) Result {
	var result Result

	for _, kind := range config.MediaKinds {
		titles, err := client.DiscoverTitles(ctx, kind,
			cfg.TMDBWatchProvider, cfg.TMDBWatchRegion, cfg.ExtractPages)
		if err != nil {
			result.AddErrorf("extract %s: %v", kind, err)
			continue
		}
		logger.Info("Extraction complete", "kind", kind, "titles", len(titles))

		genres, err := client.GenreNames(ctx, kind)
		if err != nil {
			result.AddErrorf("fetch %s genres: %v", kind, err)
			continue
		}

		loaded := loadPostgres(ctx, pool, kind, titles, genres, &result, logger)
		if kind == config.MediaMovies {
			result.MoviesLoaded += loaded
		} else {
			result.SeriesLoaded += loaded
		}

		if docs != nil {
			loadMongo(ctx, docs, kind, titles, &result, logger)
		}
	}

	logger.Info("Ingestion complete", "summary", result.Summary())
	return result
}

// loadPostgres inserts titles into the relational store, skipping ones
// already present (insert-ignore on tmdb_id).
func loadPostgres(ctx context.Context, pool *pgxpool.Pool, kind config.MediaKind, titles []tmdb.RawTitle, genres map[int]string, result *Result, logger *slog.Logger) int {
	loaded := 0
	for i := range titles {
		t := &titles[i]
		if err := insertTitle(ctx, pool, kind, t, genreList(t.GenreIDs, genres)); err != nil {
			result.AddErrorf("insert %s %d: %v", kind, t.ID, err)
			continue
		}
		loaded++
	}
	logger.Info("Relational load done", "kind", kind, "loaded", loaded)
	return loaded
}

// loadMongo bulk-upserts the raw upstream documents keyed by tmdb_id.
func loadMongo(ctx context.Context, docs *docstore.Store, kind config.MediaKind, titles []tmdb.RawTitle, result *Result, logger *slog.Logger) {
	batch := make([]docstore.RawDocument, 0, len(titles))
	for i := range titles {
		t := &titles[i]
		var body map[string]any
		if err := json.Unmarshal(t.Raw, &body); err != nil {
			result.AddErrorf("decode raw %s %d: %v", kind, t.ID, err)
			continue
		}
		batch = append(batch, docstore.RawDocument{TMDBID: t.ID, Body: body})
	}

	n, err := docs.BulkUpsert(ctx, string(kind), batch)
	if err != nil {
		result.AddErrorf("document load %s: %v", kind, err)
		return
	}
	result.DocsUpserted += n
	logger.Info("Document load done", "kind", kind, "docs", len(batch))
}

// genreList resolves genre ids to a comma-separated name list, skipping ids
// the genre table does not know.
func genreList(ids []int, genres map[int]string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := genres[id]; ok && name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}
