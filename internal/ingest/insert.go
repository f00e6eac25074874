package ingest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamlens/streamlens-data/internal/config"
	"github.com/streamlens/streamlens-data/internal/provider/tmdb"
)

// insertTitle writes one extracted title into its kind's table. Existing
// rows win: the statistics pipeline treats the stored catalog as the
// authoritative snapshot, so re-extraction never rewrites history.
func insertTitle(ctx context.Context, pool *pgxpool.Pool, kind config.MediaKind, t *tmdb.RawTitle, genre string) error {
	table := config.MoviesTable
	dateColumn := "release_date"
	if kind == config.MediaSeries {
		table = config.SeriesTable
		dateColumn = "first_air_date"
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO `+table+` (
			title, `+dateColumn+`, rating, genre, tmdb_id,
			original_language, poster_path
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (tmdb_id) DO NOTHING`,
		t.DisplayTitle(), nilEmpty(t.Date()), t.VoteAverage, genre,
		t.ID, nilEmpty(t.OriginalLanguage), nilEmpty(t.PosterPath),
	)
	return err
}

// nilEmpty returns nil for empty strings (maps to SQL NULL).
func nilEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
