package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streamlens/streamlens-data/internal/catalog"
	"github.com/streamlens/streamlens-data/internal/config"
)

// fetchAllTitles loads the full current snapshot of one catalog kind from
// the authoritative relational store. The series statement aliases
// first_air_date to release_date so both kinds share one column layout.
func fetchAllTitles(ctx context.Context, pool *pgxpool.Pool, kind config.MediaKind) (*catalog.Table, error) {
	stmt := "fetch_all_movies"
	if kind == config.MediaSeries {
		stmt = "fetch_all_series"
	}

	rows, err := pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", kind, err)
	}
	defer rows.Close()

	table := &catalog.Table{}
	for rows.Next() {
		var (
			t        catalog.Title
			released *time.Time
			genre    *string
			language *string
			poster   *string
		)
		if err := rows.Scan(&t.TMDBID, &t.Title, &released, &t.Rating,
			&genre, &language, &poster); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", kind, err)
		}
		if released != nil {
			t.ReleaseDate = released.Format("2006-01-02")
		}
		if genre != nil {
			t.Genre = *genre
		}
		if language != nil {
			t.OriginalLanguage = *language
		}
		if poster != nil {
			t.PosterPath = *poster
		}
		table.Rows = append(table.Rows, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", kind, err)
	}
	return table, nil
}
