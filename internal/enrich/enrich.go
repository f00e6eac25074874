// Package enrich fills in origin-country data for extracted titles via a
// bounded-concurrency fan-out over the content API. A lookup that times out
// or fails leaves the title without country data and the run continues.
package enrich

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/streamlens/streamlens-data/internal/catalog"
	"github.com/streamlens/streamlens-data/internal/config"
	"github.com/streamlens/streamlens-data/internal/country"
)

// OriginLookup is the single content-API call enrichment needs. A title with
// no origin data returns (nil, nil).
type OriginLookup interface {
	OriginCountry(ctx context.Context, tmdbID int64, kind config.MediaKind) ([]string, error)
}

// Result counts enrichment outcomes for one table.
type Result struct {
	Enriched int
	Missing  int
}

// Titles enriches every row of the table in place. Each lookup runs under
// its own timeout; ordering does not matter since aggregation is
// order-independent. Only parent-context cancellation is returned as an
// error — individual misses degrade to "no country data".
func Titles(ctx context.Context, t *catalog.Table, kind config.MediaKind, lookup OriginLookup, workers int, timeout time.Duration, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}

	var enriched, missing atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range t.Rows {
		row := &t.Rows[i] // each goroutine owns a disjoint row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			callCtx, cancel := context.WithTimeout(gctx, timeout)
			codes, err := lookup.OriginCountry(callCtx, row.TMDBID, kind)
			cancel()

			if err != nil {
				// Parent cancellation aborts the run; a per-title timeout or
				// API failure does not.
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("Enrichment lookup failed, continuing without country data",
					"kind", kind, "tmdb_id", row.TMDBID, "error", err)
				missing.Add(1)
				return nil
			}
			if len(codes) == 0 {
				missing.Add(1)
				return nil
			}

			names := make([]string, len(codes))
			for i, code := range codes {
				names[i] = country.Name(code)
			}
			row.CountryCode = strings.Join(codes, ", ")
			row.CountryName = strings.Join(names, ", ")
			enriched.Add(1)
			return nil
		})
	}

	err := g.Wait()
	res := Result{Enriched: int(enriched.Load()), Missing: int(missing.Load())}
	logger.Info("Enrichment done",
		"kind", kind, "enriched", res.Enriched, "missing", res.Missing)
	return res, err
}
