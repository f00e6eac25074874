// Package pipeline sequences the statistics run: Extract → Enrich →
// Aggregate → Persist. Each invocation recomputes every snapshot from the
// full current catalog; there is no merge with prior aggregate state.
package pipeline

import (
	"fmt"
	"time"
)

// RunResult tracks counts and errors from one pipeline run. Per-key write
// failures are collected here rather than failing fast, so operators see the
// full picture of a run.
type RunResult struct {
	MoviesExtracted  int
	SeriesExtracted  int
	TitlesEnriched   int
	EnrichmentMisses int
	DatesSkipped     int
	SnapshotsWritten int
	Duration         time.Duration
	Errors           []string
}

// AddErrorf records a formatted error message.
func (r *RunResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *RunResult) Summary() string {
	return fmt.Sprintf(
		"movies=%d series=%d enriched=%d misses=%d bad_dates=%d snapshots=%d errors=%d dur=%s",
		r.MoviesExtracted, r.SeriesExtracted, r.TitlesEnriched,
		r.EnrichmentMisses, r.DatesSkipped, r.SnapshotsWritten,
		len(r.Errors), r.Duration.Round(time.Second))
}
