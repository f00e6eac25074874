// Package ingest extracts the streaming catalog from the content API and
// loads it into the relational and document stores.
package ingest

import "fmt"

// Result tracks counts and errors from an ingestion run.
type Result struct {
	MoviesLoaded int
	SeriesLoaded int
	DocsUpserted int
	Errors       []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the ingestion run.
func (r *Result) Summary() string {
	return fmt.Sprintf("movies=%d series=%d docs=%d errors=%d",
		r.MoviesLoaded, r.SeriesLoaded, r.DocsUpserted, len(r.Errors))
}
