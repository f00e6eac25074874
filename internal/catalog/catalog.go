// Package catalog holds the in-memory title table the aggregation pipeline
// operates on, and the split/explode primitives for its multi-valued
// comma-separated text columns.
package catalog

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when an operation names a column the title
// schema does not have. It is checked before any row is processed.
var ErrColumnNotFound = errors.New("column not found")

// Title is one movie or series as extracted from the authoritative store and
// enriched with origin-country data. Genre, CountryCode and CountryName are
// legacy comma-separated lists; the splitter normalizes them per run.
type Title struct {
	TMDBID           int64
	Title            string
	ReleaseDate      string // ISO date (yyyy-mm-dd), empty when unknown
	Rating           *float64
	Genre            string
	OriginalLanguage string
	PosterPath       string
	CountryCode      string
	CountryName      string
}

// Table is a dense in-memory collection of titles. Aggregations are explicit
// grouping passes over Rows; there is no columnar math library behind it.
type Table struct {
	Rows []Title
}

// Column names addressable by the splitter and aggregators.
const (
	ColTitle            = "title"
	ColReleaseDate      = "release_date"
	ColGenre            = "genre"
	ColOriginalLanguage = "original_language"
	ColPosterPath       = "poster_path"
	ColCountryCode      = "country_code"
	ColCountryName      = "country_name"
)

type column struct {
	get func(*Title) string
	set func(*Title, string)
}

var columns = map[string]column{
	ColTitle: {
		get: func(t *Title) string { return t.Title },
		set: func(t *Title, v string) { t.Title = v },
	},
	ColReleaseDate: {
		get: func(t *Title) string { return t.ReleaseDate },
		set: func(t *Title, v string) { t.ReleaseDate = v },
	},
	ColGenre: {
		get: func(t *Title) string { return t.Genre },
		set: func(t *Title, v string) { t.Genre = v },
	},
	ColOriginalLanguage: {
		get: func(t *Title) string { return t.OriginalLanguage },
		set: func(t *Title, v string) { t.OriginalLanguage = v },
	},
	ColPosterPath: {
		get: func(t *Title) string { return t.PosterPath },
		set: func(t *Title, v string) { t.PosterPath = v },
	},
	ColCountryCode: {
		get: func(t *Title) string { return t.CountryCode },
		set: func(t *Title, v string) { t.CountryCode = v },
	},
	ColCountryName: {
		get: func(t *Title) string { return t.CountryName },
		set: func(t *Title, v string) { t.CountryName = v },
	},
}

func lookupColumn(name string) (column, error) {
	col, ok := columns[name]
	if !ok {
		return column{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return col, nil
}

// Getter returns a read accessor for the named text column, or
// ErrColumnNotFound.
func Getter(name string) (func(*Title) string, error) {
	col, err := lookupColumn(name)
	if err != nil {
		return nil, err
	}
	return col.get, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
