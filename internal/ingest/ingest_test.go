package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreList(t *testing.T) {
	genres := map[int]string{28: "Action", 35: "Comédie", 18: "Drame"}

	assert.Equal(t, "Action, Comédie", genreList([]int{28, 35}, genres))
	assert.Equal(t, "Action", genreList([]int{28, 999}, genres)) // unknown id skipped
	assert.Equal(t, "", genreList(nil, genres))
	assert.Equal(t, "", genreList([]int{999}, genres))
}

func TestResultSummary(t *testing.T) {
	var r Result
	r.MoviesLoaded = 80
	r.SeriesLoaded = 95
	r.DocsUpserted = 175
	r.AddErrorf("insert movies %d: %s", 42, "duplicate")

	assert.Equal(t, "movies=80 series=95 docs=175 errors=1", r.Summary())
	assert.Equal(t, []string{"insert movies 42: duplicate"}, r.Errors)
}
