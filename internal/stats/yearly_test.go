package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlens/streamlens-data/internal/catalog"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		year int
	}{
		{"2021-03-15", 2021},
		{"1999-12-31", 1999},
		{"2021-03-15T10:30:00Z", 2021},
		{"2021-03-15 10:30:00", 2021},
	}
	for _, tt := range tests {
		year, err := ParseYear(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.year, year, tt.in)
	}

	for _, bad := range []string{"", "not-a-date", "15/03/2021", "2021"} {
		_, err := ParseYear(bad)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, bad)
	}
}

func TestYearCounts(t *testing.T) {
	table := &catalog.Table{Rows: []catalog.Title{
		{ReleaseDate: "2021-03-15"},
		{ReleaseDate: "2019-06-01"},
		{ReleaseDate: "2021-11-20"},
		{ReleaseDate: ""},            // skipped
		{ReleaseDate: "garbage"},     // skipped
		{ReleaseDate: "2020-01-01"},
	}}

	dist, skipped, err := YearCounts(table)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 4, dist.Total)
	assert.Equal(t, map[string]int{"2019": 1, "2020": 1, "2021": 2}, dist.Data)
	// Yearly keys are chronological, not count-ordered.
	assert.Equal(t, []string{"2019", "2020", "2021"}, dist.Keys)
}

func TestYearCountsAllBadDates(t *testing.T) {
	table := &catalog.Table{Rows: []catalog.Title{
		{ReleaseDate: ""},
		{ReleaseDate: "??"},
	}}

	dist, skipped, err := YearCounts(table)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 0, dist.Total)
	assert.Empty(t, dist.Keys)
}
