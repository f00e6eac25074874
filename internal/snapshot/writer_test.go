package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlens/streamlens-data/internal/config"
)

func testPayload() DistributionPayload {
	return DistributionPayload{
		Data:  map[string]int{"Action": 3, "Comedy": 1},
		Total: 4,
		Count: 2,
	}
}

func TestWriterArchiveAndLatest(t *testing.T) {
	base := t.TempDir()
	runDate := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	w := NewWriter(base, nil, runDate, nil)

	err := w.Write(context.Background(), config.StatGenreDistribution, config.MediaMovies, testPayload())
	require.NoError(t, err)

	archive := filepath.Join(base, "2026", "03_2026", "genre_distribution_movies_15_03_26.json")
	latest := filepath.Join(base, "latest", "genre_distribution_movies_latest.json")

	for _, path := range []string{archive, latest} {
		body, err := os.ReadFile(path)
		require.NoError(t, err, path)

		var got DistributionPayload
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, testPayload(), got)
	}
}

func TestWriterArchiveCollision(t *testing.T) {
	base := t.TempDir()
	runDate := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	w := NewWriter(base, nil, runDate, nil)
	require.NoError(t, w.Write(context.Background(), config.StatYearlyDistribution, config.MediaSeries, testPayload()))

	// Same key, same run date: archive write collides, latest still advances.
	w2 := NewWriter(base, nil, runDate, nil)
	err := w2.Write(context.Background(), config.StatYearlyDistribution, config.MediaSeries, testPayload())
	require.ErrorIs(t, err, ErrArchiveCollision)

	latest := filepath.Join(base, "latest", "yearly_distribution_series_latest.json")
	_, statErr := os.Stat(latest)
	assert.NoError(t, statErr)
}

func TestWriterTwoRunDates(t *testing.T) {
	base := t.TempDir()
	ctx := context.Background()

	first := NewWriter(base, nil, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, first.Write(ctx, config.StatCountryDistribution, config.MediaMovies, testPayload()))

	second := NewWriter(base, nil, time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, second.Write(ctx, config.StatCountryDistribution, config.MediaMovies, testPayload()))

	// Both dated files exist side by side; latest holds only one copy.
	assert.FileExists(t, filepath.Join(base, "2026", "01_2026", "country_distribution_movies_10_01_26.json"))
	assert.FileExists(t, filepath.Join(base, "2026", "02_2026", "country_distribution_movies_11_02_26.json"))
	assert.FileExists(t, filepath.Join(base, "latest", "country_distribution_movies_latest.json"))
}

func TestMarshalStable(t *testing.T) {
	a, err := Marshal(testPayload())
	require.NoError(t, err)
	b, err := Marshal(testPayload())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
