package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlens/streamlens-data/internal/config"
)

func TestDiscoverTitles(t *testing.T) {
	var gotProvider, gotRegion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/discover/movie", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		gotProvider = r.URL.Query().Get("with_watch_providers")
		gotRegion = r.URL.Query().Get("watch_region")

		page := r.URL.Query().Get("page")
		fmt.Fprintf(w, `{
			"page": %s,
			"total_pages": 2,
			"results": [
				{"id": %s00, "title": "Movie %s", "release_date": "2021-03-15",
				 "vote_average": 7.5, "genre_ids": [28, 35], "original_language": "en"}
			]
		}`, page, page, page)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 100, nil)
	titles, err := c.DiscoverTitles(context.Background(), config.MediaMovies, 8, "FR", 5)
	require.NoError(t, err)

	// total_pages=2 caps the fetch even though 5 pages were requested.
	require.Len(t, titles, 2)
	assert.Equal(t, "8", gotProvider)
	assert.Equal(t, "FR", gotRegion)

	assert.Equal(t, int64(100), titles[0].ID)
	assert.Equal(t, "Movie 1", titles[0].DisplayTitle())
	assert.Equal(t, "2021-03-15", titles[0].Date())
	assert.Equal(t, []int{28, 35}, titles[0].GenreIDs)
	assert.NotEmpty(t, titles[0].Raw, "raw upstream document must be preserved")
}

func TestDiscoverTitlesSeriesEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/discover/tv", r.URL.Path)
		fmt.Fprint(w, `{"page": 1, "total_pages": 1, "results": [
			{"id": 7, "name": "Show", "first_air_date": "2020-09-09"}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", 100, nil)
	titles, err := c.DiscoverTitles(context.Background(), config.MediaSeries, 8, "FR", 1)
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "Show", titles[0].DisplayTitle())
	assert.Equal(t, "2020-09-09", titles[0].Date())
}

func TestDiscoverTitlesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message": "Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", 100, nil)
	_, err := c.DiscoverTitles(context.Background(), config.MediaMovies, 8, "FR", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestOriginCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/42", r.URL.Path)
		fmt.Fprint(w, `{"origin_country": ["KR", "US"]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", 100, nil)
	codes, err := c.OriginCountry(context.Background(), 42, config.MediaMovies)
	require.NoError(t, err)
	assert.Equal(t, []string{"KR", "US"}, codes)
}

func TestOriginCountryNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"origin_country": []}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", 100, nil)
	codes, err := c.OriginCountry(context.Background(), 42, config.MediaSeries)
	require.NoError(t, err)
	assert.Nil(t, codes)
}

func TestGenreNamesMemoized(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/genre/movie/list", r.URL.Path)
		require.Equal(t, "fr", r.URL.Query().Get("language"))
		fmt.Fprint(w, `{"genres": [{"id": 28, "name": "Action"}, {"id": 35, "name": "Comédie"}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", 100, nil)
	for i := 0; i < 3; i++ {
		genres, err := c.GenreNames(context.Background(), config.MediaMovies)
		require.NoError(t, err)
		assert.Equal(t, map[int]string{28: "Action", 35: "Comédie"}, genres)
	}
	assert.Equal(t, int64(1), calls.Load())
}
