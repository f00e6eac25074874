package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/streamlens/streamlens-data/internal/config"
)

// RawTitle is one catalog entry as the discover endpoint returns it. Movies
// carry title/release_date, series name/first_air_date; the accessor methods
// normalize the two layouts.
type RawTitle struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	VoteAverage      float64 `json:"vote_average"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	PosterPath       string  `json:"poster_path"`

	// Raw is the untouched upstream document, kept for the document store.
	Raw json.RawMessage `json:"-"`
}

// DisplayTitle returns the title regardless of media kind.
func (r *RawTitle) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Date returns the release/first-air date regardless of media kind.
func (r *RawTitle) Date() string {
	if r.ReleaseDate != "" {
		return r.ReleaseDate
	}
	return r.FirstAirDate
}

type discoverResponse struct {
	Page       int               `json:"page"`
	Results    []json.RawMessage `json:"results"`
	TotalPages int               `json:"total_pages"`
}

// DiscoverTitles fetches the first `pages` discover pages for a media kind,
// filtered to a watch provider and region. Any page failure aborts the
// extraction — a partial catalog must not feed the pipeline.
func (c *Client) DiscoverTitles(ctx context.Context, kind config.MediaKind, providerID int, region string, pages int) ([]RawTitle, error) {
	var titles []RawTitle

	for page := 1; page <= pages; page++ {
		params := url.Values{}
		params.Set("with_watch_providers", strconv.Itoa(providerID))
		params.Set("watch_region", region)
		params.Set("page", strconv.Itoa(page))

		var resp discoverResponse
		path := "/discover/" + kind.Endpoint()
		if err := c.get(ctx, path, params, &resp); err != nil {
			return nil, fmt.Errorf("discover %s page %d: %w", kind, page, err)
		}

		for _, raw := range resp.Results {
			var t RawTitle
			if err := json.Unmarshal(raw, &t); err != nil {
				return nil, fmt.Errorf("decode %s discover result: %w", kind, err)
			}
			t.Raw = raw
			titles = append(titles, t)
		}
		c.logger.Info("Discover page fetched",
			"kind", kind, "page", page, "results", len(resp.Results))

		if resp.TotalPages > 0 && page >= resp.TotalPages {
			break
		}
	}

	return titles, nil
}
