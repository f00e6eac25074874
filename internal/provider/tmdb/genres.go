package tmdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/streamlens/streamlens-data/internal/config"
)

type genreListResponse struct {
	Genres []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

// GenreNames returns the genre id→name table for a media kind. Tables are
// memoized per client; the lists change rarely and extraction resolves
// genres for every title.
func (c *Client) GenreNames(ctx context.Context, kind config.MediaKind) (map[int]string, error) {
	c.genreMu.Lock()
	defer c.genreMu.Unlock()

	if c.genreTables == nil {
		c.genreTables = make(map[string]map[int]string)
	}
	if table, ok := c.genreTables[string(kind)]; ok {
		return table, nil
	}

	params := url.Values{}
	params.Set("language", "fr")

	var resp genreListResponse
	path := "/genre/" + kind.Endpoint() + "/list"
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, fmt.Errorf("fetch %s genres: %w", kind, err)
	}

	table := make(map[int]string, len(resp.Genres))
	for _, g := range resp.Genres {
		table[g.ID] = g.Name
	}
	c.genreTables[string(kind)] = table
	return table, nil
}
