package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/streamlens/streamlens-data/internal/config"
)

type titleDetailResponse struct {
	OriginCountry []string `json:"origin_country"`
}

// OriginCountry looks up the origin-country alpha-2 codes for one title.
// A title with no origin data returns (nil, nil) — that is a defined "no
// result", not an error. Callers own the per-call timeout via ctx.
func (c *Client) OriginCountry(ctx context.Context, tmdbID int64, kind config.MediaKind) ([]string, error) {
	params := url.Values{}
	params.Set("language", "fr-FR")

	var resp titleDetailResponse
	path := "/" + kind.Endpoint() + "/" + strconv.FormatInt(tmdbID, 10)
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, fmt.Errorf("origin country for %s %d: %w", kind, tmdbID, err)
	}

	if len(resp.OriginCountry) == 0 {
		return nil, nil
	}
	return resp.OriginCountry, nil
}
