// Package snapshot serializes aggregate results into their canonical JSON
// shapes and persists them to the archive and latest sinks.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/streamlens/streamlens-data/internal/stats"
)

// DistributionPayload is the canonical JSON shape for distribution stats
// (category and yearly): {"data": {...}, "total": n, "count": n}.
type DistributionPayload struct {
	Data  map[string]int `json:"data"`
	Total int            `json:"total"`
	Count int            `json:"count"`
}

// RatingsEntryPayload is one category's entry in a ratings payload.
type RatingsEntryPayload struct {
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// RatingsPayload is the canonical JSON shape for rating stats:
// {"data": {...}, "total_ratings": n, "average_rating": x}.
type RatingsPayload struct {
	Data          map[string]RatingsEntryPayload `json:"data"`
	TotalRatings  int                            `json:"total_ratings"`
	AverageRating float64                        `json:"average_rating"`
}

// FromDistribution converts an aggregate into its payload shape.
func FromDistribution(d *stats.Distribution) DistributionPayload {
	return DistributionPayload{Data: d.Data, Total: d.Total, Count: d.Count}
}

// FromRatings converts a rating aggregate into its payload shape.
func FromRatings(r *stats.RatingAggregate) RatingsPayload {
	data := make(map[string]RatingsEntryPayload, len(r.Data))
	for k, e := range r.Data {
		data[k] = RatingsEntryPayload{Mean: e.Mean, Count: e.Count}
	}
	return RatingsPayload{
		Data:          data,
		TotalRatings:  r.TotalRatings,
		AverageRating: r.AverageRating,
	}
}

// Marshal renders a payload as the indented JSON written to both sinks.
// Go's map marshaling sorts keys, so output is byte-stable across runs.
func Marshal(payload any) ([]byte, error) {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot payload: %w", err)
	}
	return b, nil
}
