package stats

import (
	"sort"

	"github.com/streamlens/streamlens-data/internal/catalog"
)

// RatingEntry is the per-category aggregate: arithmetic mean of available
// ratings (rounded to 2 decimals) and how many ratings contributed.
type RatingEntry struct {
	Mean  float64
	Count int
}

// RatingAggregate maps category values to rating aggregates. Keys holds the
// presentation order: mean descending, ties broken by key ascending.
// TotalRatings sums Count over retained entries. AverageRating is the
// unweighted mean of the per-entry means — a policy baked into the published
// numbers, deliberately not a ratings-weighted average.
type RatingAggregate struct {
	Data          map[string]RatingEntry
	Keys          []string
	TotalRatings  int
	AverageRating float64
}

// AverageRatings explodes the named column and computes the mean rating and
// support count per category. Rows with a nil rating contribute to neither;
// categories with fewer than MinRatingSupport ratings are dropped.
func AverageRatings(t *catalog.Table, columnName string) (*RatingAggregate, error) {
	exploded, err := catalog.Explode(t, columnName)
	if err != nil {
		return nil, err
	}

	col, err := catalog.Getter(columnName)
	if err != nil {
		return nil, err
	}

	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc)
	for i := range exploded.Rows {
		row := &exploded.Rows[i]
		if row.Rating == nil {
			continue
		}
		key := col(row)
		g, ok := groups[key]
		if !ok {
			g = &acc{}
			groups[key] = g
		}
		g.sum += *row.Rating
		g.count++
	}

	result := &RatingAggregate{Data: make(map[string]RatingEntry, len(groups))}
	means := make(map[string]float64, len(groups))
	for key, g := range groups {
		if g.count < MinRatingSupport {
			continue
		}
		mean := g.sum / float64(g.count)
		means[key] = mean
		result.Data[key] = RatingEntry{Mean: Round2(mean), Count: g.count}
		result.TotalRatings += g.count
	}

	result.Keys = make([]string, 0, len(result.Data))
	for k := range result.Data {
		result.Keys = append(result.Keys, k)
	}
	sort.Slice(result.Keys, func(i, j int) bool {
		mi, mj := means[result.Keys[i]], means[result.Keys[j]]
		if mi != mj {
			return mi > mj
		}
		return result.Keys[i] < result.Keys[j]
	})

	// Unweighted mean of the unrounded per-category means, rounded once.
	if len(means) > 0 {
		var sum float64
		for _, m := range means {
			sum += m
		}
		result.AverageRating = Round2(sum / float64(len(means)))
	}

	return result, nil
}
