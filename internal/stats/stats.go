// Package stats computes the derived statistics served by the read API:
// category distributions, average ratings with minimum support, and yearly
// release counts. All grouping is done with explicit passes over the title
// table.
package stats

import "math"

// MinRatingSupport is the minimum number of ratings a category needs to
// appear in a rating aggregate. Categories below it are dropped, not zeroed.
const MinRatingSupport = 3

// Round2 rounds to 2 decimal places, half away from zero. This is the single
// rounding rule for every published value (entry means and average_rating).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
