package stats

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/streamlens/streamlens-data/internal/catalog"
)

// ErrInvalidDateFormat is returned by ParseYear for values that are not
// ISO-8601-ish dates.
var ErrInvalidDateFormat = errors.New("invalid date format")

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// ParseYear extracts the calendar year from an ISO-ish date string.
func ParseYear(s string) (int, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
}

// YearCounts derives a year per row from the release_date column and counts
// titles per year, ascending. Rows with an empty or malformed date are
// excluded from the counts — one bad date must not fail the run — and the
// number of exclusions is reported so callers can log it.
func YearCounts(t *catalog.Table) (*Distribution, int, error) {
	col, err := catalog.Getter(catalog.ColReleaseDate)
	if err != nil {
		return nil, 0, err
	}

	data := make(map[int]int)
	skipped := 0
	total := 0
	for i := range t.Rows {
		raw := col(&t.Rows[i])
		if raw == "" {
			skipped++
			continue
		}
		year, err := ParseYear(raw)
		if err != nil {
			skipped++
			continue
		}
		data[year]++
		total++
	}

	years := make([]int, 0, len(data))
	for y := range data {
		years = append(years, y)
	}
	sort.Ints(years)

	// Year keys are stringified for the JSON payload shape shared with the
	// category distributions.
	dist := &Distribution{
		Data:  make(map[string]int, len(data)),
		Keys:  make([]string, 0, len(data)),
		Total: total,
		Count: len(data),
	}
	for _, y := range years {
		key := strconv.Itoa(y)
		dist.Data[key] = data[y]
		dist.Keys = append(dist.Keys, key)
	}
	return dist, skipped, nil
}
