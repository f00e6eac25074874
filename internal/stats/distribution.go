package stats

import (
	"sort"

	"github.com/streamlens/streamlens-data/internal/catalog"
)

// Distribution is an exact multiset count per category value. Total is the
// number of occurrences observed, Count the number of distinct keys. Keys
// holds the deterministic presentation order: count descending, ties broken
// by key ascending. No case folding is applied; values are compared
// byte-for-byte after trimming.
type Distribution struct {
	Data  map[string]int
	Keys  []string
	Total int
	Count int
}

// NewDistribution counts a flat sequence of atomic category values.
func NewDistribution(values []string) *Distribution {
	data := make(map[string]int, len(values))
	for _, v := range values {
		data[v]++
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if data[keys[i]] != data[keys[j]] {
			return data[keys[i]] > data[keys[j]]
		}
		return keys[i] < keys[j]
	})

	return &Distribution{
		Data:  data,
		Keys:  keys,
		Total: len(values),
		Count: len(data),
	}
}

// CategoryDistribution splits the named comma-separated column and counts
// every atomic occurrence across the table.
func CategoryDistribution(t *catalog.Table, columnName string) (*Distribution, error) {
	values, err := catalog.SplitValues(t, columnName)
	if err != nil {
		return nil, err
	}
	return NewDistribution(values), nil
}
