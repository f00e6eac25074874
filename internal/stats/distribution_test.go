package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlens/streamlens-data/internal/catalog"
)

func TestNewDistribution(t *testing.T) {
	d := NewDistribution([]string{"Action", "Comedy", "Action", "Drama", "Action", "Comedy"})

	assert.Equal(t, 6, d.Total)
	assert.Equal(t, 3, d.Count)
	assert.Equal(t, map[string]int{"Action": 3, "Comedy": 2, "Drama": 1}, d.Data)
	// Count descending, ties by key ascending.
	assert.Equal(t, []string{"Action", "Comedy", "Drama"}, d.Keys)
}

func TestNewDistributionTieOrder(t *testing.T) {
	d := NewDistribution([]string{"b", "a", "c", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys)
}

func TestNewDistributionEmpty(t *testing.T) {
	d := NewDistribution(nil)
	assert.Equal(t, 0, d.Total)
	assert.Equal(t, 0, d.Count)
	assert.Empty(t, d.Keys)
}

func TestCategoryDistribution(t *testing.T) {
	table := &catalog.Table{Rows: []catalog.Title{
		{Genre: "Action, Comedy"},
		{Genre: "Action"},
		{Genre: ""},
	}}

	d, err := CategoryDistribution(table, catalog.ColGenre)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Total)
	assert.Equal(t, map[string]int{"Action": 2, "Comedy": 1}, d.Data)

	// Total always equals the sum of counts, multi-valued rows included.
	sum := 0
	for _, n := range d.Data {
		sum += n
	}
	assert.Equal(t, d.Total, sum)
}

func TestCategoryDistributionUnknownColumn(t *testing.T) {
	_, err := CategoryDistribution(&catalog.Table{}, "bogus")
	require.ErrorIs(t, err, catalog.ErrColumnNotFound)
}
