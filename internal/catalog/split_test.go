package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingOf(v float64) *float64 { return &v }

func TestSplitValues(t *testing.T) {
	table := &Table{Rows: []Title{
		{Title: "A", Genre: "Action, Comedy"},
		{Title: "B", Genre: "Action"},
		{Title: "C", Genre: ""},
		{Title: "D", Genre: "Drama ,  Action , "},
	}}

	values, err := SplitValues(table, ColGenre)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Comedy", "Action", "Drama", "Action"}, values)
}

func TestSplitValuesUnknownColumn(t *testing.T) {
	table := &Table{Rows: []Title{{Title: "A"}}}

	_, err := SplitValues(table, "vote_average")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestExplode(t *testing.T) {
	table := &Table{Rows: []Title{
		{TMDBID: 1, Title: "A", Genre: "Action, Comedy", Rating: ratingOf(7.5)},
		{TMDBID: 2, Title: "B", Genre: "Drama"},
		{TMDBID: 3, Title: "C", Genre: ""},
	}}

	out, err := Explode(table, ColGenre)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())

	// Row A appears once per genre with every other column carried over.
	assert.Equal(t, "Action", out.Rows[0].Genre)
	assert.Equal(t, "Comedy", out.Rows[1].Genre)
	assert.Equal(t, int64(1), out.Rows[0].TMDBID)
	assert.Equal(t, int64(1), out.Rows[1].TMDBID)
	require.NotNil(t, out.Rows[1].Rating)
	assert.Equal(t, 7.5, *out.Rows[1].Rating)

	// Row C had no genre values and is dropped entirely.
	assert.Equal(t, "Drama", out.Rows[2].Genre)
	assert.Equal(t, int64(2), out.Rows[2].TMDBID)
}

func TestExplodeDoesNotMutateInput(t *testing.T) {
	table := &Table{Rows: []Title{
		{TMDBID: 1, Genre: "Action, Comedy"},
	}}

	_, err := Explode(table, ColGenre)
	require.NoError(t, err)
	assert.Equal(t, "Action, Comedy", table.Rows[0].Genre)
}

func TestExplodeUnknownColumn(t *testing.T) {
	table := &Table{Rows: []Title{{Title: "A"}}}

	_, err := Explode(table, "nope")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestGetter(t *testing.T) {
	get, err := Getter(ColCountryName)
	require.NoError(t, err)
	assert.Equal(t, "France", get(&Title{CountryName: "France"}))

	_, err = Getter("unknown")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestTableLenNil(t *testing.T) {
	var table *Table
	assert.Equal(t, 0, table.Len())
}
