package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"datalens/domain/core"
)

func browsableDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New([]Column{
		textColumn("city", "Austin", "Boston", "", "austin", "Chicago"),
		{Name: "population", Kind: KindNumeric, Values: []Value{
			{Raw: "950", Num: 950},
			{Raw: "650", Num: 650},
			{Raw: "", Missing: true},
			{Raw: "960", Num: 960},
			{Raw: "2700", Num: 2700},
		}},
	})
	require.NoError(t, err)
	return ds
}

func TestView_Filter(t *testing.T) {
	ds := browsableDataset(t)

	t.Run("case-insensitive substring", func(t *testing.T) {
		v, err := NewView(ds).Filter("city", "AUST")
		require.NoError(t, err)
		require.Equal(t, 2, v.Len())
	})

	t.Run("no match yields zero rows", func(t *testing.T) {
		v, err := NewView(ds).Filter("city", "zzz")
		require.NoError(t, err)
		require.Zero(t, v.Len())
	})

	t.Run("missing values are skipped", func(t *testing.T) {
		// The empty city cell must not match an empty-substring filter row-wise.
		v, err := NewView(ds).Filter("city", "")
		require.NoError(t, err)
		require.Equal(t, 4, v.Len())
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := NewView(ds).Filter("nope", "x")
		require.ErrorIs(t, err, core.ErrColumnNotFound)
	})

	t.Run("does not mutate the dataset", func(t *testing.T) {
		_, err := NewView(ds).Filter("city", "zzz")
		require.NoError(t, err)
		require.Equal(t, 5, ds.RowCount())
	})
}

func TestView_Sort(t *testing.T) {
	ds := browsableDataset(t)

	t.Run("numeric descending is non-increasing", func(t *testing.T) {
		v, err := NewView(ds).Sort("population", true)
		require.NoError(t, err)
		vals, err := v.Column("population")
		require.NoError(t, err)

		last := vals[0]
		for _, cur := range vals[1:] {
			if cur.Missing {
				continue // missing sorts last
			}
			require.False(t, last.Missing, "missing value sorted before present value")
			require.GreaterOrEqual(t, last.Num, cur.Num)
			last = cur
		}
	})

	t.Run("text ascending", func(t *testing.T) {
		v, err := NewView(ds).Sort("city", false)
		require.NoError(t, err)
		vals, err := v.Column("city")
		require.NoError(t, err)
		require.Equal(t, "Austin", vals[0].Raw)
		require.True(t, vals[len(vals)-1].Missing)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := NewView(ds).Sort("nope", false)
		require.ErrorIs(t, err, core.ErrColumnNotFound)
	})
}
