package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"datalens/domain/core"
)

func textColumn(name string, cells ...string) Column {
	values := make([]Value, len(cells))
	for i, c := range cells {
		values[i] = Value{Raw: c, Missing: c == ""}
	}
	return Column{Name: name, Kind: KindText, Values: values}
}

func numericColumn(name string, nums ...float64) Column {
	values := make([]Value, len(nums))
	for i, n := range nums {
		values[i] = Value{Num: n}
	}
	return Column{Name: name, Kind: KindNumeric, Values: values}
}

func TestNew_Invariants(t *testing.T) {
	t.Run("duplicate column names rejected", func(t *testing.T) {
		_, err := New([]Column{
			textColumn("a", "x"),
			textColumn("a", "y"),
		})
		require.ErrorIs(t, err, core.ErrDuplicateColumn)
	})

	t.Run("row count mismatch rejected", func(t *testing.T) {
		_, err := New([]Column{
			textColumn("a", "x", "y"),
			textColumn("b", "z"),
		})
		require.Error(t, err)
	})

	t.Run("shape reflects columns", func(t *testing.T) {
		ds, err := New([]Column{
			textColumn("a", "x", "y", "z"),
			numericColumn("b", 1, 2, 3),
		})
		require.NoError(t, err)
		rows, cols := ds.Shape()
		require.Equal(t, 3, rows)
		require.Equal(t, 2, cols)
		require.Equal(t, []string{"a", "b"}, ds.Names())
	})
}

func TestColumn_MissingCount(t *testing.T) {
	col := textColumn("notes", "x", "", "y", "", "")
	require.Equal(t, 3, col.MissingCount())
}

func TestColumn_Floats(t *testing.T) {
	col := Column{Name: "n", Kind: KindNumeric, Values: []Value{
		{Num: 1.5},
		{Missing: true},
		{Num: -2},
	}}
	require.Equal(t, []float64{1.5, -2}, col.Floats())

	text := textColumn("t", "a", "b")
	require.Empty(t, text.Floats())
}
