package tabular

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"datalens/domain/core"
	"datalens/domain/dataset"
	"datalens/internal/testkit"
)

func TestReader_CSV(t *testing.T) {
	path, err := testkit.WriteSampleCSV(t.TempDir(), "sample.csv")
	require.NoError(t, err)

	ds, err := NewReader(path).Read()
	require.NoError(t, err)

	rows, cols := ds.Shape()
	require.Equal(t, 6, rows)
	require.Equal(t, 4, cols)
	require.Equal(t, []string{"product", "price", "in_stock", "notes"}, ds.Names())

	price, ok := ds.Column("price")
	require.True(t, ok)
	require.Equal(t, dataset.KindNumeric, price.Kind)
	require.InDelta(t, 9.99, price.Values[0].Num, 1e-9)

	inStock, ok := ds.Column("in_stock")
	require.True(t, ok)
	require.Equal(t, dataset.KindBoolean, inStock.Kind)

	notes, ok := ds.Column("notes")
	require.True(t, ok)
	require.Equal(t, dataset.KindText, notes.Kind)
	require.Equal(t, 3, notes.MissingCount())
}

func TestReader_RaggedRowsPadded(t *testing.T) {
	path, err := testkit.WriteCSV(t.TempDir(), "ragged.csv", [][]string{
		{"a", "b", "c"},
		{"1", "2", "3"},
		{"4", "5"},
	})
	require.NoError(t, err)

	ds, err := NewReader(path).Read()
	require.NoError(t, err)

	rows, _ := ds.Shape()
	require.Equal(t, 2, rows)
	c, ok := ds.Column("c")
	require.True(t, ok)
	require.Equal(t, 1, c.MissingCount())
}

func TestReader_DuplicateHeader(t *testing.T) {
	path, err := testkit.WriteCSV(t.TempDir(), "dup.csv", [][]string{
		{"a", "a"},
		{"1", "2"},
	})
	require.NoError(t, err)

	_, err = NewReader(path).Read()
	require.ErrorIs(t, err, core.ErrDuplicateColumn)
}

func TestReader_Missing(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "absent.csv")).Read()
	require.ErrorIs(t, err, core.ErrSourceNotFound)
}

func TestReader_HeaderOnly(t *testing.T) {
	path, err := testkit.WriteCSV(t.TempDir(), "empty.csv", [][]string{{"a", "b"}})
	require.NoError(t, err)

	_, err = NewReader(path).Read()
	require.ErrorIs(t, err, core.ErrEmptyDataset)
}

func TestReader_UnsupportedFormat(t *testing.T) {
	path, err := testkit.WriteCSV(t.TempDir(), "data.tsv", [][]string{
		{"a"}, {"1"},
	})
	require.NoError(t, err)

	_, err = NewReader(path).Read()
	require.ErrorIs(t, err, core.ErrUnsupportedFormat)
}

func TestReader_Excel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"name", "score"},
		{"alpha", 1.5},
		{"beta", 2.25},
	}
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", ref, cell))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := NewReader(path).Read()
	require.NoError(t, err)

	rowCount, colCount := ds.Shape()
	require.Equal(t, 2, rowCount)
	require.Equal(t, 2, colCount)

	score, ok := ds.Column("score")
	require.True(t, ok)
	require.Equal(t, dataset.KindNumeric, score.Kind)
	require.InDelta(t, 2.25, score.Values[1].Num, 1e-9)
}

func TestInferKind(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  dataset.Kind
	}{
		{"all numeric", []string{"1", "2.5", "-3", "1,200"}, dataset.KindNumeric},
		{"numeric with some noise", []string{"1", "2", "3", "4", "oops"}, dataset.KindNumeric},
		{"too much noise", []string{"1", "2", "a", "b"}, dataset.KindText},
		{"boolean", []string{"yes", "no", "YES", "no"}, dataset.KindBoolean},
		{"timestamp", []string{"2024-01-01", "2024-06-30", "2025-12-31"}, dataset.KindTimestamp},
		{"empty cells ignored", []string{"", "", "5", "7"}, dataset.KindNumeric},
		{"all empty defaults to text", []string{"", ""}, dataset.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, inferKind(tt.cells))
		})
	}
}
