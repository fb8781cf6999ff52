package dataset

import (
	"sort"
	"strings"

	"datalens/domain/core"
)

// View is a row selection over a Dataset for table browsing. Filtering and
// sorting produce new views; the underlying Dataset is never mutated.
type View struct {
	ds   *Dataset
	rows []int
}

// NewView returns a view containing every row of the dataset in order.
func NewView(ds *Dataset) *View {
	rows := make([]int, ds.RowCount())
	for i := range rows {
		rows[i] = i
	}
	return &View{ds: ds, rows: rows}
}

// Len returns the number of rows currently in the view.
func (v *View) Len() int { return len(v.rows) }

// Filter keeps rows whose value in column contains substr, case-insensitive.
// Every value is matched as text; missing values never match.
func (v *View) Filter(column, substr string) (*View, error) {
	col, ok := v.ds.Column(column)
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}
	needle := strings.ToLower(substr)
	kept := make([]int, 0, len(v.rows))
	for _, i := range v.rows {
		cell := col.Values[i]
		if cell.Missing {
			continue
		}
		if strings.Contains(strings.ToLower(cell.Raw), needle) {
			kept = append(kept, i)
		}
	}
	return &View{ds: v.ds, rows: kept}, nil
}

// Sort orders the view by column. Numeric columns compare parsed values,
// everything else compares as text. Missing values sort last either way.
// The sort is stable so equal rows keep their relative order.
func (v *View) Sort(column string, descending bool) (*View, error) {
	col, ok := v.ds.Column(column)
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}
	rows := make([]int, len(v.rows))
	copy(rows, v.rows)

	less := func(a, b Value) bool {
		if col.Kind == KindNumeric {
			return a.Num < b.Num
		}
		return a.Raw < b.Raw
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := col.Values[rows[i]], col.Values[rows[j]]
		if a.Missing != b.Missing {
			return b.Missing
		}
		if a.Missing {
			return false
		}
		if descending {
			return less(b, a)
		}
		return less(a, b)
	})
	return &View{ds: v.ds, rows: rows}, nil
}

// Records returns the visible rows as raw cell texts in column order.
func (v *View) Records() [][]string {
	out := make([][]string, len(v.rows))
	for i, row := range v.rows {
		out[i] = v.ds.Row(row)
	}
	return out
}

// Column returns the visible values of one column, in view order.
func (v *View) Column(name string) ([]Value, error) {
	col, ok := v.ds.Column(name)
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	out := make([]Value, len(v.rows))
	for i, row := range v.rows {
		out[i] = col.Values[row]
	}
	return out, nil
}
