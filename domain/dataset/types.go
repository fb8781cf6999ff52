package dataset

import (
	"datalens/domain/core"
)

// Kind is the declared value kind of a column.
type Kind string

const (
	KindNumeric   Kind = "numeric"
	KindText      Kind = "text"
	KindBoolean   Kind = "boolean"
	KindTimestamp Kind = "timestamp"
)

// Value is a single cell. Raw always carries the original text; Num is only
// meaningful on columns whose declared kind is numeric. Empty cells are missing.
type Value struct {
	Raw     string
	Num     float64
	Missing bool
}

// Column is a named, typed, ordered sequence of values.
type Column struct {
	Name   string
	Kind   Kind
	Values []Value
}

// MissingCount returns the number of missing entries in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.Missing {
			n++
		}
	}
	return n
}

// Floats returns the non-missing numeric values in column order.
// The result is empty for non-numeric columns.
func (c *Column) Floats() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.Missing {
			out = append(out, v.Num)
		}
	}
	return out
}

// Dataset is an in-memory table: ordered named columns with a uniform row
// count. Column names are unique. A Dataset is read-only after construction.
type Dataset struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a Dataset from columns, enforcing unique names and a uniform
// row count across columns.
func New(columns []Column) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	rows := 0
	for i, col := range columns {
		if _, dup := index[col.Name]; dup {
			return nil, core.NewDuplicateColumnError(col.Name)
		}
		index[col.Name] = i
		if i == 0 {
			rows = len(col.Values)
		} else if len(col.Values) != rows {
			return nil, core.NewValidationError(col.Name, "row count mismatch")
		}
	}
	return &Dataset{columns: columns, index: index, rows: rows}, nil
}

// Shape returns (row count, column count).
func (d *Dataset) Shape() (int, int) {
	return d.rows, len(d.columns)
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int { return d.rows }

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int { return len(d.columns) }

// Names returns the column names in original order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// Columns returns the columns in original order.
func (d *Dataset) Columns() []Column {
	return d.columns
}

// Column looks up a column by name.
func (d *Dataset) Column(name string) (*Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return &d.columns[i], true
}

// HasColumn reports whether a column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Row returns the raw cell texts of row i in column order.
func (d *Dataset) Row(i int) []string {
	cells := make([]string, len(d.columns))
	for j, col := range d.columns {
		cells[j] = col.Values[i].Raw
	}
	return cells
}
