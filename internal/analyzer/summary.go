package analyzer

import (
	"fmt"
	"strings"

	"datalens/domain/dataset"
	"datalens/internal/stats"
)

// ColumnSummary describes one column: its declared kind and how many entries
// are missing.
type ColumnSummary struct {
	Name    string       `json:"name"`
	Kind    dataset.Kind `json:"kind"`
	Missing int          `json:"missing"`
}

// NumericSummary carries descriptive statistics for one numeric column.
type NumericSummary struct {
	Name string `json:"name"`
	stats.Descriptive
}

// Summary is a derived report over the dataset. It is recomputed on every
// request and never persisted.
type Summary struct {
	DisplayName string           `json:"display_name"`
	Rows        int              `json:"rows"`
	Cols        int              `json:"cols"`
	Columns     []ColumnSummary  `json:"columns"`
	Numeric     []NumericSummary `json:"numeric"`
}

// Summarize computes a fresh summary of the dataset. The result is
// deterministic: the same dataset always yields the same summary.
func (a *Analyzer) Summarize() *Summary {
	rows, cols := a.ds.Shape()
	s := &Summary{
		DisplayName: a.name,
		Rows:        rows,
		Cols:        cols,
	}

	for _, col := range a.ds.Columns() {
		s.Columns = append(s.Columns, ColumnSummary{
			Name:    col.Name,
			Kind:    col.Kind,
			Missing: col.MissingCount(),
		})
		if col.Kind == dataset.KindNumeric {
			s.Numeric = append(s.Numeric, NumericSummary{
				Name:        col.Name,
				Descriptive: stats.Describe(col.Floats()),
			})
		}
	}
	return s
}

// ColumnNames returns the summarized column names in original order.
func (s *Summary) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Text renders the summary as a plain-text report: header, shape, column
// list, kinds, missing counts, then numeric statistics.
func (s *Summary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset Summary for %s:\n\n", s.DisplayName)
	fmt.Fprintf(&b, "Shape: (%d, %d)\n", s.Rows, s.Cols)
	fmt.Fprintf(&b, "\nColumns: [%s]\n", strings.Join(s.ColumnNames(), ", "))

	b.WriteString("\nData Types:\n")
	for _, c := range s.Columns {
		fmt.Fprintf(&b, "  %-20s %s\n", c.Name, c.Kind)
	}

	b.WriteString("\nMissing Values:\n")
	for _, c := range s.Columns {
		fmt.Fprintf(&b, "  %-20s %d\n", c.Name, c.Missing)
	}

	b.WriteString("\nBasic Statistics:\n")
	for _, n := range s.Numeric {
		fmt.Fprintf(&b, "  %s:\n", n.Name)
		fmt.Fprintf(&b, "    count  %d\n", n.Count)
		fmt.Fprintf(&b, "    mean   %.6f\n", n.Mean)
		fmt.Fprintf(&b, "    std    %.6f\n", n.StdDev)
		fmt.Fprintf(&b, "    min    %.6f\n", n.Min)
		fmt.Fprintf(&b, "    25%%    %.6f\n", n.Q25)
		fmt.Fprintf(&b, "    50%%    %.6f\n", n.Median)
		fmt.Fprintf(&b, "    75%%    %.6f\n", n.Q75)
		fmt.Fprintf(&b, "    max    %.6f\n", n.Max)
	}
	return b.String()
}

// Markdown renders the summary for the web shell.
func (s *Summary) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Dataset Summary for %s\n\n", s.DisplayName)
	fmt.Fprintf(&b, "**Shape**: %d rows × %d columns\n\n", s.Rows, s.Cols)

	b.WriteString("| Column | Type | Missing |\n|---|---|---|\n")
	for _, c := range s.Columns {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", c.Name, c.Kind, c.Missing)
	}

	if len(s.Numeric) > 0 {
		b.WriteString("\n### Basic Statistics\n\n")
		b.WriteString("| Column | Count | Mean | Std | Min | 25% | 50% | 75% | Max |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
		for _, n := range s.Numeric {
			fmt.Fprintf(&b, "| %s | %d | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f |\n",
				n.Name, n.Count, n.Mean, n.StdDev, n.Min, n.Q25, n.Median, n.Q75, n.Max)
		}
	}
	return b.String()
}
