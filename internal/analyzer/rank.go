package analyzer

import (
	"sort"

	"datalens/domain/chart"
	"datalens/domain/dataset"
)

// topCategories counts each distinct non-missing value in the column, ranks
// descending by count, and keeps the top n. Ties break by the order values
// were first observed (stable sort over first-seen order).
func topCategories(col *dataset.Column, n int) []chart.CategoryCount {
	counts := make(map[string]int)
	var order []string
	for _, v := range col.Values {
		if v.Missing {
			continue
		}
		if _, seen := counts[v.Raw]; !seen {
			order = append(order, v.Raw)
		}
		counts[v.Raw]++
	}

	ranked := make([]chart.CategoryCount, len(order))
	for i, value := range order {
		ranked[i] = chart.CategoryCount{Value: value, Count: counts[value]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
