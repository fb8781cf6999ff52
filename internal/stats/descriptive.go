package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// Descriptive holds the standard summary statistics for one numeric column,
// in describe() convention: sample standard deviation, percentiles by linear
// interpolation.
type Descriptive struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"25%"`
	Median float64 `json:"50%"`
	Q75    float64 `json:"75%"`
	Max    float64 `json:"max"`
}

// Describe computes summary statistics over the given values.
// An empty input yields a zero Descriptive with Count 0.
func Describe(data []float64) Descriptive {
	d := Descriptive{Count: len(data)}
	if len(data) == 0 {
		return d
	}

	d.Mean, _ = mstats.Mean(data)
	d.Min, _ = mstats.Min(data)
	d.Max, _ = mstats.Max(data)
	if len(data) > 1 {
		d.StdDev, _ = mstats.StandardDeviationSample(data)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	d.Q25 = Quantile(sorted, 0.25)
	d.Median = Quantile(sorted, 0.50)
	d.Q75 = Quantile(sorted, 0.75)
	return d
}

// Quantile returns the p-quantile of sorted data using linear interpolation
// between the two closest ranks, h = p*(n-1). montanaflynn's Percentile uses
// the exclusive method, which does not match the describe() convention, so
// this is computed directly.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// IQR returns the interquartile range of sorted data.
func IQR(sorted []float64) float64 {
	return Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
}
