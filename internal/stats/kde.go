package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// KDEPoint is one evaluated point of a density estimate.
type KDEPoint struct {
	X, Y float64
}

// GaussianKDE evaluates a Gaussian kernel density estimate of data at steps
// evenly spaced points spanning the data range. Bandwidth follows Silverman's
// rule of thumb: 0.9 * min(sigma, IQR/1.34) * n^(-1/5).
func GaussianKDE(data []float64, steps int) []KDEPoint {
	if len(data) < 2 || steps < 2 {
		return nil
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	bw := silvermanBandwidth(sorted)
	if bw <= 0 {
		return nil
	}

	lo, hi := sorted[0], sorted[len(sorted)-1]
	// Extend past the data range so the curve tails off visibly.
	pad := 2 * bw
	lo -= pad
	hi += pad

	n := float64(len(data))
	points := make([]KDEPoint, steps)
	step := (hi - lo) / float64(steps-1)
	for i := 0; i < steps; i++ {
		x := lo + float64(i)*step
		sum := 0.0
		for _, xi := range data {
			sum += distuv.UnitNormal.Prob((x - xi) / bw)
		}
		points[i] = KDEPoint{X: x, Y: sum / (n * bw)}
	}
	return points
}

func silvermanBandwidth(sorted []float64) float64 {
	n := float64(len(sorted))
	sigma, _ := mstats.StandardDeviationSample(sorted)
	spread := sigma
	if iqr := IQR(sorted) / 1.34; iqr > 0 && iqr < spread {
		spread = iqr
	}
	if spread <= 0 {
		return 0
	}
	return 0.9 * spread * math.Pow(n, -0.2)
}
