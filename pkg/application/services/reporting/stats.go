package reporting

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of the non-null values in xs. Infinite
// values propagate. An input with no non-null values yields NaN.
func Mean(xs []float64) float64 {
	present := dropNulls(xs)
	if len(present) == 0 {
		return math.NaN()
	}
	return stat.Mean(present, nil)
}

// Correlation returns the Pearson correlation of x and y over the rows where
// both values are non-null. Fewer than two such rows yields NaN.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

func dropNulls(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
