package reporting

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// DefaultHistogramBins is the number of equal-width defect bins.
const DefaultHistogramBins = 15

// Histogram is a frequency distribution over equal-width bins. Edges has
// len(Counts)+1 entries; every bin is half-open except the last, which
// also includes its upper edge.
type Histogram struct {
	Column string    `json:"column"`
	Edges  []float64 `json:"edges"`
	Counts []float64 `json:"counts"`
	// Excluded counts null and infinite values, which have no bin.
	Excluded int `json:"excluded"`
}

// DefectHistogram bins the Defect_Quantity column.
func DefectHistogram(t *entities.Table, bins int) (Histogram, error) {
	values, err := t.Column(entities.ColDefectQuantity)
	if err != nil {
		return Histogram{}, err
	}
	return NewHistogram(entities.ColDefectQuantity, values, bins)
}

// NewHistogram bins values into the given number of equal-width bins
// spanning [min, max]. A zero-width range is widened by 0.5 on each side.
func NewHistogram(column string, values []float64, bins int) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, fmt.Errorf("histogram needs at least one bin, got %d", bins)
	}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	h := Histogram{
		Column:   column,
		Counts:   make([]float64, bins),
		Excluded: len(values) - len(finite),
	}

	lo, hi := 0.0, 1.0
	if len(finite) > 0 {
		lo, hi = floats.Min(finite), floats.Max(finite)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	h.Edges = floats.Span(make([]float64, bins+1), lo, hi)
	h.Edges[bins] = hi
	if len(finite) == 0 {
		return h, nil
	}

	sort.Float64s(finite)
	// stat.Histogram bins are half-open; nudge the last divider so the
	// maximum lands in the final bin.
	dividers := append([]float64(nil), h.Edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	h.Counts = stat.Histogram(h.Counts, dividers, finite, nil)

	return h, nil
}

// Total returns the number of binned values.
func (h Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}
