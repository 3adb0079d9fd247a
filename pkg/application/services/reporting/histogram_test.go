package reporting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefectHistogram_FifteenBins(t *testing.T) {
	h, err := DefectHistogram(weekTable(), DefaultHistogramBins)
	require.NoError(t, err)

	require.Len(t, h.Counts, 15)
	require.Len(t, h.Edges, 16)
	assert.Equal(t, 2.0, h.Edges[0])
	assert.Equal(t, 25.0, h.Edges[15])
	assert.Equal(t, 7.0, h.Total())
	assert.Equal(t, 1.0, h.Counts[0], "minimum lands in the first bin")
	assert.Equal(t, 1.0, h.Counts[14], "maximum lands in the closed last bin")
	assert.Zero(t, h.Excluded)
}

func TestNewHistogram_EqualWidthBins(t *testing.T) {
	h, err := NewHistogram("x", []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, h.Edges)
	assert.Equal(t, []float64{2, 2, 2, 2, 3}, h.Counts)
}

func TestNewHistogram_EdgeCases(t *testing.T) {
	h, err := NewHistogram("x", []float64{4, 4, 4}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.5, h.Edges[0])
	assert.Equal(t, 4.5, h.Edges[3])
	assert.Equal(t, 3.0, h.Total())

	h, err = NewHistogram("x", []float64{1, math.NaN(), math.Inf(1), 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Excluded)
	assert.Equal(t, []float64{1, 1}, h.Counts)

	h, err = NewHistogram("x", nil, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h.Total())
	assert.Len(t, h.Edges, 5)

	_, err = NewHistogram("x", []float64{1}, 0)
	assert.Error(t, err)
}
