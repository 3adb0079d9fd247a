package reporting

import (
	"fmt"
	"math"

	"github.com/vsinha/oee/pkg/domain/entities"
)

// DefaultCorrelationColumns are the columns of the reported correlation matrix.
var DefaultCorrelationColumns = []string{
	entities.ColOEE,
	entities.ColDowntime,
	entities.ColDefectQuantity,
	entities.ColMaterialCost,
	entities.ColLaborCost,
}

// CorrelationMatrix is a symmetric matrix of pairwise Pearson coefficients.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// NewCorrelationMatrix correlates every pair of the named columns. Cells
// with a defined coefficient on the diagonal are exactly 1.
func NewCorrelationMatrix(t *entities.Table, columns []string) (CorrelationMatrix, error) {
	if len(columns) == 0 {
		return CorrelationMatrix{}, fmt.Errorf("correlation matrix needs at least one column")
	}

	series := make([][]float64, len(columns))
	for i, col := range columns {
		values, err := t.Column(col)
		if err != nil {
			return CorrelationMatrix{}, fmt.Errorf("correlation matrix: %w", err)
		}
		series[i] = values
	}

	m := CorrelationMatrix{
		Columns: append([]string(nil), columns...),
		Values:  make([][]float64, len(columns)),
	}
	for i := range m.Values {
		m.Values[i] = make([]float64, len(columns))
	}

	for i := range columns {
		for j := i; j < len(columns); j++ {
			r := Correlation(series[i], series[j])
			if i == j && !math.IsNaN(r) {
				r = 1
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

// At returns the coefficient for a pair of column names.
func (m CorrelationMatrix) At(a, b string) (float64, error) {
	i, j := m.index(a), m.index(b)
	if i < 0 || j < 0 {
		return math.NaN(), fmt.Errorf("column pair %s/%s not in correlation matrix", a, b)
	}
	return m.Values[i][j], nil
}

func (m CorrelationMatrix) index(name string) int {
	for i, c := range m.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ColumnCorrelation correlates two named columns of a table.
func ColumnCorrelation(t *entities.Table, a, b string) (float64, error) {
	x, err := t.Column(a)
	if err != nil {
		return math.NaN(), err
	}
	y, err := t.Column(b)
	if err != nil {
		return math.NaN(), err
	}
	return Correlation(x, y), nil
}
