package reporting

import "github.com/vsinha/oee/pkg/domain/entities"

// Point is one (x, y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Scatter is an unaggregated set of paired points.
type Scatter struct {
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Points []Point `json:"points"`
}

// CostScatter pairs each row's OEE with its cost per good unit.
func CostScatter(t *entities.Table) Scatter {
	s := Scatter{
		XLabel: entities.ColOEE,
		YLabel: entities.ColCostPerGoodUnit,
		Points: make([]Point, t.Len()),
	}
	for i, r := range t.Records {
		s.Points[i] = Point{X: r.OEE, Y: r.CostPerGoodUnit}
	}
	return s
}
